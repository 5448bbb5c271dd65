package sales

import (
	"github.com/shopspring/decimal"
)

// Purchase is a checkout: a non-empty set of line items sharing one
// transaction id. It is written once and never modified.
type Purchase struct {
	TransactionID TransactionID
	Items         []LineItem
}

// NewPurchase builds a purchase under id
func NewPurchase(id TransactionID, items []LineItem) (*Purchase, error) {
	if id.IsZero() || len(id) > MaxTransactionIDLength {
		return nil, ErrInvalidTxID
	}
	if len(items) == 0 {
		return nil, ErrEmptyPurchase
	}
	for i, item := range items {
		if _, err := NewLineItem(item.ItemID, item.Quantity, item.UnitPrice); err != nil {
			return nil, ItemError(i, err)
		}
	}
	return &Purchase{
		TransactionID: id,
		Items:         append([]LineItem(nil), items...),
	}, nil
}

// ItemCount returns the number of line items (rows), not units
func (p *Purchase) ItemCount() int {
	return len(p.Items)
}

// TotalAmount returns the exact sum of quantity × unit price
func (p *Purchase) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
