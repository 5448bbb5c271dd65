package sales

import (
	"math"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity the purchases table can hold
const MaxQuantity = math.MaxInt32

// LineItem is one cart entry. UnitPrice is the price charged at sale time;
// it is taken from the till as-is and never re-read from the catalog.
type LineItem struct {
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewLineItem validates and builds a line item
func NewLineItem(itemID int64, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if itemID <= 0 {
		return LineItem{}, ErrMissingItemID
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return LineItem{}, ErrQuantityTooLarge
	}
	if unitPrice.IsNegative() {
		return LineItem{}, ErrNegativePrice
	}
	if valueobject.ExceedsScale(unitPrice) {
		return LineItem{}, ErrPriceTooPrecise
	}
	if valueobject.ExceedsIntegerDigits(unitPrice) {
		return LineItem{}, ErrPriceTooLarge
	}
	return LineItem{
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Subtotal returns quantity × unit price
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
