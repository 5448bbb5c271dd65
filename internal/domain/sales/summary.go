package sales

import "github.com/shopspring/decimal"

// TransactionSummary aggregates the rows of one transaction
type TransactionSummary struct {
	TransactionID TransactionID
	ItemCount     int64
	TotalAmount   decimal.Decimal
}

// DetailLine is one purchased row joined with the product's current name
type DetailLine struct {
	ItemID      int64
	Quantity    int
	UnitPrice   decimal.Decimal
	ProductName string
}
