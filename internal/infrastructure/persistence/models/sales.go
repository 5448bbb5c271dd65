package models

import (
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// PurchaseModel is one persisted line item of a purchase. Rows are only
// ever inserted.
type PurchaseModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	ItemID        int64           `gorm:"not null;index"`
	Product       *ProductModel   `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     Decimal         `gorm:"not null"`
	TransactionID string          `gorm:"type:varchar(64);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseModelsFromDomain expands a purchase into one row per line item
func PurchaseModelsFromDomain(p *sales.Purchase) []*PurchaseModel {
	rows := make([]*PurchaseModel, 0, len(p.Items))
	for _, item := range p.Items {
		rows = append(rows, &PurchaseModel{
			ItemID:        item.ItemID,
			Quantity:      item.Quantity,
			UnitPrice:     NewDecimal(item.UnitPrice),
			TransactionID: p.TransactionID.String(),
		})
	}
	return rows
}

// TransactionSummaryRow receives one row of the recent-sales grouping
type TransactionSummaryRow struct {
	TransactionID string
	ItemCount     int64
}

// ToDomain converts the row to a domain TransactionSummary with the given total
func (r *TransactionSummaryRow) ToDomain(total decimal.Decimal) sales.TransactionSummary {
	return sales.TransactionSummary{
		TransactionID: sales.TransactionID(r.TransactionID),
		ItemCount:     r.ItemCount,
		TotalAmount:   total,
	}
}

// TransactionLineRow is the part of a purchase row that feeds a total
type TransactionLineRow struct {
	TransactionID string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// Subtotal returns quantity × unit price
func (r *TransactionLineRow) Subtotal() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// DetailLineRow receives one row of the transaction detail join
type DetailLineRow struct {
	ItemID      int64
	Quantity    int
	UnitPrice   decimal.Decimal
	ProductName string
}

// ToDomain converts the row to a domain DetailLine
func (r *DetailLineRow) ToDomain() sales.DetailLine {
	return sales.DetailLine{
		ItemID:      r.ItemID,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		ProductName: r.ProductName,
	}
}
