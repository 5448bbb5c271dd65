package models

import (
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(200);not null"`
	Category        string          `gorm:"type:varchar(100);not null;default:'';index"`
	Price           Decimal         `gorm:"not null;default:0"`
	QuantityInStock int             `gorm:"not null;default:0"`
	RemainingStock  int             `gorm:"not null;default:0"`
	ImageURL        string          `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		Price:           m.Price.Decimal,
		QuantityInStock: m.QuantityInStock,
		RemainingStock:  m.RemainingStock,
		ImageURL:        m.ImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID
	m.Name = p.Name
	m.Category = p.Category
	m.Price = NewDecimal(p.Price)
	m.QuantityInStock = p.QuantityInStock
	m.RemainingStock = p.RemainingStock
	m.ImageURL = p.ImageURL
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
