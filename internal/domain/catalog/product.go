// Package catalog holds the products sold at the till
package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

const (
	maxProductNameLength     = 200
	maxProductCategoryLength = 100
	maxImageURLLength        = 500
)

// Product is a catalog entry. IDs are assigned by the store; purchases
// reference them by id.
type Product struct {
	ID              int64
	Name            string
	Category        string
	Price           decimal.Decimal
	QuantityInStock int
	RemainingStock  int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductDetails are the editable attributes of a product
type ProductDetails struct {
	Name            string
	Category        string
	Price           decimal.Decimal
	QuantityInStock int
	RemainingStock  int
	ImageURL        string
}

// NewProduct creates a product that has not been stored yet
func NewProduct(details ProductDetails) (*Product, error) {
	p := &Product{}
	if err := p.Apply(details); err != nil {
		return nil, err
	}
	p.CreatedAt = p.UpdatedAt
	return p, nil
}

// Apply validates details and overwrites the product's attributes
func (p *Product) Apply(details ProductDetails) error {
	if err := details.validate(); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(details.Name)
	p.Category = strings.TrimSpace(details.Category)
	p.Price = details.Price
	p.QuantityInStock = details.QuantityInStock
	p.RemainingStock = details.RemainingStock
	p.ImageURL = strings.TrimSpace(details.ImageURL)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (d ProductDetails) validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxProductNameLength {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	if utf8.RuneCountInString(d.Category) > maxProductCategoryLength {
		return shared.NewDomainError("INVALID_PRODUCT_CATEGORY", "Product category cannot exceed 100 characters")
	}
	if d.Price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if valueobject.ExceedsScale(d.Price) {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot have more than 4 decimal places")
	}
	if valueobject.ExceedsIntegerDigits(d.Price) {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot have more than 14 integer digits")
	}
	if d.QuantityInStock < 0 || d.RemainingStock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock levels cannot be negative")
	}
	if len(d.ImageURL) > maxImageURLLength {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}
	return nil
}
