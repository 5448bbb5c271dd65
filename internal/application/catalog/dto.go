package catalog

import (
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared/valueobject"
)

// ProductRequest creates or replaces a product's attributes
type ProductRequest struct {
	Name            string              `json:"name" binding:"required,min=1,max=200"`
	Category        string              `json:"category" binding:"max=100"`
	Price           *valueobject.Amount `json:"price" binding:"required"`
	QuantityInStock int                 `json:"quantity_in_stock" binding:"min=0"`
	RemainingStock  int                 `json:"remaining_stock" binding:"min=0"`
	ImageURL        string              `json:"image_url" binding:"omitempty,max=500"`
}

func (r ProductRequest) details() catalog.ProductDetails {
	d := catalog.ProductDetails{
		Name:            r.Name,
		Category:        r.Category,
		QuantityInStock: r.QuantityInStock,
		RemainingStock:  r.RemainingStock,
		ImageURL:        r.ImageURL,
	}
	if r.Price != nil {
		d.Price = r.Price.Decimal()
	}
	return d
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Category        string             `json:"category"`
	Price           valueobject.Amount `json:"price"`
	QuantityInStock int                `json:"quantity_in_stock"`
	RemainingStock  int                `json:"remaining_stock"`
	ImageURL        string             `json:"image_url"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		Price:           valueobject.NewAmount(p.Price),
		QuantityInStock: p.QuantityInStock,
		RemainingStock:  p.RemainingStock,
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductResponses converts a product list
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// Snapshot is the catalog export consumed by offline tills
type Snapshot struct {
	Products []ProductResponse `json:"products"`
	SyncedAt time.Time         `json:"synced_at"`
}
