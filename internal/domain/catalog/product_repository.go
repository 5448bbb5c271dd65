package catalog

import "context"

// ProductRepository stores products
type ProductRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	// Save inserts p when p.ID is zero and assigns the new id, otherwise updates it
	Save(ctx context.Context, p *Product) error
}
