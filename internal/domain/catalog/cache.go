package catalog

import "context"

// ProductCache holds the full product listing
type ProductCache interface {
	// GetProducts reports ok=false on a miss
	GetProducts(ctx context.Context) (products []Product, ok bool, err error)
	SetProducts(ctx context.Context, products []Product) error
	Invalidate(ctx context.Context) error
}

// SnapshotStore persists the JSON catalog export read by offline tills
type SnapshotStore interface {
	Put(ctx context.Context, data []byte) error
	// Get yields shared.ErrNotFound when no snapshot has been written
	Get(ctx context.Context) ([]byte, error)
}
