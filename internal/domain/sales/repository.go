package sales

import "context"

// PurchaseRepository persists purchases. Save writes every line item of p
// inside a single store transaction; either all rows become visible or none.
type PurchaseRepository interface {
	Save(ctx context.Context, p *Purchase) error
}

// SalesQueryRepository reads aggregated sales history
type SalesQueryRepository interface {
	// ListRecent returns at most limit summaries, most recently recorded first
	ListRecent(ctx context.Context, limit int) ([]TransactionSummary, error)
	// FindDetail returns the rows of one transaction in insertion order.
	// An unknown id yields an empty slice.
	FindDetail(ctx context.Context, id TransactionID) ([]DetailLine, error)
}
