package sales

import (
	"context"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
)

// Recent sales limits
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// SalesQueryService reads sales history
type SalesQueryService struct {
	repo         sales.SalesQueryRepository
	defaultLimit int
}

// NewSalesQueryService creates a new SalesQueryService. A non-positive
// defaultLimit falls back to DefaultRecentLimit.
func NewSalesQueryService(repo sales.SalesQueryRepository, defaultLimit int) *SalesQueryService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultRecentLimit
	}
	if defaultLimit > MaxRecentLimit {
		defaultLimit = MaxRecentLimit
	}
	return &SalesQueryService{repo: repo, defaultLimit: defaultLimit}
}

// ListRecentTransactions returns up to limit transaction summaries, newest first
func (s *SalesQueryService) ListRecentTransactions(ctx context.Context, limit int) ([]TransactionSummaryResponse, error) {
	summaries, err := s.repo.ListRecent(ctx, s.normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return ToTransactionSummaryResponses(summaries), nil
}

// GetTransactionDetail returns the items of one transaction. An unknown id
// yields an empty list.
func (s *SalesQueryService) GetTransactionDetail(ctx context.Context, id string) ([]DetailLineResponse, error) {
	txID := sales.TransactionID(id)
	if txID.IsZero() || len(id) > sales.MaxTransactionIDLength {
		return []DetailLineResponse{}, nil
	}
	lines, err := s.repo.FindDetail(ctx, txID)
	if err != nil {
		return nil, err
	}
	return ToDetailLineResponses(lines), nil
}

func (s *SalesQueryService) normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return s.defaultLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}
