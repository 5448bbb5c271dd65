// Package sales records purchases and answers sales history queries
package sales

import (
	"context"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"go.uber.org/zap"
)

// PurchaseService records purchases
type PurchaseService struct {
	repo      sales.PurchaseRepository
	ids       sales.IDGenerator
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewPurchaseService creates a new PurchaseService. publisher may be nil.
func NewPurchaseService(
	repo sales.PurchaseRepository,
	ids sales.IDGenerator,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *PurchaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseService{
		repo:      repo,
		ids:       ids,
		publisher: publisher,
		logger:    logger,
	}
}

// RecordPurchase validates the cart, mints a transaction id and persists
// every item under it atomically. The id is returned only after commit.
func (s *PurchaseService) RecordPurchase(ctx context.Context, inputs []LineItemInput) (sales.TransactionID, error) {
	items, err := toLineItems(inputs)
	if err != nil {
		return "", err
	}

	purchase, err := sales.NewPurchase(s.ids.Generate(), items)
	if err != nil {
		return "", err
	}

	if err := s.repo.Save(ctx, purchase); err != nil {
		s.logger.Error("Failed to record purchase",
			zap.String("transaction_id", purchase.TransactionID.String()),
			zap.Int("items", purchase.ItemCount()),
			zap.Error(err))
		return "", err
	}

	s.logger.Info("Purchase recorded",
		zap.String("transaction_id", purchase.TransactionID.String()),
		zap.Int("items", purchase.ItemCount()),
		zap.String("total", purchase.TotalAmount().String()))

	s.publish(ctx, purchase)
	return purchase.TransactionID, nil
}

// publish is best-effort; the purchase is already committed
func (s *PurchaseService) publish(ctx context.Context, p *sales.Purchase) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, sales.NewPurchaseRecordedEvent(p)); err != nil {
		s.logger.Warn("Failed to publish purchase event",
			zap.String("transaction_id", p.TransactionID.String()),
			zap.Error(err))
	}
}

func toLineItems(inputs []LineItemInput) ([]sales.LineItem, error) {
	if len(inputs) == 0 {
		return nil, sales.ErrEmptyPurchase
	}
	items := make([]sales.LineItem, 0, len(inputs))
	for i, in := range inputs {
		if in.UnitPrice == nil {
			return nil, sales.ItemError(i, sales.ErrMissingUnitPrice)
		}
		item, err := sales.NewLineItem(in.ItemID, in.Quantity, *in.UnitPrice)
		if err != nil {
			return nil, sales.ItemError(i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
