package event

import (
	"context"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PurchaseLogHandler writes an audit line for every recorded purchase
type PurchaseLogHandler struct {
	logger *zap.Logger
}

// NewPurchaseLogHandler creates the handler
func NewPurchaseLogHandler(l *zap.Logger) *PurchaseLogHandler {
	return &PurchaseLogHandler{logger: l}
}

// EventTypes implements shared.EventHandler
func (h *PurchaseLogHandler) EventTypes() []string {
	return []string{sales.EventTypePurchaseRecorded}
}

// Handle implements shared.EventHandler
func (h *PurchaseLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	recorded, ok := event.(*sales.PurchaseRecordedEvent)
	if !ok {
		return nil
	}
	l := h.logger
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		l = l.With(zap.String("request_id", requestID))
	}
	l.Info("purchase recorded",
		zap.String("transaction_id", recorded.TransactionID.String()),
		zap.Int("item_count", recorded.ItemCount),
		zap.String("total_amount", recorded.TotalAmount.StringFixed(2)),
		zap.Time("occurred_at", recorded.OccurredAt()),
	)
	return nil
}
