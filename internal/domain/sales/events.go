package sales

import (
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types
const (
	EventTypePurchaseRecorded = "sales.purchase_recorded"
	AggregateTypePurchase     = "Purchase"
)

// PurchaseRecordedEvent is raised after a purchase has been committed
type PurchaseRecordedEvent struct {
	shared.BaseDomainEvent
	TransactionID TransactionID   `json:"transaction_id"`
	ItemCount     int             `json:"item_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// NewPurchaseRecordedEvent builds the event for a committed purchase
func NewPurchaseRecordedEvent(p *Purchase) *PurchaseRecordedEvent {
	return &PurchaseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseRecorded, AggregateTypePurchase, p.TransactionID.String()),
		TransactionID:   p.TransactionID,
		ItemCount:       p.ItemCount(),
		TotalAmount:     p.TotalAmount(),
	}
}
