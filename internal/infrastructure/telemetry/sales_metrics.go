package telemetry

import (
	"context"
	"errors"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when no meter is supplied.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// SalesMetrics records purchase counters from sales.purchase_recorded events.
// It is subscribed to the event bus like any other handler.
type SalesMetrics struct {
	purchasesTotal *Counter
	itemsTotal     *Counter
	purchaseAmount *Histogram
}

// NewSalesMetrics registers the sales instruments on meter.
func NewSalesMetrics(meter metric.Meter) (*SalesMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	purchases, err := NewCounter(meter, Instrument{
		Name:        "pesatrack_purchases_total",
		Description: "Total number of recorded purchases",
		Unit:        "{purchases}",
	})
	if err != nil {
		return nil, err
	}
	items, err := NewCounter(meter, Instrument{
		Name:        "pesatrack_purchase_items_total",
		Description: "Total number of purchased line items",
		Unit:        "{items}",
	})
	if err != nil {
		return nil, err
	}
	amount, err := NewHistogram(meter, Instrument{
		Name:        "pesatrack_purchase_amount",
		Description: "Distribution of purchase totals",
		Unit:        "KES",
		Boundaries:  PurchaseAmountBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &SalesMetrics{
		purchasesTotal: purchases,
		itemsTotal:     items,
		purchaseAmount: amount,
	}, nil
}

// EventTypes implements shared.EventHandler.
func (m *SalesMetrics) EventTypes() []string {
	return []string{sales.EventTypePurchaseRecorded}
}

// Handle implements shared.EventHandler.
func (m *SalesMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	recorded, ok := event.(*sales.PurchaseRecordedEvent)
	if !ok {
		return nil
	}
	m.purchasesTotal.Add(ctx, 1)
	m.itemsTotal.Add(ctx, int64(recorded.ItemCount))
	m.purchaseAmount.Record(ctx, recorded.TotalAmount.InexactFloat64())
	return nil
}

var _ shared.EventHandler = (*SalesMetrics)(nil)
