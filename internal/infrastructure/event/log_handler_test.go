package event

import (
	"context"
	"testing"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPurchaseLogHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := NewPurchaseLogHandler(zap.New(core))
	assert.Equal(t, []string{sales.EventTypePurchaseRecorded}, handler.EventTypes())

	ctx, _ := logger.WithRequestID(context.Background(), zap.NewNop(), "req-42")
	event := newRecordedEvent(t)
	require.NoError(t, handler.Handle(ctx, event))

	entries := logs.FilterMessage("purchase recorded").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, event.TransactionID.String(), fields["transaction_id"])
	assert.Equal(t, "20.00", fields["total_amount"])
	assert.Equal(t, int64(1), fields["item_count"])
	assert.Equal(t, "req-42", fields["request_id"])
}

func TestPurchaseLogHandler_IgnoresOtherEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := NewPurchaseLogHandler(zap.New(core))

	require.NoError(t, handler.Handle(context.Background(), newTestEvent("other")))
	assert.Equal(t, 0, logs.Len())
}
