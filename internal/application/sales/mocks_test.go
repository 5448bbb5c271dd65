package sales

import (
	"context"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseRepository is a mock implementation of PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Save(ctx context.Context, p *sales.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockSalesQueryRepository is a mock implementation of SalesQueryRepository
type MockSalesQueryRepository struct {
	mock.Mock
}

func (m *MockSalesQueryRepository) ListRecent(ctx context.Context, limit int) ([]sales.TransactionSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.TransactionSummary), args.Error(1)
}

func (m *MockSalesQueryRepository) FindDetail(ctx context.Context, id sales.TransactionID) ([]sales.DetailLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.DetailLine), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
