package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/odiedo/PesaTrackAdmin/internal/application/catalog"
	identityapp "github.com/odiedo/PesaTrackAdmin/internal/application/identity"
	salesapp "github.com/odiedo/PesaTrackAdmin/internal/application/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
)

type mockPurchaseRecorder struct {
	mock.Mock
}

func (m *mockPurchaseRecorder) RecordPurchase(ctx context.Context, items []salesapp.LineItemInput) (sales.TransactionID, error) {
	args := m.Called(ctx, items)
	return args.Get(0).(sales.TransactionID), args.Error(1)
}

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) Save(ctx context.Context, p *sales.Purchase) error {
	return m.Called(ctx, p).Error(0)
}

type mockSalesReader struct {
	mock.Mock
}

func (m *mockSalesReader) ListRecentTransactions(ctx context.Context, limit int) ([]salesapp.TransactionSummaryResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]salesapp.TransactionSummaryResponse), args.Error(1)
}

func (m *mockSalesReader) GetTransactionDetail(ctx context.Context, id string) ([]salesapp.DetailLineResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]salesapp.DetailLineResponse), args.Error(1)
}

type mockProductManager struct {
	mock.Mock
}

func (m *mockProductManager) ListProducts(ctx context.Context) ([]catalogapp.ProductResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogapp.ProductResponse), args.Error(1)
}

func (m *mockProductManager) CreateProduct(ctx context.Context, req catalogapp.ProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *mockProductManager) UpdateProduct(ctx context.Context, id int64, req catalogapp.ProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *mockProductManager) SyncSnapshot(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockProductManager) GetSnapshot(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) SignUp(ctx context.Context, in identityapp.SignUpInput) (*identityapp.TellerInfo, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.TellerInfo), args.Error(1)
}

func (m *mockAuthenticator) SignIn(ctx context.Context, in identityapp.SignInInput) (*identityapp.SignInResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.SignInResult), args.Error(1)
}

// newTestEngine returns an engine with the request id and validator set up
func newTestEngine() *gin.Engine {
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
