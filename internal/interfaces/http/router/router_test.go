package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/odiedo/PesaTrackAdmin/internal/application/catalog"
	identityapp "github.com/odiedo/PesaTrackAdmin/internal/application/identity"
	salesapp "github.com/odiedo/PesaTrackAdmin/internal/application/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/auth"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSales struct{}

func (stubSales) RecordPurchase(context.Context, []salesapp.LineItemInput) (sales.TransactionID, error) {
	return "6f1c2d3e-0000-4000-8000-000000000001", nil
}

func (stubSales) ListRecentTransactions(context.Context, int) ([]salesapp.TransactionSummaryResponse, error) {
	return []salesapp.TransactionSummaryResponse{}, nil
}

func (stubSales) GetTransactionDetail(context.Context, string) ([]salesapp.DetailLineResponse, error) {
	return []salesapp.DetailLineResponse{}, nil
}

type stubProducts struct{}

func (stubProducts) ListProducts(context.Context) ([]catalogapp.ProductResponse, error) {
	return []catalogapp.ProductResponse{}, nil
}

func (stubProducts) CreateProduct(_ context.Context, req catalogapp.ProductRequest) (*catalogapp.ProductResponse, error) {
	return &catalogapp.ProductResponse{ID: 1, Name: req.Name}, nil
}

func (stubProducts) UpdateProduct(_ context.Context, id int64, req catalogapp.ProductRequest) (*catalogapp.ProductResponse, error) {
	return &catalogapp.ProductResponse{ID: id, Name: req.Name}, nil
}

func (stubProducts) SyncSnapshot(context.Context) (int, error) { return 0, nil }

func (stubProducts) GetSnapshot(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

type stubAuth struct{}

func (stubAuth) SignUp(_ context.Context, in identityapp.SignUpInput) (*identityapp.TellerInfo, error) {
	return &identityapp.TellerInfo{Name: in.Name, Email: in.Email}, nil
}

func (stubAuth) SignIn(context.Context, identityapp.SignInInput) (*identityapp.SignInResult, error) {
	return &identityapp.SignInResult{AccessToken: "tok", TokenType: "Bearer"}, nil
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "router-test-secret-at-least-32-bytes!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "pesatrack-test",
	})
}

func newTestEngine(t *testing.T, httpCfg config.HTTPConfig) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwt := newJWT()
	engine, release, err := NewEngine(Options{HTTP: httpCfg, Tokens: jwt}, Handlers{
		Sales:    handler.NewSalesHandler(stubSales{}, stubSales{}),
		Products: handler.NewProductHandler(stubProducts{}),
		Auth:     handler.NewAuthHandler(stubAuth{}),
		Health:   handler.NewHealthHandler(),
	})
	require.NoError(t, err)
	t.Cleanup(release)
	return engine, jwt
}

func serve(engine *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "/", r.basePath)
	assert.Empty(t, r.registrars)
}

func TestRouterWithBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/till"))
	r.Register(NewDomainGroup("diag", "").GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	}))
	r.Setup()

	w := serve(engine, http.MethodGet, "/till/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDomainGroup(t *testing.T) {
	var order []string
	dg := NewDomainGroup("test", "/grp").
		Use(func(c *gin.Context) { order = append(order, "mw"); c.Next() }).
		GET("/a", func(c *gin.Context) { order = append(order, "get"); c.Status(http.StatusOK) }).
		POST("/a", func(c *gin.Context) { c.Status(http.StatusCreated) }).
		PUT("/a/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })

	assert.Equal(t, "test", dg.Name())
	assert.Equal(t, "/grp", dg.Prefix())
	assert.Len(t, dg.routes, 3)

	engine := gin.New()
	NewRouter(engine).Register(dg).Setup()

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/grp/a", "", "").Code)
	assert.Equal(t, []string{"mw", "get"}, order)
	assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/grp/a", "", "").Code)

	w := serve(engine, http.MethodPut, "/grp/a/42", "", "")
	assert.Equal(t, "42", w.Body.String())
}

func TestNewEngine_RequiresHandlers(t *testing.T) {
	_, _, err := NewEngine(Options{Tokens: newJWT()}, Handlers{})
	assert.Error(t, err)

	_, _, err = NewEngine(Options{}, Handlers{
		Sales:    handler.NewSalesHandler(stubSales{}, stubSales{}),
		Products: handler.NewProductHandler(stubProducts{}),
		Auth:     handler.NewAuthHandler(stubAuth{}),
		Health:   handler.NewHealthHandler(),
	})
	assert.Error(t, err)
}

func TestNewEngine_PublicRoutes(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/completePurchase", `{"purchaseItems":[{"id":1,"quantity":1,"price":10}]}`, http.StatusOK},
		{http.MethodGet, "/recent-sales", "", http.StatusOK},
		{http.MethodGet, "/sales-details/6f1c2d3e-0000-4000-8000-000000000001", "", http.StatusOK},
		{http.MethodGet, "/products", "", http.StatusOK},
		{http.MethodGet, "/products-json", "", http.StatusOK},
		{http.MethodPost, "/signup", `{"name":"Jane","id_number":"1234","phone":"0700","email":"jane@example.com","password":"secret123"}`, http.StatusCreated},
		{http.MethodPost, "/signin", `{"email":"jane@example.com","password":"secret123"}`, http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewEngine_CatalogWritesRequireToken(t *testing.T) {
	engine, jwt := newTestEngine(t, config.HTTPConfig{})
	body := `{"name":"Sugar","category":"Food","price":"120","quantity_in_stock":10}`

	w := serve(engine, http.MethodPost, "/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = serve(engine, http.MethodPut, "/products/1", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = serve(engine, http.MethodPost, "/sync-products", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := jwt.GenerateAccessToken(auth.GenerateTokenInput{TellerID: uuid.New(), Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)

	w = serve(engine, http.MethodPost, "/sync-products", "", tok.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestNewEngine_PurchaseAuthToggle(t *testing.T) {
	engine, jwt := newTestEngine(t, config.HTTPConfig{RequireAuthForPurchases: true})
	body := `{"purchaseItems":[{"id":1,"quantity":1,"price":10}]}`

	w := serve(engine, http.MethodPost, "/completePurchase", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := jwt.GenerateAccessToken(auth.GenerateTokenInput{TellerID: uuid.New(), Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)

	w = serve(engine, http.MethodPost, "/completePurchase", body, tok.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success","customerNumber":"6f1c2d3e-0000-4000-8000-000000000001"}`, w.Body.String())
}

func TestNewEngine_RateLimit(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{
		RateLimitEnabled:  true,
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodGet, "/health", "", "").Code)
}

func TestNewEngine_UnknownRoute(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})

	w := serve(engine, http.MethodGet, "/api/v1/products", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
