package router

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/logger"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/handler"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Handlers are the HTTP handlers mounted by NewEngine
type Handlers struct {
	Sales    *handler.SalesHandler
	Products *handler.ProductHandler
	Auth     *handler.AuthHandler
	Health   *handler.HealthHandler
}

// Options configures the engine
type Options struct {
	HTTP    config.HTTPConfig
	Tracing middleware.TracingConfig
	// Meter records HTTP server metrics; nil disables them
	Meter  metric.Meter
	Tokens middleware.TokenValidator
	Logger *zap.Logger
}

// NewEngine builds the gin engine with the full middleware chain and every
// route. The returned func releases the rate limiter.
func NewEngine(opts Options, h Handlers) (*gin.Engine, func(), error) {
	if h.Sales == nil || h.Products == nil || h.Auth == nil || h.Health == nil {
		return nil, nil, errors.New("router: all handlers are required")
	}
	if opts.Tokens == nil {
		return nil, nil, errors.New("router: token validator is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	middleware.SetupValidator()

	metrics, err := middleware.HTTPMetrics(opts.Meter)
	if err != nil {
		return nil, nil, err
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(opts.Logger),
		middleware.Tracing(opts.Tracing),
		middleware.SpanAttributes(),
		metrics,
		logger.GinMiddleware(opts.Logger),
		middleware.Secure(),
		middleware.CORS(opts.HTTP),
		middleware.BodyLimit(opts.HTTP.MaxBodySize),
	)

	release := func() {}
	if opts.HTTP.RateLimitEnabled && opts.HTTP.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(opts.HTTP.RateLimitRequests, opts.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		release = limiter.Close
	}

	requireTeller := middleware.JWTAuth(opts.Tokens, opts.Logger)

	r := NewRouter(engine)
	r.Register(salesRoutes(h.Sales, opts.HTTP.RequireAuthForPurchases, requireTeller))
	r.Register(catalogRoutes(h.Products, requireTeller))
	r.Register(authRoutes(h.Auth))
	r.Register(NewDomainGroup("system", "").GET("/health", h.Health.Health))
	r.Setup()

	return engine, release, nil
}

func salesRoutes(h *handler.SalesHandler, requireAuth bool, auth gin.HandlerFunc) *DomainGroup {
	purchase := []gin.HandlerFunc{h.CompletePurchase}
	if requireAuth {
		purchase = append([]gin.HandlerFunc{auth}, purchase...)
	}

	return NewDomainGroup("sales", "").
		POST("/completePurchase", purchase...).
		GET("/recent-sales", h.RecentSales).
		GET("/sales-details/:transactionId", h.SalesDetails)
}

func catalogRoutes(h *handler.ProductHandler, auth gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup("catalog", "").
		GET("/products", h.List).
		GET("/products-json", h.Snapshot).
		POST("/products", auth, h.Create).
		PUT("/products/:id", auth, h.Update).
		POST("/sync-products", auth, h.Sync)
}

func authRoutes(h *handler.AuthHandler) *DomainGroup {
	return NewDomainGroup("auth", "").
		POST("/signup", h.SignUp).
		POST("/signin", h.SignIn)
}
