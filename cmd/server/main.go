package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/odiedo/PesaTrackAdmin/internal/application/catalog"
	identityapp "github.com/odiedo/PesaTrackAdmin/internal/application/identity"
	salesapp "github.com/odiedo/PesaTrackAdmin/internal/application/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/auth"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/cache"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/event"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/logger"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/persistence"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/scheduler"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/storage"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/telemetry"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/handler"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/middleware"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/router"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const meterName = "github.com/odiedo/PesaTrackAdmin"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry providers are no-ops when disabled
	telCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}
	tp, err := telemetry.NewTracerProvider(ctx, telCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, telCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	lp, err := telemetry.NewLoggerProvider(ctx, telCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer shutdownTelemetry(log, tp, mp, lp)

	if lp.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(lp, telCfg.ServiceName, logger.ParseLevel(cfg.Log.Level))
		log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelCore)
		}))
	}

	log.Info("Starting PesaTrack Admin",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Database.LogLevel),
		logger.WithSlowThreshold(cfg.Database.SlowThreshold))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.SlowQueryThresh = cfg.Database.SlowThreshold
	if cfg.Database.Driver == config.DriverSQLite {
		dbTracing.DBSystem = "sqlite"
	}
	if err := telemetry.RegisterDBTracing(db.DB, dbTracing, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Product cache and snapshot store
	productCache, redisClient := cache.NewProductCacheFactory(cfg.Redis, log).CreateCache()
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
	}

	snapshots, err := storage.NewSnapshotStore(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize snapshot store", zap.Error(err))
	}

	// Event bus
	meter := mp.Meter(meterName)
	bus, closeBus := initEventBus(ctx, cfg, meter, log)
	defer closeBus()

	// Application services
	purchaseService := salesapp.NewPurchaseService(
		persistence.NewGormPurchaseRepository(db.DB),
		sales.NewUUIDv7Generator(),
		bus,
		log,
	)
	salesQueryService := salesapp.NewSalesQueryService(
		persistence.NewGormSalesQueryRepository(db.DB),
		cfg.HTTP.DefaultRecentSalesLimit,
	)
	productService := catalogapp.NewProductService(
		persistence.NewGormProductRepository(db.DB),
		snapshots,
		catalogapp.WithProductCache(productCache),
		catalogapp.WithLogger(log),
	)
	if cfg.Storage.SyncInterval > 0 {
		syncScheduler, err := scheduler.New(scheduler.DefaultConfig(cfg.Storage.SyncInterval), productService, log)
		if err != nil {
			log.Fatal("Failed to create snapshot scheduler", zap.Error(err))
		}
		if err := syncScheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start snapshot scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = syncScheduler.Stop(stopCtx)
		}()
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(persistence.NewGormTellerRepository(db.DB), jwtService, log)

	checks := []handler.HealthCheck{{Name: "database", Check: db.Ping}}
	if redisClient != nil {
		checks = append(checks, handler.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}

	httpMeter := meter
	if !mp.IsEnabled() {
		httpMeter = nil
	}
	engine, releaseEngine, err := router.NewEngine(router.Options{
		HTTP: cfg.HTTP,
		Tracing: middleware.TracingConfig{
			ServiceName: telCfg.ServiceName,
			Enabled:     tp.IsEnabled(),
		},
		Meter:  httpMeter,
		Tokens: jwtService,
		Logger: log,
	}, router.Handlers{
		Sales:    handler.NewSalesHandler(purchaseService, salesQueryService),
		Products: handler.NewProductHandler(productService),
		Auth:     handler.NewAuthHandler(authService),
		Health:   handler.NewHealthHandler(checks...),
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}
	defer releaseEngine()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}

// initEventBus starts the in-process bus with the log and metrics handlers,
// plus the RabbitMQ publisher when events are enabled. The returned func
// drains the bus and closes the broker connection.
func initEventBus(ctx context.Context, cfg *config.Config, meter metric.Meter, log *zap.Logger) (*event.InMemoryEventBus, func()) {
	bus := event.NewInMemoryEventBus(log, event.WithBufferSize(cfg.Events.BufferSize))
	bus.Subscribe(event.NewPurchaseLogHandler(log))

	salesMetrics, err := telemetry.NewSalesMetrics(meter)
	if err != nil {
		log.Warn("Sales metrics unavailable", zap.Error(err))
	} else {
		bus.Subscribe(salesMetrics)
	}

	var publisher *event.AMQPPublisher
	if cfg.Events.Enabled {
		publisher, err = event.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, log)
		if err != nil {
			// purchases must keep working while the broker is down
			log.Error("RabbitMQ publisher unavailable, events stay in-process", zap.Error(err))
		} else {
			bus.Subscribe(publisher)
		}
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	return bus, func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := bus.Stop(stopCtx); err != nil {
			log.Warn("Event bus did not drain", zap.Error(err))
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				log.Warn("Error closing rabbitmq publisher", zap.Error(err))
			}
		}
	}
}

func shutdownTelemetry(log *zap.Logger, tp *telemetry.TracerProvider, mp *telemetry.MeterProvider, lp *telemetry.LoggerProvider) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := tp.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := mp.Shutdown(ctx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := lp.Shutdown(ctx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}
}
