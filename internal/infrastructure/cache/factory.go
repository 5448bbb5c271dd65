package cache

import (
	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProductCacheFactory creates the product cache based on configuration
type ProductCacheFactory struct {
	redisConfig config.RedisConfig
	logger      *zap.Logger
}

// NewProductCacheFactory creates a new factory
func NewProductCacheFactory(cfg config.RedisConfig, logger *zap.Logger) *ProductCacheFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductCacheFactory{redisConfig: cfg, logger: logger}
}

// CreateCache returns a Redis cache when Redis is enabled and reachable,
// otherwise an in-memory cache. The returned client is nil for the
// in-memory cache; the caller closes it otherwise.
func (f *ProductCacheFactory) CreateCache() (catalog.ProductCache, *redis.Client) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory product cache")
		return NewInMemoryProductCache(f.redisConfig.CatalogTTL), nil
	}

	client, err := NewRedisClient(f.redisConfig)
	if err != nil {
		f.logger.Warn("Redis unavailable, falling back to in-memory product cache. "+
			"Instances will not share cached listings.",
			zap.String("addr", f.redisConfig.Addr()),
			zap.Error(err),
		)
		return NewInMemoryProductCache(f.redisConfig.CatalogTTL), nil
	}

	f.logger.Info("Using Redis product cache", zap.String("addr", f.redisConfig.Addr()))
	return NewRedisProductCache(client, f.redisConfig.CatalogTTL, WithCacheLogger(f.logger)), client
}
