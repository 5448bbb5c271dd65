package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProductsKey is the Redis key holding the cached product listing
const ProductsKey = "pesatrack:catalog:products"

const defaultCatalogTTL = 5 * time.Minute

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisProductCache implements catalog.ProductCache using Redis
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// RedisProductCacheOption is a functional option for configuring the cache
type RedisProductCacheOption func(*RedisProductCache)

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisProductCacheOption {
	return func(c *RedisProductCache) {
		c.logger = logger
	}
}

// NewRedisProductCache creates a cache on an existing client. The caller
// retains ownership of the client.
func NewRedisProductCache(client *redis.Client, ttl time.Duration, opts ...RedisProductCacheOption) *RedisProductCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	c := &RedisProductCache{
		client: client,
		ttl:    ttl,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProducts retrieves the listing from Redis
func (c *RedisProductCache) GetProducts(ctx context.Context) ([]catalog.Product, bool, error) {
	data, err := c.client.Get(ctx, ProductsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("Product cache miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get products from cache: %w", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// drop the corrupt entry so the next read repopulates it
		_ = c.client.Del(ctx, ProductsKey).Err()
		return nil, false, fmt.Errorf("failed to decode cached products: %w", err)
	}
	return products, true, nil
}

// SetProducts stores the listing with the configured TTL
func (c *RedisProductCache) SetProducts(ctx context.Context, products []catalog.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	if err := c.client.Set(ctx, ProductsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache products: %w", err)
	}
	return nil
}

// Invalidate removes the cached listing
func (c *RedisProductCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, ProductsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate product cache: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

var _ catalog.ProductCache = (*RedisProductCache)(nil)
