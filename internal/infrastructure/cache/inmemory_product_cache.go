package cache

import (
	"context"
	"sync"
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
)

// InMemoryProductCache implements catalog.ProductCache in process memory.
// It is not shared between instances.
type InMemoryProductCache struct {
	mu        sync.RWMutex
	products  []catalog.Product
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryProductCache creates a new in-memory product cache
func NewInMemoryProductCache(ttl time.Duration) *InMemoryProductCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &InMemoryProductCache{ttl: ttl, now: time.Now}
}

// GetProducts returns a copy of the cached listing
func (c *InMemoryProductCache) GetProducts(_ context.Context) ([]catalog.Product, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.products == nil || c.now().After(c.expiresAt) {
		return nil, false, nil
	}
	return append([]catalog.Product(nil), c.products...), true, nil
}

// SetProducts replaces the cached listing
func (c *InMemoryProductCache) SetProducts(_ context.Context, products []catalog.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = append(make([]catalog.Product, 0, len(products)), products...)
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

// Invalidate drops the cached listing
func (c *InMemoryProductCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	return nil
}

var _ catalog.ProductCache = (*InMemoryProductCache)(nil)
