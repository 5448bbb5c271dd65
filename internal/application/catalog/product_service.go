// Package catalog serves the product catalog and its offline snapshot
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	cache       catalog.ProductCache
	snapshots   catalog.SnapshotStore
	logger      *zap.Logger
	now         func() time.Time
}

// ProductServiceOption configures a ProductService
type ProductServiceOption func(*ProductService)

// WithProductCache enables read-through caching of the product listing
func WithProductCache(cache catalog.ProductCache) ProductServiceOption {
	return func(s *ProductService) {
		s.cache = cache
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) ProductServiceOption {
	return func(s *ProductService) {
		s.logger = logger
	}
}

// WithClock overrides the snapshot timestamp source
func WithClock(now func() time.Time) ProductServiceOption {
	return func(s *ProductService) {
		s.now = now
	}
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, snapshots catalog.SnapshotStore, opts ...ProductServiceOption) *ProductService {
	s := &ProductService{
		productRepo: productRepo,
		snapshots:   snapshots,
		logger:      zap.NewNop(),
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns every product ordered by id
func (s *ProductService) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

func (s *ProductService) loadProducts(ctx context.Context) ([]catalog.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.GetProducts(ctx)
		if err != nil {
			s.logger.Warn("Product cache read failed, falling back to store", zap.Error(err))
		} else if ok {
			return products, nil
		}
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			s.logger.Warn("Failed to populate product cache", zap.Error(err))
		}
	}
	return products, nil
}

// CreateProduct validates and stores a new product
func (s *ProductService) CreateProduct(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info("Product created", zap.Int64("product_id", product.ID), zap.String("name", product.Name))
	resp := ToProductResponse(product)
	return &resp, nil
}

// UpdateProduct replaces the attributes of an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Apply(req.details()); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	resp := ToProductResponse(product)
	return &resp, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate product cache", zap.Error(err))
	}
}

// SyncSnapshot exports the catalog from the store to the snapshot store and
// refreshes the cache alongside. It returns the number of products written.
func (s *ProductService) SyncSnapshot(ctx context.Context) (int, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(Snapshot{
		Products: ToProductResponses(products),
		SyncedAt: s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.snapshots.Put(gctx, data)
	})
	if s.cache != nil {
		g.Go(func() error {
			if err := s.cache.SetProducts(gctx, products); err != nil {
				s.logger.Warn("Failed to refresh product cache during sync", zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	s.logger.Info("Product snapshot synced", zap.Int("count", len(products)))
	return len(products), nil
}

// GetSnapshot returns the last exported snapshot as raw JSON
func (s *ProductService) GetSnapshot(ctx context.Context) (json.RawMessage, error) {
	data, err := s.snapshots.Get(ctx)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
