package persistence

import (
	"context"
	"errors"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns every product ordered by id
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var rows []models.ProductModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, classifyStoreError(err)
	}
	products := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, classifyStoreError(err)
	}
	return model.ToDomain(), nil
}

// Save creates p when it has no id yet, otherwise updates the stored row
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	model := models.ProductModelFromDomain(p)

	if p.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return classifyStoreError(err)
		}
		p.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", p.ID).
		Select("name", "category", "price", "quantity_in_stock", "remaining_stock", "image_url", "updated_at").
		Updates(model)
	if result.Error != nil {
		return classifyStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
