package persistence

import (
	"context"
	"fmt"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseRepository implements sales.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Save inserts one row per line item under the purchase's transaction id.
// All rows commit together or the transaction is rolled back.
func (r *GormPurchaseRepository) Save(ctx context.Context, p *sales.Purchase) error {
	if p == nil || len(p.Items) == 0 {
		return sales.ErrEmptyPurchase
	}
	rows := models.PurchaseModelsFromDomain(p)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, row := range rows {
			result := tx.Omit(clause.Associations).Create(row)
			if result.Error != nil {
				return fmt.Errorf("insert item %d: %w", i, result.Error)
			}
			if result.RowsAffected != 1 {
				return fmt.Errorf("insert item %d: expected 1 row affected, got %d", i, result.RowsAffected)
			}
		}
		return nil
	})
	return classifyStoreError(err)
}
