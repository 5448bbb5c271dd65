package persistence

import (
	"context"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSalesQueryRepository implements sales.SalesQueryRepository using GORM
type GormSalesQueryRepository struct {
	db *gorm.DB
}

// NewGormSalesQueryRepository creates a new GormSalesQueryRepository
func NewGormSalesQueryRepository(db *gorm.DB) *GormSalesQueryRepository {
	return &GormSalesQueryRepository{db: db}
}

// ListRecent groups purchase rows by transaction id, most recently recorded
// first. Transactions written in the same instant fall back to id order.
// Totals are summed here with decimal arithmetic; SQL SUM is floating point
// on SQLite.
func (r *GormSalesQueryRepository) ListRecent(ctx context.Context, limit int) ([]sales.TransactionSummary, error) {
	var heads []models.TransactionSummaryRow
	err := r.db.WithContext(ctx).
		Model(&models.PurchaseModel{}).
		Select("transaction_id, COUNT(*) AS item_count").
		Group("transaction_id").
		Order("MAX(created_at) DESC, transaction_id DESC").
		Limit(limit).
		Scan(&heads).Error
	if err != nil {
		return nil, classifyStoreError(err)
	}
	if len(heads) == 0 {
		return []sales.TransactionSummary{}, nil
	}

	ids := make([]string, 0, len(heads))
	for i := range heads {
		ids = append(ids, heads[i].TransactionID)
	}
	var lines []models.TransactionLineRow
	err = r.db.WithContext(ctx).
		Model(&models.PurchaseModel{}).
		Select("transaction_id, quantity, unit_price").
		Where("transaction_id IN ?", ids).
		Scan(&lines).Error
	if err != nil {
		return nil, classifyStoreError(err)
	}

	totals := make(map[string]decimal.Decimal, len(heads))
	for i := range lines {
		totals[lines[i].TransactionID] = totals[lines[i].TransactionID].Add(lines[i].Subtotal())
	}

	summaries := make([]sales.TransactionSummary, 0, len(heads))
	for i := range heads {
		summaries = append(summaries, heads[i].ToDomain(totals[heads[i].TransactionID]))
	}
	return summaries, nil
}

// FindDetail joins the rows of one transaction with product names, in insertion order
func (r *GormSalesQueryRepository) FindDetail(ctx context.Context, id sales.TransactionID) ([]sales.DetailLine, error) {
	var rows []models.DetailLineRow
	err := r.db.WithContext(ctx).
		Table("purchases").
		Select("purchases.item_id, purchases.quantity, purchases.unit_price, products.name AS product_name").
		Joins("JOIN products ON products.id = purchases.item_id").
		Where("purchases.transaction_id = ?", id.String()).
		Order("purchases.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, classifyStoreError(err)
	}

	lines := make([]sales.DetailLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, rows[i].ToDomain())
	}
	return lines, nil
}
