package persistence

import (
	"testing"

	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteTestDB opens a private in-memory database with foreign keys enforced
func newSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(sqliteDSN(":memory:")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.ProductModel{}, &models.PurchaseModel{}, &models.TellerModel{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) int64 {
	t.Helper()
	p := &models.ProductModel{Name: name, Price: models.NewDecimal(decimal.RequireFromString(price))}
	require.NoError(t, db.Create(p).Error)
	return p.ID
}

func countPurchases(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.PurchaseModel{}).Count(&n).Error)
	return n
}
