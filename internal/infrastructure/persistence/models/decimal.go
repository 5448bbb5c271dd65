package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Decimal is an exact base-10 column. SQLite gives DECIMAL columns NUMERIC
// affinity and keeps them as REAL, so there the value is stored as TEXT.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps d for storage
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// GormDataType returns the generic data type
func (Decimal) GormDataType() string {
	return "decimal"
}

// GormDBDataType returns the column type for the connected dialect
func (Decimal) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(18,4)"
}
