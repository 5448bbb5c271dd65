package persistence

import (
	"context"
	"errors"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/identity"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTellerRepository implements identity.TellerRepository using GORM
type GormTellerRepository struct {
	db *gorm.DB
}

// NewGormTellerRepository creates a new GormTellerRepository
func NewGormTellerRepository(db *gorm.DB) *GormTellerRepository {
	return &GormTellerRepository{db: db}
}

// Create inserts a teller. The email column is unique.
func (r *GormTellerRepository) Create(ctx context.Context, t *identity.Teller) error {
	err := r.db.WithContext(ctx).Create(models.TellerModelFromDomain(t)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists.WithMessage("A teller with this email already exists")
	}
	return classifyStoreError(err)
}

// FindByEmail finds a teller by normalized email
func (r *GormTellerRepository) FindByEmail(ctx context.Context, email string) (*identity.Teller, error) {
	var model models.TellerModel
	err := r.db.WithContext(ctx).
		Where("email = ?", identity.NormalizeEmail(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, classifyStoreError(err)
	}
	return model.ToDomain(), nil
}
