package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/identity"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
)

// TellerModel is the persistence model for the Teller domain entity.
// Email is stored lowercased, so the unique index is case-insensitive in practice.
type TellerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	IDNumber     string    `gorm:"column:id_number;type:varchar(50);not null;default:''"`
	Phone        string    `gorm:"type:varchar(50);not null;default:''"`
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TellerModel) TableName() string {
	return "tellers"
}

// ToDomain converts the persistence model to a domain Teller entity.
func (m *TellerModel) ToDomain() *identity.Teller {
	return &identity.Teller{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:         m.Name,
		IDNumber:     m.IDNumber,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

// TellerModelFromDomain creates a new persistence model from a domain Teller entity.
func TellerModelFromDomain(t *identity.Teller) *TellerModel {
	return &TellerModel{
		ID:           t.ID,
		Name:         t.Name,
		IDNumber:     t.IDNumber,
		Phone:        t.Phone,
		Email:        t.Email,
		PasswordHash: t.PasswordHash,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
