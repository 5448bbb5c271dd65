package persistence

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"gorm.io/gorm"
)

// SQLSTATE class 23 is integrity constraint violation
const pgIntegrityClass = "23"

// IsConstraintViolation reports whether err is a referential or integrity
// violation raised by the store
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgIntegrityClass)
	}
	// untranslated sqlite errors, e.g. "FOREIGN KEY constraint failed"
	return strings.Contains(err.Error(), "constraint failed")
}

// classifyStoreError maps a raw store error onto the domain taxonomy.
// Domain errors pass through untouched.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	if IsConstraintViolation(err) {
		return shared.ErrConstraintViolation.Wrap(err)
	}
	return shared.ErrStoreUnavailable.Wrap(err)
}
