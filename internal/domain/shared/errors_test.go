package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Wrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrStoreUnavailable.Wrap(cause)

	assert.Equal(t, "STORE_UNAVAILABLE", err.Code)
	assert.Equal(t, "The data store is unavailable: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrConstraintViolation)

	// the sentinel itself is untouched
	assert.Nil(t, ErrStoreUnavailable.Cause)
}

func TestDomainError_IsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("record purchase: %w", ErrConstraintViolation.WithMessage("unknown item 42"))

	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "unknown item 42", de.Message)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}
