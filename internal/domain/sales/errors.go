package sales

import (
	"errors"
	"fmt"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
)

// Purchase errors
var (
	// ErrInvalidRequest is returned for malformed purchases. It is detected
	// before any store interaction.
	ErrInvalidRequest = shared.NewDomainError("INVALID_REQUEST", "Invalid purchase request")

	ErrEmptyPurchase    = ErrInvalidRequest.WithMessage("Purchase must contain at least one item")
	ErrMissingItemID    = ErrInvalidRequest.WithMessage("Item id is required")
	ErrInvalidQuantity  = ErrInvalidRequest.WithMessage("Quantity must be at least 1")
	ErrQuantityTooLarge = ErrInvalidRequest.WithMessage("Quantity cannot exceed 2147483647")
	ErrMissingUnitPrice = ErrInvalidRequest.WithMessage("Price is required")
	ErrNegativePrice    = ErrInvalidRequest.WithMessage("Price cannot be negative")
	ErrPriceTooPrecise  = ErrInvalidRequest.WithMessage("Price cannot have more than 4 decimal places")
	ErrPriceTooLarge    = ErrInvalidRequest.WithMessage("Price cannot have more than 14 integer digits")
	ErrInvalidTxID      = ErrInvalidRequest.WithMessage("Transaction id is invalid")
)

// ItemError prefixes err's message with the 1-based cart position of the
// rejected line
func ItemError(index int, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.WithMessage(fmt.Sprintf("Item %d: %s", index+1, de.Message))
	}
	return fmt.Errorf("item %d: %w", index+1, err)
}
