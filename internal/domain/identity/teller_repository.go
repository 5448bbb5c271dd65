package identity

import "context"

// TellerRepository stores teller accounts
type TellerRepository interface {
	// Create inserts a teller; a taken email yields shared.ErrAlreadyExists
	Create(ctx context.Context, t *Teller) error
	// FindByEmail yields shared.ErrNotFound for unknown emails
	FindByEmail(ctx context.Context, email string) (*Teller, error)
}
