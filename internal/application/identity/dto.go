package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/identity"
)

// SignUpInput contains the teller registration form
type SignUpInput struct {
	Name     string
	IDNumber string
	Phone    string
	Email    string
	Password string
}

// SignInInput contains the credentials for teller sign-in
type SignInInput struct {
	Email    string
	Password string
}

// SignInResult contains the result of a successful sign-in
type SignInResult struct {
	AccessToken string
	ExpiresAt   time.Time
	TokenType   string
	Teller      TellerInfo
}

// TellerInfo contains public teller details
type TellerInfo struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IDNumber string    `json:"id_number"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
}

// ToTellerInfo converts a domain teller to public details
func ToTellerInfo(t *identity.Teller) TellerInfo {
	return TellerInfo{
		ID:       t.ID,
		Name:     t.Name,
		IDNumber: t.IDNumber,
		Phone:    t.Phone,
		Email:    t.Email,
	}
}
