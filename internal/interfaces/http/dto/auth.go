package dto

import (
	"time"

	identityapp "github.com/odiedo/PesaTrackAdmin/internal/application/identity"
)

// SignUpRequest is the teller registration form
type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	IDNumber string `json:"id_number" binding:"required,max=20"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// ToInput converts the request to service input
func (r SignUpRequest) ToInput() identityapp.SignUpInput {
	return identityapp.SignUpInput{
		Name:     r.Name,
		IDNumber: r.IDNumber,
		Phone:    r.Phone,
		Email:    r.Email,
		Password: r.Password,
	}
}

// SignUpResponse acknowledges a registration
type SignUpResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Teller  *identityapp.TellerInfo `json:"teller,omitempty"`
}

// SignInRequest carries teller credentials
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse is returned on a successful sign-in. SessionID holds the
// bearer token the till stores.
type SignInResponse struct {
	Success   bool                   `json:"success"`
	SessionID string                 `json:"sessionId"`
	TokenType string                 `json:"token_type"`
	ExpiresAt time.Time              `json:"expires_at"`
	Teller    identityapp.TellerInfo `json:"teller"`
}

// NewSignInResponse builds the response from a sign-in result
func NewSignInResponse(r *identityapp.SignInResult) SignInResponse {
	return SignInResponse{
		Success:   true,
		SessionID: r.AccessToken,
		TokenType: r.TokenType,
		ExpiresAt: r.ExpiresAt,
		Teller:    r.Teller,
	}
}
