package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	identityapp "github.com/odiedo/PesaTrackAdmin/internal/application/identity"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/dto"
)

// Authenticator registers and signs in tellers
type Authenticator interface {
	SignUp(ctx context.Context, in identityapp.SignUpInput) (*identityapp.TellerInfo, error)
	SignIn(ctx context.Context, in identityapp.SignInInput) (*identityapp.SignInResult, error)
}

// AuthHandler handles teller authentication endpoints
type AuthHandler struct {
	BaseHandler
	auth Authenticator
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp handles POST /signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	teller, err := h.auth.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.SignUpResponse{
		Success: true,
		Message: "Account created successfully",
		Teller:  teller,
	})
}

// SignIn handles POST /signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.auth.SignIn(c.Request.Context(), identityapp.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewSignInResponse(result))
}
