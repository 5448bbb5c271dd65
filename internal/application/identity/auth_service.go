// Package identity registers and authenticates tellers
package identity

import (
	"context"
	"errors"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/identity"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles teller registration and sign-in
type AuthService struct {
	tellerRepo identity.TellerRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(tellerRepo identity.TellerRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		tellerRepo: tellerRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// SignUp registers a new teller
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*TellerInfo, error) {
	teller, err := identity.NewTeller(identity.Registration{
		Name:     input.Name,
		IDNumber: input.IDNumber,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	if err := s.tellerRepo.Create(ctx, teller); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Info("Sign-up with an existing email", zap.String("email", teller.Email))
		} else {
			s.logger.Error("Failed to create teller", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Teller registered", zap.String("teller_id", teller.ID.String()))
	info := ToTellerInfo(teller)
	return &info, nil
}

// SignIn authenticates a teller and issues an access token
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	teller, err := s.tellerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Sign-in for unknown email", zap.String("email", identity.NormalizeEmail(input.Email)))
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !teller.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("teller_id", teller.ID.String()))
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(auth.GenerateTokenInput{
		TellerID: teller.ID,
		Email:    teller.Email,
		Name:     teller.Name,
	})
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("Teller signed in", zap.String("teller_id", teller.ID.String()))
	return &SignInResult{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		Teller:      ToTellerInfo(teller),
	}, nil
}
