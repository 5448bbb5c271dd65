package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/identity"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/auth"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTellerRepository is a mock implementation of identity.TellerRepository
type MockTellerRepository struct {
	mock.Mock
}

func (m *MockTellerRepository) Create(ctx context.Context, t *identity.Teller) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTellerRepository) FindByEmail(ctx context.Context, email string) (*identity.Teller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Teller), args.Error(1)
}

func newTestAuthService(repo identity.TellerRepository) (*AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: time.Hour,
		Issuer:                "pesatrack-test",
	})
	return NewAuthService(repo, jwtService, zap.NewNop()), jwtService
}

func signUpInput() SignUpInput {
	return SignUpInput{
		Name:     "Mwangi Njoroge",
		IDNumber: "29876543",
		Phone:    "0712345678",
		Email:    "Mwangi@Shop.co.ke",
		Password: "shopkeeper1",
	}
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a teller with a hashed password", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, _ := newTestAuthService(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(tl *identity.Teller) bool {
			return tl.Email == "mwangi@shop.co.ke" && tl.PasswordHash != "shopkeeper1"
		})).Return(nil)

		info, err := svc.SignUp(ctx, signUpInput())

		require.NoError(t, err)
		assert.Equal(t, "mwangi@shop.co.ke", info.Email)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, _ := newTestAuthService(repo)
		repo.On("Create", ctx, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := svc.SignUp(ctx, signUpInput())

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("weak password never reaches the store", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, _ := newTestAuthService(repo)
		in := signUpInput()
		in.Password = "short"

		_, err := svc.SignUp(ctx, in)

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_PASSWORD", de.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	teller, err := identity.NewTeller(identity.Registration{
		Name:     "Mwangi Njoroge",
		Email:    "mwangi@shop.co.ke",
		Password: "shopkeeper1",
	})
	require.NoError(t, err)

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, jwtService := newTestAuthService(repo)
		repo.On("FindByEmail", ctx, "mwangi@shop.co.ke").Return(teller, nil)

		result, err := svc.SignIn(ctx, SignInInput{Email: "mwangi@shop.co.ke", Password: "shopkeeper1"})

		require.NoError(t, err)
		assert.Equal(t, teller.ID, result.Teller.ID)
		claims, err := jwtService.ValidateAccessToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, teller.ID.String(), claims.TellerID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, _ := newTestAuthService(repo)
		repo.On("FindByEmail", ctx, "mwangi@shop.co.ke").Return(teller, nil)

		_, err := svc.SignIn(ctx, SignInInput{Email: "mwangi@shop.co.ke", Password: "nope12345"})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("unknown email reads the same as a wrong password", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, _ := newTestAuthService(repo)
		repo.On("FindByEmail", ctx, "ghost@shop.co.ke").Return(nil, shared.ErrNotFound)

		_, err := svc.SignIn(ctx, SignInInput{Email: "ghost@shop.co.ke", Password: "whatever1"})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("store failures propagate", func(t *testing.T) {
		repo := new(MockTellerRepository)
		svc, _ := newTestAuthService(repo)
		storeErr := shared.ErrStoreUnavailable.Wrap(errors.New("dial tcp: refused"))
		repo.On("FindByEmail", ctx, "mwangi@shop.co.ke").Return(nil, storeErr)

		_, err := svc.SignIn(ctx, SignInInput{Email: "mwangi@shop.co.ke", Password: "shopkeeper1"})

		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})
}
