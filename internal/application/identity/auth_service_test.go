package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textile/backend/internal/domain/identity"
	"github.com/textile/backend/internal/infrastructure/auth"
	"github.com/textile/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

func newTestAuthService(userRepo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "textile-test",
		MaxRefreshCount:        10,
	})
	return NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
}

func createActiveUser(t *testing.T, tenantID uuid.UUID) *identity.User {
	t.Helper()
	user, err := identity.NewUser(tenantID, "priya", "correct-horse-battery", identity.UserRoleOperator)
	require.NoError(t, err)
	return user
}

func TestAuthService_Login(t *testing.T) {
	tenantID := uuid.New()

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)
		user := createActiveUser(t, tenantID)

		userRepo.On("FindByUsername", mock.Anything, tenantID, "priya").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		resp, err := service.Login(context.Background(), tenantID, LoginRequest{
			Username: "priya",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "priya", resp.User.Username)
		assert.NotNil(t, user.LastLoginAt)
		assert.Equal(t, 0, user.FailedAttempts)
	})

	t.Run("unknown username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		userRepo.On("FindByUsername", mock.Anything, tenantID, "ghost").Return(nil, nil)

		_, err := service.Login(context.Background(), tenantID, LoginRequest{
			Username: "ghost",
			Password: "whatever-password",
		})
		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong password increments the failure counter", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)
		user := createActiveUser(t, tenantID)

		userRepo.On("FindByUsername", mock.Anything, tenantID, "priya").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		_, err := service.Login(context.Background(), tenantID, LoginRequest{
			Username: "priya",
			Password: "wrong-password-guess",
		})
		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("repeated failures lock the account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)
		user := createActiveUser(t, tenantID)

		userRepo.On("FindByUsername", mock.Anything, tenantID, "priya").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		var err error
		for i := 0; i < 5; i++ {
			_, err = service.Login(context.Background(), tenantID, LoginRequest{
				Username: "priya",
				Password: "wrong-password-guess",
			})
		}
		assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")
		assert.Equal(t, identity.UserStatusLocked, user.Status)

		// Correct password no longer helps
		_, err = service.Login(context.Background(), tenantID, LoginRequest{
			Username: "priya",
			Password: "correct-horse-battery",
		})
		assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)
		user := createActiveUser(t, tenantID)
		require.NoError(t, user.Deactivate())

		userRepo.On("FindByUsername", mock.Anything, tenantID, "priya").Return(user, nil)

		_, err := service.Login(context.Background(), tenantID, LoginRequest{
			Username: "priya",
			Password: "correct-horse-battery",
		})
		assertDomainErrorCode(t, err, "ACCOUNT_DEACTIVATED")
	})
}

func TestAuthService_Refresh(t *testing.T) {
	tenantID := uuid.New()

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)
		user := createActiveUser(t, tenantID)

		userRepo.On("FindByUsername", mock.Anything, tenantID, "priya").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		login, err := service.Login(context.Background(), tenantID, LoginRequest{
			Username: "priya",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		refreshed, err := service.Refresh(context.Background(), RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		_, err := service.Refresh(context.Background(), RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})
		assertDomainErrorCode(t, err, "TOKEN_INVALID")
	})

	t.Run("revoked refresh token is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)
		user := createActiveUser(t, tenantID)

		userRepo.On("FindByUsername", mock.Anything, tenantID, "priya").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		login, err := service.Login(context.Background(), tenantID, LoginRequest{
			Username: "priya",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		accessClaims, err := service.jwtService.ValidateAccessToken(login.AccessToken)
		require.NoError(t, err)
		require.NoError(t, service.Logout(context.Background(), accessClaims, login.RefreshToken))

		_, err = service.Refresh(context.Background(), RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})
		assertDomainErrorCode(t, err, "TOKEN_REVOKED")
	})
}
