package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/identity"
	"github.com/textile/backend/internal/domain/shared"
	"github.com/textile/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns a token pair. Failed attempts are
// counted on the user and lock the account when the limit is reached.
func (s *AuthService) Login(ctx context.Context, tenantID uuid.UUID, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, tenantID, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn("login attempt for unknown user", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.CanLogin() {
		if user.Status == identity.UserStatusLocked {
			s.logger.Warn("login attempt for locked account", zap.String("username", user.Username))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked, contact an administrator")
		}
		s.logger.Warn("login attempt for deactivated account", zap.String("username", user.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(req.Password) {
		user.RecordFailedLogin()
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("failed to persist login failure", zap.Error(err))
		}

		if user.Status == identity.UserStatusLocked {
			s.logger.Warn("account locked after repeated failures",
				zap.String("username", user.Username),
				zap.Int("failed_attempts", user.FailedAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts, account has been locked")
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: user.TenantID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		s.logger.Error("failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds, the timestamp is best effort
		s.logger.Error("failed to persist login timestamp", zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return toLoginResponse(pair, user), nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshTokenRequest) (*LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		switch err {
		case auth.ErrExpiredToken:
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		case auth.ErrMaxRefreshExceeded:
			return nil, shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum refresh count exceeded, log in again")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("blacklist lookup failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
	}
	if blacklisted {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "User no longer exists")
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, user.Username, string(user.Role))
	if err != nil {
		if err == auth.ErrMaxRefreshExceeded {
			return nil, shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum refresh count exceeded, log in again")
		}
		s.logger.Error("failed to refresh token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to refresh tokens")
	}

	return toLoginResponse(pair, user), nil
}

// Logout revokes the presented tokens for their remaining lifetime
func (s *AuthService) Logout(ctx context.Context, accessClaims *auth.Claims, refreshToken string) error {
	if err := s.blacklist.AddToBlacklist(ctx, accessClaims.ID, accessClaims.GetRemainingTTL()); err != nil {
		s.logger.Error("failed to blacklist access token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}

	if refreshToken == "" {
		return nil
	}
	refreshClaims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		// An invalid refresh token needs no revocation
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, refreshClaims.ID, refreshClaims.GetRemainingTTL()); err != nil {
		s.logger.Error("failed to blacklist refresh token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}
	return nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, tenantID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}
