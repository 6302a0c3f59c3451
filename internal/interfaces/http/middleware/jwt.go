package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/textile/backend/internal/infrastructure/auth"
	"github.com/textile/backend/internal/interfaces/http/dto"
)

// Context keys set by the JWT middleware
const (
	ContextKeyJWTClaims   = "jwt_claims"
	ContextKeyJWTUserID   = "jwt_user_id"
	ContextKeyJWTTenantID = "jwt_tenant_id"
	ContextKeyJWTUsername = "jwt_username"
)

// JWTConfig holds JWT middleware configuration
type JWTConfig struct {
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Logger     *zap.Logger
	// SkipPaths are request paths that bypass authentication
	SkipPaths []string
}

// JWT returns a middleware that validates access tokens and stores the
// claims in the request context. Blacklist lookups fail open: a lookup
// error is logged and the request proceeds.
func JWT(cfg JWTConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "missing or malformed authorization header")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, err)
			return
		}

		if cfg.Blacklist != nil && claims.ID != "" {
			blacklisted, blErr := cfg.Blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if blErr != nil {
				if cfg.Logger != nil {
					cfg.Logger.Warn("token blacklist lookup failed",
						zap.String("jti", claims.ID),
						zap.Error(blErr))
				}
			} else if blacklisted {
				abortUnauthorized(c, dto.ErrCodeTokenInvalid, "token has been revoked")
				return
			}
		}

		c.Set(ContextKeyJWTClaims, claims)
		c.Set(ContextKeyJWTUserID, claims.UserID)
		c.Set(ContextKeyJWTTenantID, claims.TenantID)
		c.Set(ContextKeyJWTUsername, claims.Username)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("malformed authorization header")
	}
	return parts[1], nil
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		abortUnauthorized(c, dto.ErrCodeTokenExpired, "token has expired")
	case errors.Is(err, auth.ErrTokenNotYetValid):
		abortUnauthorized(c, dto.ErrCodeTokenInvalid, "token is not yet valid")
	case errors.Is(err, auth.ErrInvalidTokenType):
		abortUnauthorized(c, dto.ErrCodeTokenInvalid, "wrong token type")
	default:
		abortUnauthorized(c, dto.ErrCodeTokenInvalid, "invalid token")
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID, _ := c.Get("request_id")
	rid, _ := requestID.(string)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, rid))
}

// GetJWTClaims returns the validated claims stored by the JWT middleware
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextKeyJWTClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// GetJWTUserID returns the authenticated user ID
func GetJWTUserID(c *gin.Context) (string, bool) {
	return getStringKey(c, ContextKeyJWTUserID)
}

// GetJWTTenantID returns the authenticated tenant ID
func GetJWTTenantID(c *gin.Context) (string, bool) {
	return getStringKey(c, ContextKeyJWTTenantID)
}

// GetJWTUsername returns the authenticated username
func GetJWTUsername(c *gin.Context) (string, bool) {
	return getStringKey(c, ContextKeyJWTUsername)
}

func getStringKey(c *gin.Context, key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
