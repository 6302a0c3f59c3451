package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/identity"
	"github.com/textile/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	service *identity.AuthService
}

func NewAuthHandler(service *identity.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
	}
}

// Login godoc
// @Summary Authenticate and obtain a token pair
// @Description The tenant is resolved from the X-Tenant-ID header.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body identity.LoginRequest true "Credentials"
// @Success 200 {object} dto.Response{data=identity.LoginResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.BadRequest(c, "missing or invalid X-Tenant-ID header")
		return
	}

	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body identity.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.Response{data=identity.LoginResponse}
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identity.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout godoc
// @Summary Revoke the current session tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body identity.RefreshTokenRequest true "Refresh token to revoke"
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		h.Unauthorized(c, "not authenticated")
		return
	}

	var req identity.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims, req.RefreshToken); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=identity.UserResponse}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	userID, err := h.getUserID(c)
	if err != nil {
		h.Unauthorized(c, "not authenticated")
		return
	}

	resp, err := h.service.Me(c.Request.Context(), tenantID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
