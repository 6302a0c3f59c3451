package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textile/backend/internal/application/identity"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	BaseHandler
	service *identity.UserService
}

func NewUserHandler(service *identity.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.POST("/:id/change-password", h.ChangePassword)
		users.POST("/:id/reset-password", h.ResetPassword)
		users.POST("/:id/unlock", h.Unlock)
		users.POST("/:id/activate", h.Activate)
		users.POST("/:id/deactivate", h.Deactivate)
	}
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body identity.CreateUserRequest true "User data"
// @Success 201 {object} dto.Response{data=identity.UserResponse}
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req identity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "Filter by role" Enums(admin, operator)
// @Param status query string false "Filter by status" Enums(active, locked, deactivated)
// @Param search query string false "Search by username or display name"
// @Success 200 {object} dto.Response{data=[]identity.UserResponse}
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter identity.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=identity.UserResponse}
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @Summary Update a user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body identity.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=identity.UserResponse}
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req identity.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangePassword godoc
// @Summary Change own password
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param request body identity.ChangePasswordRequest true "Old and new password"
// @Success 204
// @Router /users/{id}/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req identity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), tenantID, id, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ResetPassword godoc
// @Summary Reset a user's password
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param request body identity.ResetPasswordRequest true "New password"
// @Success 204
// @Router /users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req identity.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), tenantID, id, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Unlock godoc
// @Summary Unlock a locked user account
// @Tags users
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=identity.UserResponse}
// @Router /users/{id}/unlock [post]
func (h *UserHandler) Unlock(c *gin.Context) {
	h.transition(c, h.service.Unlock)
}

// Activate godoc
// @Summary Reactivate a deactivated user
// @Tags users
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=identity.UserResponse}
// @Router /users/{id}/activate [post]
func (h *UserHandler) Activate(c *gin.Context) {
	h.transition(c, h.service.Activate)
}

// Deactivate godoc
// @Summary Deactivate a user
// @Tags users
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=identity.UserResponse}
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.service.Deactivate)
}

func (h *UserHandler) transition(c *gin.Context, fn func(ctx context.Context, tenantID, id uuid.UUID) (*identity.UserResponse, error)) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := fn(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
