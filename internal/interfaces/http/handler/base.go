package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textile/backend/internal/domain/shared"
	"github.com/textile/backend/internal/interfaces/http/dto"
	"github.com/textile/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common response helpers for all handlers
type BaseHandler struct{}

func (h *BaseHandler) getRequestID(c *gin.Context) string {
	if v, ok := c.Get("request_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getTenantID resolves the tenant from the JWT claims, falling back to the
// X-Tenant-ID header for unauthenticated routes.
func (h *BaseHandler) getTenantID(c *gin.Context) (uuid.UUID, error) {
	if s, ok := middleware.GetJWTTenantID(c); ok {
		return uuid.Parse(s)
	}
	header := c.GetHeader("X-Tenant-ID")
	if header == "" {
		return uuid.Nil, errors.New("missing tenant identifier")
	}
	return uuid.Parse(header)
}

func (h *BaseHandler) getUserID(c *gin.Context) (uuid.UUID, error) {
	s, ok := middleware.GetJWTUserID(c)
	if !ok {
		return uuid.Nil, errors.New("missing user identifier")
	}
	return uuid.Parse(s)
}

func (h *BaseHandler) parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// Success sends a 200 response with data
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with data and pagination metadata
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status and code
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, h.getRequestID(c)))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 response with per-field details
func (h *BaseHandler) ValidationError(c *gin.Context, err error) {
	details := middleware.FormatValidationErrors(err)
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("validation failed", h.getRequestID(c), details))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// Conflict sends a 409 response
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	h.Error(c, http.StatusConflict, dto.ErrCodeConflict, message)
}

// UnprocessableEntity sends a 422 response
func (h *BaseHandler) UnprocessableEntity(c *gin.Context, code, message string) {
	h.Error(c, http.StatusUnprocessableEntity, code, message)
}

// InternalError sends a 500 response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleDomainError maps a domain error to an HTTP response. Unknown errors
// become 500; domain error codes are normalized against the error catalog.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}
	h.InternalError(c, "internal server error")
}
