package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textile/backend/internal/application/partner"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	BaseHandler
	service *partner.CustomerService
}

func NewCustomerHandler(service *partner.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.GetByID)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
		customers.POST("/:id/activate", h.Activate)
		customers.POST("/:id/deactivate", h.Deactivate)
	}
}

// Create godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body partner.CreateCustomerRequest true "Customer data"
// @Success 201 {object} dto.Response{data=partner.CustomerResponse}
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req partner.CreateCustomerRequest
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
// @Summary List customers
// @Tags customers
// @Produce json
// @Param search query string false "Search by code or name"
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Success 200 {object} dto.Response{data=[]partner.CustomerResponse}
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter partner.CustomerListFilter
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
// @Summary Get a customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.Response{data=partner.CustomerResponse}
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
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
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body partner.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=partner.CustomerResponse}
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partner.UpdateCustomerRequest
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

// Delete godoc
// @Summary Delete a customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Activate godoc
// @Summary Activate a customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.Response{data=partner.CustomerResponse}
// @Router /customers/{id}/activate [post]
func (h *CustomerHandler) Activate(c *gin.Context) {
	h.transition(c, h.service.Activate)
}

// Deactivate godoc
// @Summary Deactivate a customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.Response{data=partner.CustomerResponse}
// @Router /customers/{id}/deactivate [post]
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.service.Deactivate)
}

func (h *CustomerHandler) transition(c *gin.Context, fn func(ctx context.Context, tenantID, id uuid.UUID) (*partner.CustomerResponse, error)) {
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
