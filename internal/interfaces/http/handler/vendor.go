package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textile/backend/internal/application/partner"
)

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	BaseHandler
	service *partner.VendorService
}

func NewVendorHandler(service *partner.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// RegisterRoutes registers vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.Create)
		vendors.GET("", h.List)
		vendors.GET("/:id", h.GetByID)
		vendors.PUT("/:id", h.Update)
		vendors.DELETE("/:id", h.Delete)
		vendors.POST("/:id/activate", h.Activate)
		vendors.POST("/:id/deactivate", h.Deactivate)
	}
}

// Create godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body partner.CreateVendorRequest true "Vendor data"
// @Success 201 {object} dto.Response{data=partner.VendorResponse}
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req partner.CreateVendorRequest
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
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param search query string false "Search by code or name"
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Param type query string false "Filter by vendor type"
// @Success 200 {object} dto.Response{data=[]partner.VendorResponse}
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter partner.VendorListFilter
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
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.Response{data=partner.VendorResponse}
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetByID(c *gin.Context) {
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
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param request body partner.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=partner.VendorResponse}
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partner.UpdateVendorRequest
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
// @Summary Delete a vendor
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 204
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
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
// @Summary Activate a vendor
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.Response{data=partner.VendorResponse}
// @Router /vendors/{id}/activate [post]
func (h *VendorHandler) Activate(c *gin.Context) {
	h.transition(c, h.service.Activate)
}

func (h *VendorHandler) transition(c *gin.Context, fn func(ctx context.Context, tenantID, id uuid.UUID) (*partner.VendorResponse, error)) {
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

// Deactivate godoc
// @Summary Deactivate a vendor
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.Response{data=partner.VendorResponse}
// @Router /vendors/{id}/deactivate [post]
func (h *VendorHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.service.Deactivate)
}
