package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/production"
)

// FabricHandler handles fabric production endpoints
type FabricHandler struct {
	BaseHandler
	service *production.FabricService
}

func NewFabricHandler(service *production.FabricService) *FabricHandler {
	return &FabricHandler{service: service}
}

// RegisterRoutes registers fabric production routes
func (h *FabricHandler) RegisterRoutes(rg *gin.RouterGroup) {
	fabric := rg.Group("/fabric-productions")
	{
		fabric.POST("", h.Create)
		fabric.GET("", h.List)
		fabric.GET("/:id", h.GetByID)
		fabric.PUT("/:id", h.Update)
		fabric.POST("/:id/complete", h.Complete)
		fabric.POST("/:id/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Start a fabric production batch
// @Description Starting a batch consumes dyed thread stock immediately.
// @Tags fabric
// @Accept json
// @Produce json
// @Param request body production.CreateFabricProductionRequest true "Batch data"
// @Success 201 {object} dto.Response{data=production.FabricProductionResponse}
// @Router /fabric-productions [post]
func (h *FabricHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req production.CreateFabricProductionRequest
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
// @Summary List fabric production batches
// @Tags fabric
// @Produce json
// @Param status query string false "Filter by status"
// @Param article query string false "Filter by fabric article"
// @Success 200 {object} dto.Response{data=[]production.FabricProductionResponse}
// @Router /fabric-productions [get]
func (h *FabricHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter production.FabricListFilter
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
// @Summary Get a fabric production batch by ID
// @Tags fabric
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} dto.Response{data=production.FabricProductionResponse}
// @Router /fabric-productions/{id} [get]
func (h *FabricHandler) GetByID(c *gin.Context) {
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
// @Summary Update an in-process fabric batch
// @Tags fabric
// @Accept json
// @Produce json
// @Param id path string true "Batch ID"
// @Param request body production.UpdateFabricProductionRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=production.FabricProductionResponse}
// @Router /fabric-productions/{id} [put]
func (h *FabricHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req production.UpdateFabricProductionRequest
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

// Complete godoc
// @Summary Complete a fabric production batch
// @Description Completing books finished fabric into inventory at the batch unit cost.
// @Tags fabric
// @Accept json
// @Produce json
// @Param id path string true "Batch ID"
// @Param request body production.CompleteFabricProductionRequest true "Output quantity"
// @Success 200 {object} dto.Response{data=production.FabricProductionResponse}
// @Router /fabric-productions/{id}/complete [post]
func (h *FabricHandler) Complete(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req production.CompleteFabricProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Complete(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel godoc
// @Summary Cancel a fabric production batch
// @Description Cancelling returns the consumed dyed thread to inventory.
// @Tags fabric
// @Param id path string true "Batch ID"
// @Success 200 {object} dto.Response{data=production.FabricProductionResponse}
// @Router /fabric-productions/{id}/cancel [post]
func (h *FabricHandler) Cancel(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
