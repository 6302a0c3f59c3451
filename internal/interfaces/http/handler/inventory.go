package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/inventory"
)

// InventoryHandler handles inventory endpoints
type InventoryHandler struct {
	BaseHandler
	service *inventory.InventoryService
}

func NewInventoryHandler(service *inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/inventory")
	{
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.GET("/:id/movements", h.Movements)
		items.POST("/:id/adjust", h.Adjust)
		items.PUT("/:id", h.Update)
	}
}

// List godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param type query string false "Filter by item type"
// @Param article query string false "Filter by article"
// @Param color query string false "Filter by color"
// @Param below_reorder query bool false "Only items at or below reorder level"
// @Success 200 {object} dto.Response{data=[]inventory.InventoryItemResponse}
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter inventory.InventoryListFilter
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
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Response{data=inventory.InventoryItemResponse}
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
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

// Movements godoc
// @Summary List the movement journal of an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Response{data=[]inventory.MovementResponse}
// @Router /inventory/{id}/movements [get]
func (h *InventoryHandler) Movements(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var filter inventory.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.Movements(c.Request.Context(), tenantID, id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Adjust godoc
// @Summary Record a manual stock adjustment
// @Description Adjustments append a journal movement; stock can never go negative.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body inventory.AdjustStockRequest true "Adjustment data"
// @Success 200 {object} dto.Response{data=inventory.InventoryItemResponse}
// @Router /inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req inventory.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Adjust(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @Summary Update inventory item settings
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body inventory.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=inventory.InventoryItemResponse}
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req inventory.UpdateInventoryItemRequest
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
