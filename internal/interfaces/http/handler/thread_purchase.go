package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textile/backend/internal/application/procurement"
)

// ThreadPurchaseHandler handles thread purchase endpoints
type ThreadPurchaseHandler struct {
	BaseHandler
	service *procurement.ThreadPurchaseService
}

func NewThreadPurchaseHandler(service *procurement.ThreadPurchaseService) *ThreadPurchaseHandler {
	return &ThreadPurchaseHandler{service: service}
}

// RegisterRoutes registers thread purchase routes
func (h *ThreadPurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/thread-purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("", h.List)
		purchases.GET("/:id", h.GetByID)
		purchases.PUT("/:id", h.Update)
		purchases.DELETE("/:id", h.Delete)
		purchases.POST("/:id/receive", h.Receive)
		purchases.POST("/:id/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Create a thread purchase order
// @Tags thread-purchases
// @Accept json
// @Produce json
// @Param request body procurement.CreateThreadPurchaseRequest true "Purchase data"
// @Success 201 {object} dto.Response{data=procurement.ThreadPurchaseResponse}
// @Router /thread-purchases [post]
func (h *ThreadPurchaseHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req procurement.CreateThreadPurchaseRequest
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
// @Summary List thread purchases
// @Tags thread-purchases
// @Produce json
// @Param search query string false "Search by purchase number"
// @Param vendor_id query string false "Filter by vendor"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.Response{data=[]procurement.ThreadPurchaseResponse}
// @Router /thread-purchases [get]
func (h *ThreadPurchaseHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter procurement.ThreadPurchaseListFilter
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
// @Summary Get a thread purchase by ID
// @Tags thread-purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.Response{data=procurement.ThreadPurchaseResponse}
// @Router /thread-purchases/{id} [get]
func (h *ThreadPurchaseHandler) GetByID(c *gin.Context) {
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
// @Summary Update an ordered thread purchase
// @Tags thread-purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param request body procurement.UpdateThreadPurchaseRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=procurement.ThreadPurchaseResponse}
// @Router /thread-purchases/{id} [put]
func (h *ThreadPurchaseHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req procurement.UpdateThreadPurchaseRequest
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

// Receive godoc
// @Summary Mark a thread purchase as received
// @Description Receiving books the thread into inventory and opens a payable.
// @Tags thread-purchases
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.Response{data=procurement.ThreadPurchaseResponse}
// @Router /thread-purchases/{id}/receive [post]
func (h *ThreadPurchaseHandler) Receive(c *gin.Context) {
	h.transition(c, h.service.Receive)
}

// Cancel godoc
// @Summary Cancel an ordered thread purchase
// @Tags thread-purchases
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.Response{data=procurement.ThreadPurchaseResponse}
// @Router /thread-purchases/{id}/cancel [post]
func (h *ThreadPurchaseHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

// Delete godoc
// @Summary Delete a cancelled thread purchase
// @Tags thread-purchases
// @Param id path string true "Purchase ID"
// @Success 204
// @Router /thread-purchases/{id} [delete]
func (h *ThreadPurchaseHandler) Delete(c *gin.Context) {
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

func (h *ThreadPurchaseHandler) transition(c *gin.Context, fn func(ctx context.Context, tenantID, id uuid.UUID) (*procurement.ThreadPurchaseResponse, error)) {
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
