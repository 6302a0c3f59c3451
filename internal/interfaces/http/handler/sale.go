package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textile/backend/internal/application/sales"
)

// SaleHandler handles sales endpoints
type SaleHandler struct {
	BaseHandler
	service *sales.SaleService
}

func NewSaleHandler(service *sales.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// RegisterRoutes registers sales routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sale := rg.Group("/sales")
	{
		sale.POST("", h.Create)
		sale.GET("", h.List)
		sale.GET("/:id", h.GetByID)
		sale.POST("/:id/deliver", h.Deliver)
		sale.POST("/:id/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Create a sale
// @Description Creating a sale reserves stock for every line and, for credit sales, opens a receivable.
// @Tags sales
// @Accept json
// @Produce json
// @Param request body sales.CreateSaleRequest true "Sale data"
// @Success 201 {object} dto.Response{data=sales.SaleResponse}
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req sales.CreateSaleRequest
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
// @Summary List sales
// @Tags sales
// @Produce json
// @Param customer_id query string false "Filter by customer"
// @Param status query string false "Filter by status"
// @Param date_from query string false "Sale date lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Sale date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=[]sales.SaleResponse}
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter sales.SaleListFilter
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
// @Summary Get a sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.Response{data=sales.SaleResponse}
// @Router /sales/{id} [get]
func (h *SaleHandler) GetByID(c *gin.Context) {
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

// Deliver godoc
// @Summary Mark a confirmed sale as delivered
// @Tags sales
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.Response{data=sales.SaleResponse}
// @Router /sales/{id}/deliver [post]
func (h *SaleHandler) Deliver(c *gin.Context) {
	h.transition(c, h.service.Deliver)
}

// Cancel godoc
// @Summary Cancel a sale
// @Description Cancelling restores stock for every line and voids the open receivable.
// @Tags sales
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.Response{data=sales.SaleResponse}
// @Router /sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *SaleHandler) transition(c *gin.Context, fn func(ctx context.Context, tenantID, id uuid.UUID) (*sales.SaleResponse, error)) {
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
