package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/finance"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	BaseHandler
	service *finance.PaymentService
}

func NewPaymentHandler(service *finance.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Record)
		payments.GET("", h.List)
		payments.GET("/:id", h.GetByID)
	}
}

// Record godoc
// @Summary Record a payment against a ledger entry
// @Description The payment amount must not exceed the entry's remaining balance.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body finance.RecordPaymentRequest true "Payment data"
// @Success 201 {object} dto.Response{data=finance.PaymentResponse}
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req finance.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Record(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param party_type query string false "Filter by party type"
// @Param party_id query string false "Filter by party"
// @Param method query string false "Filter by payment method"
// @Param date_from query string false "Payment date lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Payment date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=[]finance.PaymentResponse}
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter finance.PaymentListFilter
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
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.Response{data=finance.PaymentResponse}
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
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
