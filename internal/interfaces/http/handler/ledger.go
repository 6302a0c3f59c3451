package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/finance"
)

// LedgerHandler handles payables/receivables ledger endpoints
type LedgerHandler struct {
	BaseHandler
	service *finance.LedgerService
}

func NewLedgerHandler(service *finance.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.List)
		ledger.GET("/outstanding-summary", h.OutstandingSummary)
		ledger.POST("/sweep-overdue", h.SweepOverdue)
		ledger.GET("/:id", h.GetByID)
	}
}

// List godoc
// @Summary List ledger entries
// @Tags ledger
// @Produce json
// @Param direction query string false "PAYABLE or RECEIVABLE"
// @Param party_type query string false "Filter by party type"
// @Param party_id query string false "Filter by party"
// @Param status query string false "Filter by status"
// @Param overdue query bool false "Only entries past their due date"
// @Success 200 {object} dto.Response{data=[]finance.LedgerEntryResponse}
// @Router /ledger [get]
func (h *LedgerHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter finance.LedgerListFilter
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
// @Summary Get a ledger entry with its payment history
// @Tags ledger
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.Response{data=finance.LedgerEntryResponse}
// @Router /ledger/{id} [get]
func (h *LedgerHandler) GetByID(c *gin.Context) {
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

// SweepOverdue godoc
// @Summary Mark open entries past their due date as overdue
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.Response{data=finance.SweepOverdueResponse}
// @Router /ledger/sweep-overdue [post]
func (h *LedgerHandler) SweepOverdue(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	resp, err := h.service.SweepOverdue(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// OutstandingSummary godoc
// @Summary Total outstanding payables and receivables
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.Response{data=finance.OutstandingSummaryResponse}
// @Router /ledger/outstanding-summary [get]
func (h *LedgerHandler) OutstandingSummary(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	resp, err := h.service.OutstandingSummary(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
