package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/report"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	BaseHandler
	service *report.DashboardService
}

func NewReportHandler(service *report.DashboardService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
	}
}

// Dashboard godoc
// @Summary Business dashboard snapshot
// @Description Stock values by type, production in progress, outstanding balances and recent period totals. Served from cache when fresh.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.Response{data=report.DashboardResponse}
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	resp, err := h.service.Dashboard(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
