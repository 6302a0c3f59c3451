package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/application/production"
)

// DyeingHandler handles dyeing process endpoints
type DyeingHandler struct {
	BaseHandler
	service *production.DyeingService
}

func NewDyeingHandler(service *production.DyeingService) *DyeingHandler {
	return &DyeingHandler{service: service}
}

// RegisterRoutes registers dyeing process routes
func (h *DyeingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dyeing := rg.Group("/dyeing-processes")
	{
		dyeing.POST("", h.Create)
		dyeing.GET("", h.List)
		dyeing.GET("/:id", h.GetByID)
		dyeing.PUT("/:id", h.Update)
		dyeing.POST("/:id/complete", h.Complete)
		dyeing.POST("/:id/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Start a dyeing process
// @Description Starting a lot consumes raw thread stock immediately.
// @Tags dyeing
// @Accept json
// @Produce json
// @Param request body production.CreateDyeingProcessRequest true "Dyeing lot data"
// @Success 201 {object} dto.Response{data=production.DyeingProcessResponse}
// @Router /dyeing-processes [post]
func (h *DyeingHandler) Create(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var req production.CreateDyeingProcessRequest
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
// @Summary List dyeing processes
// @Tags dyeing
// @Produce json
// @Param status query string false "Filter by status"
// @Param vendor_id query string false "Filter by dyeing factory"
// @Success 200 {object} dto.Response{data=[]production.DyeingProcessResponse}
// @Router /dyeing-processes [get]
func (h *DyeingHandler) List(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}

	var filter production.DyeingListFilter
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
// @Summary Get a dyeing process by ID
// @Tags dyeing
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} dto.Response{data=production.DyeingProcessResponse}
// @Router /dyeing-processes/{id} [get]
func (h *DyeingHandler) GetByID(c *gin.Context) {
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
// @Summary Update an in-process dyeing lot
// @Tags dyeing
// @Accept json
// @Produce json
// @Param id path string true "Process ID"
// @Param request body production.UpdateDyeingProcessRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=production.DyeingProcessResponse}
// @Router /dyeing-processes/{id} [put]
func (h *DyeingHandler) Update(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req production.UpdateDyeingProcessRequest
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
// @Summary Complete a dyeing process
// @Description Completing books dyed thread into inventory and opens the factory payable.
// @Tags dyeing
// @Accept json
// @Produce json
// @Param id path string true "Process ID"
// @Param request body production.CompleteDyeingProcessRequest true "Output quantity and charges"
// @Success 200 {object} dto.Response{data=production.DyeingProcessResponse}
// @Router /dyeing-processes/{id}/complete [post]
func (h *DyeingHandler) Complete(c *gin.Context) {
	tenantID, err := h.getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "tenant not resolved")
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req production.CompleteDyeingProcessRequest
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
// @Summary Cancel a dyeing process
// @Description Cancelling returns the consumed raw thread to inventory.
// @Tags dyeing
// @Param id path string true "Process ID"
// @Success 200 {object} dto.Response{data=production.DyeingProcessResponse}
// @Router /dyeing-processes/{id}/cancel [post]
func (h *DyeingHandler) Cancel(c *gin.Context) {
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
