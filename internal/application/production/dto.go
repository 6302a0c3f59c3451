package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/production"
)

// =============================================================================
// Dyeing DTOs
// =============================================================================

// CreateDyeingProcessRequest represents a request to issue raw thread for dyeing
type CreateDyeingProcessRequest struct {
	VendorID      uuid.UUID       `json:"vendor_id" binding:"required"`
	ThreadArticle string          `json:"thread_article" binding:"required,min=1,max=100"`
	Color         string          `json:"color" binding:"required,min=1,max=50"`
	InputQuantity decimal.Decimal `json:"input_quantity" binding:"required,dgt=0"`
	DyeingRate    decimal.Decimal `json:"dyeing_rate" binding:"required,dgt=0"`
	Notes         string          `json:"notes"`
}

// UpdateDyeingProcessRequest represents a request to edit a running lot
type UpdateDyeingProcessRequest struct {
	Color      *string          `json:"color" binding:"omitempty,min=1,max=50"`
	DyeingRate *decimal.Decimal `json:"dyeing_rate" binding:"omitempty,dgt=0"`
	Notes      *string          `json:"notes"`
}

// CompleteDyeingProcessRequest records the dyed thread returned by the factory
type CompleteDyeingProcessRequest struct {
	OutputQuantity decimal.Decimal `json:"output_quantity" binding:"required,dgt=0"`
}

// DyeingProcessResponse represents a dyeing process in API responses
type DyeingProcessResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	LotNumber      string          `json:"lot_number"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	ThreadArticle  string          `json:"thread_article"`
	Color          string          `json:"color"`
	InputQuantity  decimal.Decimal `json:"input_quantity"`
	OutputQuantity decimal.Decimal `json:"output_quantity"`
	Wastage        decimal.Decimal `json:"wastage"`
	WastagePercent decimal.Decimal `json:"wastage_percent"`
	DyeingRate     decimal.Decimal `json:"dyeing_rate"`
	DyeingCost     decimal.Decimal `json:"dyeing_cost"`
	Status         string          `json:"status"`
	IssueDate      time.Time       `json:"issue_date"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// DyeingListFilter represents filter options for the dyeing list
type DyeingListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=IN_PROCESS COMPLETED CANCELLED"`
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"`
	Color    string `form:"color"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToDyeingProcessResponse converts a dyeing process to a response DTO
func ToDyeingProcessResponse(d *production.DyeingProcess) DyeingProcessResponse {
	return DyeingProcessResponse{
		ID:             d.ID,
		TenantID:       d.TenantID,
		LotNumber:      d.LotNumber,
		VendorID:       d.VendorID,
		ThreadArticle:  d.ThreadArticle,
		Color:          d.Color,
		InputQuantity:  d.InputQuantity,
		OutputQuantity: d.OutputQuantity,
		Wastage:        d.Wastage,
		WastagePercent: d.WastagePercent(),
		DyeingRate:     d.DyeingRate,
		DyeingCost:     d.DyeingCost,
		Status:         string(d.Status),
		IssueDate:      d.IssueDate,
		CompletionDate: d.CompletionDate,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Version:        d.Version,
	}
}

// ToDyeingProcessResponses converts a slice of processes to response DTOs
func ToDyeingProcessResponses(processes []production.DyeingProcess) []DyeingProcessResponse {
	responses := make([]DyeingProcessResponse, len(processes))
	for i := range processes {
		responses[i] = ToDyeingProcessResponse(&processes[i])
	}
	return responses
}

// =============================================================================
// Fabric DTOs
// =============================================================================

// CreateFabricProductionRequest represents a request to start a weaving batch
type CreateFabricProductionRequest struct {
	FabricArticle  string          `json:"fabric_article" binding:"required,min=1,max=100"`
	Color          string          `json:"color" binding:"required,min=1,max=50"`
	ThreadArticle  string          `json:"thread_article" binding:"required,min=1,max=100"`
	ThreadQuantity decimal.Decimal `json:"thread_quantity" binding:"required,dgt=0"`
	ConversionCost decimal.Decimal `json:"conversion_cost" binding:"omitempty,dgte=0"`
	Notes          string          `json:"notes"`
}

// UpdateFabricProductionRequest represents a request to edit a running batch
type UpdateFabricProductionRequest struct {
	ConversionCost *decimal.Decimal `json:"conversion_cost" binding:"omitempty,dgte=0"`
	Notes          *string          `json:"notes"`
}

// CompleteFabricProductionRequest records the output of a weaving batch
type CompleteFabricProductionRequest struct {
	FabricProduced decimal.Decimal `json:"fabric_produced" binding:"required,dgt=0"`
	Wastage        decimal.Decimal `json:"wastage" binding:"omitempty,dgte=0"`
}

// FabricProductionResponse represents a fabric batch in API responses
type FabricProductionResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	BatchNumber    string          `json:"batch_number"`
	FabricArticle  string          `json:"fabric_article"`
	Color          string          `json:"color"`
	ThreadArticle  string          `json:"thread_article"`
	ThreadQuantity decimal.Decimal `json:"thread_quantity"`
	ConversionCost decimal.Decimal `json:"conversion_cost"`
	FabricProduced decimal.Decimal `json:"fabric_produced"`
	Wastage        decimal.Decimal `json:"wastage"`
	CostPerMeter   decimal.Decimal `json:"cost_per_meter"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"start_date"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// FabricListFilter represents filter options for the fabric batch list
type FabricListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=IN_PROCESS COMPLETED CANCELLED"`
	Color    string `form:"color"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToFabricProductionResponse converts a fabric batch to a response DTO
func ToFabricProductionResponse(f *production.FabricProduction) FabricProductionResponse {
	return FabricProductionResponse{
		ID:             f.ID,
		TenantID:       f.TenantID,
		BatchNumber:    f.BatchNumber,
		FabricArticle:  f.FabricArticle,
		Color:          f.Color,
		ThreadArticle:  f.ThreadArticle,
		ThreadQuantity: f.ThreadQuantity,
		ConversionCost: f.ConversionCost,
		FabricProduced: f.FabricProduced,
		Wastage:        f.Wastage,
		CostPerMeter:   f.CostPerMeter,
		TotalCost:      f.TotalCost(),
		Status:         string(f.Status),
		StartDate:      f.StartDate,
		CompletionDate: f.CompletionDate,
		Notes:          f.Notes,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
		Version:        f.Version,
	}
}

// ToFabricProductionResponses converts a slice of batches to response DTOs
func ToFabricProductionResponses(batches []production.FabricProduction) []FabricProductionResponse {
	responses := make([]FabricProductionResponse, len(batches))
	for i := range batches {
		responses[i] = ToFabricProductionResponse(&batches[i])
	}
	return responses
}
