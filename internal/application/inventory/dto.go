package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/inventory"
)

// AdjustStockRequest represents a manual stock correction.
// Quantity is signed: positive adds stock, negative removes it.
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Reason   string          `json:"reason" binding:"required,min=1,max=255"`
}

// UpdateInventoryItemRequest changes the reorder level of an item
type UpdateInventoryItemRequest struct {
	ReorderLevel *decimal.Decimal `json:"reorder_level" binding:"omitempty,dgte=0"`
}

// InventoryItemResponse represents an inventory item in API responses
type InventoryItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Type          string          `json:"type"`
	Article       string          `json:"article"`
	Color         string          `json:"color"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	StockValue    decimal.Decimal `json:"stock_value"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	BelowReorder  bool            `json:"below_reorder"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// InventoryListFilter represents filter options for the inventory list
type InventoryListFilter struct {
	Search       string `form:"search"`
	Type         string `form:"type" binding:"omitempty,oneof=raw_thread dyed_thread fabric"`
	Article      string `form:"article"`
	Color        string `form:"color"`
	BelowReorder bool   `form:"below_reorder"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MovementResponse represents a journal row in API responses
type MovementResponse struct {
	ID              uuid.UUID       `json:"id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	MovementType    string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	BalanceBefore   decimal.Decimal `json:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	SourceType      string          `json:"source_type"`
	SourceID        uuid.UUID       `json:"source_id"`
	Note            string          `json:"note"`
	MovementDate    time.Time       `json:"movement_date"`
}

// MovementListFilter represents filter options for the movement journal
type MovementListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToInventoryItemResponse converts an item aggregate to a response DTO
func ToInventoryItemResponse(i *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           i.ID,
		TenantID:     i.TenantID,
		Type:         string(i.Type),
		Article:      i.Article,
		Color:        i.Color,
		Unit:         string(i.Unit),
		Quantity:     i.Quantity,
		UnitCost:     i.UnitCost,
		StockValue:   i.StockValue(),
		ReorderLevel: i.ReorderLevel,
		BelowReorder: i.IsBelowReorderLevel(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
		Version:      i.Version,
	}
}

// ToInventoryItemResponses converts a slice of items to response DTOs
func ToInventoryItemResponses(items []inventory.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = ToInventoryItemResponse(&items[i])
	}
	return responses
}

// ToMovementResponse converts a movement to a response DTO
func ToMovementResponse(m *inventory.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		MovementType:    string(m.MovementType),
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		BalanceBefore:   m.BalanceBefore,
		BalanceAfter:    m.BalanceAfter,
		SourceType:      string(m.SourceType),
		SourceID:        m.SourceID,
		Note:            m.Note,
		MovementDate:    m.MovementDate,
	}
}

// ToMovementResponses converts a slice of movements to response DTOs
func ToMovementResponses(movements []inventory.InventoryMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}
