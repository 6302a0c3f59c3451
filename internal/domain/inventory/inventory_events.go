package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constant for InventoryItem
const AggregateTypeInventoryItem = "InventoryItem"

// Event type constants for InventoryItem
const (
	EventTypeStockIncreased         = "StockIncreased"
	EventTypeStockDecreased         = "StockDecreased"
	EventTypeStockBelowReorderLevel = "StockBelowReorderLevel"
)

// StockIncreasedEvent is published when stock is added to an item
type StockIncreasedEvent struct {
	shared.BaseDomainEvent
	ItemType ItemType        `json:"item_type"`
	Article  string          `json:"article"`
	Color    string          `json:"color"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	NewTotal decimal.Decimal `json:"new_total"`
}

// NewStockIncreasedEvent creates a new StockIncreasedEvent
func NewStockIncreasedEvent(item *InventoryItem, quantity, unitCost decimal.Decimal) *StockIncreasedEvent {
	return &StockIncreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockIncreased, AggregateTypeInventoryItem, item.ID, item.TenantID),
		ItemType:        item.Type,
		Article:         item.Article,
		Color:           item.Color,
		Quantity:        quantity,
		UnitCost:        unitCost,
		NewTotal:        item.Quantity,
	}
}

// StockDecreasedEvent is published when stock is removed from an item
type StockDecreasedEvent struct {
	shared.BaseDomainEvent
	ItemType ItemType        `json:"item_type"`
	Article  string          `json:"article"`
	Color    string          `json:"color"`
	Quantity decimal.Decimal `json:"quantity"`
	NewTotal decimal.Decimal `json:"new_total"`
}

// NewStockDecreasedEvent creates a new StockDecreasedEvent
func NewStockDecreasedEvent(item *InventoryItem, quantity decimal.Decimal) *StockDecreasedEvent {
	return &StockDecreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDecreased, AggregateTypeInventoryItem, item.ID, item.TenantID),
		ItemType:        item.Type,
		Article:         item.Article,
		Color:           item.Color,
		Quantity:        quantity,
		NewTotal:        item.Quantity,
	}
}

// StockBelowReorderLevelEvent is published when stock falls below the reorder threshold
type StockBelowReorderLevelEvent struct {
	shared.BaseDomainEvent
	ItemType     ItemType        `json:"item_type"`
	Article      string          `json:"article"`
	Color        string          `json:"color"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

// NewStockBelowReorderLevelEvent creates a new StockBelowReorderLevelEvent
func NewStockBelowReorderLevelEvent(item *InventoryItem) *StockBelowReorderLevelEvent {
	return &StockBelowReorderLevelEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowReorderLevel, AggregateTypeInventoryItem, item.ID, item.TenantID),
		ItemType:        item.Type,
		Article:         item.Article,
		Color:           item.Color,
		Quantity:        item.Quantity,
		ReorderLevel:    item.ReorderLevel,
	}
}
