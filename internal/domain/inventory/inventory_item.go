package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// ItemType represents the kind of material held in stock
type ItemType string

const (
	ItemTypeRawThread  ItemType = "raw_thread"
	ItemTypeDyedThread ItemType = "dyed_thread"
	ItemTypeFabric     ItemType = "fabric"
)

// ColorRaw is the color recorded for undyed thread stock
const ColorRaw = "RAW"

// IsValid returns true if the item type is valid
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeRawThread, ItemTypeDyedThread, ItemTypeFabric:
		return true
	}
	return false
}

// Unit returns the measurement unit used for this item type
func (t ItemType) Unit() Unit {
	if t == ItemTypeFabric {
		return UnitMeter
	}
	return UnitKilogram
}

// Unit represents the measurement unit of a stock quantity
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitMeter    Unit = "meter"
)

// InventoryItem represents the stock of one article in one state of processing.
// It is the aggregate root for stock operations.
// The composite identifier is TenantID + Type + Article + Color.
type InventoryItem struct {
	shared.TenantAggregateRoot
	Type         ItemType        `gorm:"type:varchar(20);not null;uniqueIndex:idx_inventory_item_key,priority:2"`
	Article      string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_inventory_item_key,priority:3"`
	Color        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_inventory_item_key,priority:4"`
	Unit         Unit            `gorm:"type:varchar(10);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Moving weighted average cost
	ReorderLevel decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Alert threshold, zero disables
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new empty inventory item for an article
func NewInventoryItem(tenantID uuid.UUID, itemType ItemType, article, color string) (*InventoryItem, error) {
	if !itemType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ITEM_TYPE", "Invalid inventory item type")
	}
	article = strings.TrimSpace(article)
	if article == "" {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Article cannot be empty")
	}
	if len(article) > 100 {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Article cannot exceed 100 characters")
	}
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, shared.NewDomainError("INVALID_COLOR", "Color cannot be empty")
	}

	item := &InventoryItem{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Type:                itemType,
		Article:             article,
		Color:               color,
		Unit:                itemType.Unit(),
		Quantity:            decimal.Zero,
		UnitCost:            decimal.Zero,
		ReorderLevel:        decimal.Zero,
	}

	return item, nil
}

// IncreaseStock increases the quantity and recalculates the unit cost
// using a moving weighted average.
func (i *InventoryItem) IncreaseStock(quantity, unitCost decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	oldCost := i.UnitCost
	oldQuantity := i.Quantity

	// New cost = (old qty * old cost + new qty * new cost) / (old qty + new qty)
	if oldQuantity.IsZero() {
		i.UnitCost = unitCost
	} else {
		totalValue := oldQuantity.Mul(oldCost).Add(quantity.Mul(unitCost))
		totalQuantity := oldQuantity.Add(quantity)
		i.UnitCost = totalValue.Div(totalQuantity).Round(4)
	}

	i.Quantity = i.Quantity.Add(quantity)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockIncreasedEvent(i, quantity, unitCost))

	return nil
}

// DecreaseStock decreases the quantity. The unit cost is unchanged.
func (i *InventoryItem) DecreaseStock(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if i.Quantity.LessThan(quantity) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	}

	i.Quantity = i.Quantity.Sub(quantity)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockDecreasedEvent(i, quantity))

	if i.ReorderLevel.GreaterThan(decimal.Zero) && i.Quantity.LessThan(i.ReorderLevel) {
		i.AddDomainEvent(NewStockBelowReorderLevelEvent(i))
	}

	return nil
}

// SetReorderLevel sets the alert threshold for low stock
func (i *InventoryItem) SetReorderLevel(level decimal.Decimal) error {
	if level.IsNegative() {
		return shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}

	i.ReorderLevel = level
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// HasStock returns true if at least the given quantity is available
func (i *InventoryItem) HasStock(quantity decimal.Decimal) bool {
	return i.Quantity.GreaterThanOrEqual(quantity)
}

// IsBelowReorderLevel returns true if stock has fallen below the alert threshold
func (i *InventoryItem) IsBelowReorderLevel() bool {
	if i.ReorderLevel.IsZero() {
		return false
	}
	return i.Quantity.LessThan(i.ReorderLevel)
}

// StockValue returns the total value of the stock on hand
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.Quantity.Mul(i.UnitCost).Round(2)
}
