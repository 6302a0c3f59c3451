package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// MovementType represents the type of stock movement
type MovementType string

const (
	// MovementTypePurchaseIn records raw thread received from a purchase
	MovementTypePurchaseIn MovementType = "PURCHASE_IN"
	// MovementTypeDyeingOut records raw thread issued to a dyeing process
	MovementTypeDyeingOut MovementType = "DYEING_OUT"
	// MovementTypeDyeingIn records dyed thread received from a completed dyeing process
	MovementTypeDyeingIn MovementType = "DYEING_IN"
	// MovementTypeProductionOut records dyed thread consumed by fabric production
	MovementTypeProductionOut MovementType = "PRODUCTION_OUT"
	// MovementTypeProductionIn records fabric received from completed production
	MovementTypeProductionIn MovementType = "PRODUCTION_IN"
	// MovementTypeSaleOut records fabric shipped against a sale
	MovementTypeSaleOut MovementType = "SALE_OUT"
	// MovementTypeAdjustment records a manual stock correction
	MovementTypeAdjustment MovementType = "ADJUSTMENT"
	// MovementTypeReversal records stock returned by a cancelled process or sale
	MovementTypeReversal MovementType = "REVERSAL"
)

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypePurchaseIn,
		MovementTypeDyeingOut,
		MovementTypeDyeingIn,
		MovementTypeProductionOut,
		MovementTypeProductionIn,
		MovementTypeSaleOut,
		MovementTypeAdjustment,
		MovementTypeReversal:
		return true
	}
	return false
}

// IsIncrease returns true if this movement type increases stock
func (t MovementType) IsIncrease() bool {
	switch t {
	case MovementTypePurchaseIn, MovementTypeDyeingIn, MovementTypeProductionIn, MovementTypeReversal:
		return true
	}
	return false
}

// IsDecrease returns true if this movement type decreases stock
func (t MovementType) IsDecrease() bool {
	switch t {
	case MovementTypeDyeingOut, MovementTypeProductionOut, MovementTypeSaleOut:
		return true
	}
	return false
}

// SourceType represents the source document type for a movement
type SourceType string

const (
	SourceTypeThreadPurchase   SourceType = "THREAD_PURCHASE"
	SourceTypeDyeingProcess    SourceType = "DYEING_PROCESS"
	SourceTypeFabricProduction SourceType = "FABRIC_PRODUCTION"
	SourceTypeSale             SourceType = "SALE"
	SourceTypeManual           SourceType = "MANUAL"
)

// String returns the string representation of SourceType
func (s SourceType) String() string {
	return string(s)
}

// IsValid returns true if the source type is valid
func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeThreadPurchase,
		SourceTypeDyeingProcess,
		SourceTypeFabricProduction,
		SourceTypeSale,
		SourceTypeManual:
		return true
	}
	return false
}

// InventoryMovement is an immutable record of a stock change.
// Corrections are made with new movements, never by editing existing rows.
type InventoryMovement struct {
	shared.BaseEntity
	TenantID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_inv_mv_tenant_time,priority:1"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index:idx_inv_mv_item"`
	MovementType    MovementType    `gorm:"type:varchar(20);not null;index:idx_inv_mv_type"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Always positive, direction determined by type
	UnitCost        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceBefore   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SourceType      SourceType      `gorm:"type:varchar(20);not null;index:idx_inv_mv_source"`
	SourceID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_inv_mv_source"`
	Note            string          `gorm:"type:varchar(255)"`
	MovementDate    time.Time       `gorm:"type:timestamptz;not null;index:idx_inv_mv_tenant_time,priority:2"`
}

// TableName returns the table name for GORM
func (InventoryMovement) TableName() string {
	return "inventory_movements"
}

// NewInventoryMovement creates a movement record for a stock change that already
// happened on the item. balanceBefore is the quantity prior to the change.
func NewInventoryMovement(
	item *InventoryItem,
	movementType MovementType,
	quantity decimal.Decimal,
	unitCost decimal.Decimal,
	balanceBefore decimal.Decimal,
	sourceType SourceType,
	sourceID uuid.UUID,
) (*InventoryMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Invalid movement type")
	}
	if !sourceType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE_TYPE", "Invalid source type")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if sourceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Source ID is required")
	}

	balanceAfter := balanceBefore.Add(quantity)
	if movementType.IsDecrease() {
		balanceAfter = balanceBefore.Sub(quantity)
	}
	if movementType == MovementTypeAdjustment {
		// Adjustments carry the direction in the item delta already applied
		balanceAfter = item.Quantity
	}
	if balanceAfter.IsNegative() {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK", "Movement would result in negative stock")
	}

	return &InventoryMovement{
		BaseEntity:      shared.NewBaseEntity(),
		TenantID:        item.TenantID,
		InventoryItemID: item.ID,
		MovementType:    movementType,
		Quantity:        quantity,
		UnitCost:        unitCost,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		SourceType:      sourceType,
		SourceID:        sourceID,
		MovementDate:    time.Now(),
	}, nil
}

// WithNote attaches a free-form note to the movement
func (m *InventoryMovement) WithNote(note string) *InventoryMovement {
	m.Note = note
	return m
}

// TotalCost returns the total value moved
func (m *InventoryMovement) TotalCost() decimal.Decimal {
	return m.Quantity.Mul(m.UnitCost).Round(2)
}
