package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// InventoryItemRepository defines the interface for inventory item persistence
type InventoryItemRepository interface {
	// FindByID finds an inventory item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByIDForTenant finds an inventory item by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*InventoryItem, error)

	// FindByKey finds the item for an article in a given processing state.
	// Returns nil without error when no stock record exists yet.
	FindByKey(ctx context.Context, tenantID uuid.UUID, itemType ItemType, article, color string) (*InventoryItem, error)

	// FindAllForTenant finds all inventory items for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]InventoryItem, error)

	// FindBelowReorderLevel finds items whose stock has fallen below the reorder threshold
	FindBelowReorderLevel(ctx context.Context, tenantID uuid.UUID) ([]InventoryItem, error)

	// Save creates or updates an inventory item
	Save(ctx context.Context, item *InventoryItem) error

	// CountForTenant counts inventory items for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// InventoryMovementRepository defines the interface for movement persistence.
// Movements are append-only.
type InventoryMovementRepository interface {
	// Save appends a movement record
	Save(ctx context.Context, movement *InventoryMovement) error

	// FindByItem finds movements for an inventory item, newest first
	FindByItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) ([]InventoryMovement, error)

	// FindBySource finds movements produced by a source document
	FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType SourceType, sourceID uuid.UUID) ([]InventoryMovement, error)

	// CountByItem counts movements for an inventory item
	CountByItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) (int64, error)
}
