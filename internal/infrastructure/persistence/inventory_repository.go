package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/shared"
)

var inventoryItemSortColumns = map[string]bool{
	"type":       true,
	"article":    true,
	"color":      true,
	"quantity":   true,
	"unit_cost":  true,
	"created_at": true,
}

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindByID finds an inventory item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByIDForTenant finds an inventory item by ID within a tenant
func (r *GormInventoryItemRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByKey finds the item for an article in a given processing state.
// Returns nil without error when no stock record exists yet.
func (r *GormInventoryItemRepository) FindByKey(ctx context.Context, tenantID uuid.UUID, itemType inventory.ItemType, article, color string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND type = ? AND article = ? AND color = ?", tenantID, itemType, article, color).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindAllForTenant finds all inventory items for a tenant
func (r *GormInventoryItemRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.filtered(ctx, tenantID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, inventoryItemSortColumns, "type ASC, article ASC, color ASC")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindBelowReorderLevel finds items whose stock has fallen below the reorder threshold
func (r *GormInventoryItemRepository) FindBelowReorderLevel(ctx context.Context, tenantID uuid.UUID) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND reorder_level > 0 AND quantity < reorder_level", tenantID).
		Order("type ASC, article ASC, color ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an inventory item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// CountForTenant counts inventory items for a tenant
func (r *GormInventoryItemRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInventoryItemRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where("article ILIKE ? OR color ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "article":
			query = query.Where("article = ?", value)
		case "color":
			query = query.Where("color = ?", value)
		}
	}

	return query
}

var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)

var movementSortColumns = map[string]bool{
	"movement_type": true,
	"created_at":    true,
}

// GormInventoryMovementRepository implements InventoryMovementRepository using GORM.
// Movements are append-only; there is no update or delete.
type GormInventoryMovementRepository struct {
	db *gorm.DB
}

// NewGormInventoryMovementRepository creates a new GormInventoryMovementRepository
func NewGormInventoryMovementRepository(db *gorm.DB) *GormInventoryMovementRepository {
	return &GormInventoryMovementRepository{db: db}
}

// Save appends a movement record
func (r *GormInventoryMovementRepository) Save(ctx context.Context, movement *inventory.InventoryMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByItem finds movements for an inventory item, newest first
func (r *GormInventoryMovementRepository) FindByItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	var movements []inventory.InventoryMovement
	query := r.byItem(ctx, tenantID, itemID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, movementSortColumns, "created_at DESC")

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindBySource finds movements produced by a source document
func (r *GormInventoryMovementRepository) FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType inventory.SourceType, sourceID uuid.UUID) ([]inventory.InventoryMovement, error) {
	var movements []inventory.InventoryMovement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND source_type = ? AND source_id = ?", tenantID, sourceType, sourceID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// CountByItem counts movements for an inventory item
func (r *GormInventoryMovementRepository) CountByItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.byItem(ctx, tenantID, itemID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInventoryMovementRepository) byItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&inventory.InventoryMovement{}).
		Where("tenant_id = ? AND inventory_item_id = ?", tenantID, itemID)

	for key, value := range filter.Filters {
		switch key {
		case "movement_type":
			query = query.Where("movement_type = ?", value)
		case "source_type":
			query = query.Where("source_type = ?", value)
		}
	}

	return query
}

var _ inventory.InventoryMovementRepository = (*GormInventoryMovementRepository)(nil)
