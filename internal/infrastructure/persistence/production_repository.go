package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/shared"
)

var dyeingSortColumns = map[string]bool{
	"lot_number":  true,
	"color":       true,
	"status":      true,
	"dyeing_cost": true,
	"issue_date":  true,
	"created_at":  true,
}

// GormDyeingProcessRepository implements DyeingProcessRepository using GORM
type GormDyeingProcessRepository struct {
	db *gorm.DB
}

// NewGormDyeingProcessRepository creates a new GormDyeingProcessRepository
func NewGormDyeingProcessRepository(db *gorm.DB) *GormDyeingProcessRepository {
	return &GormDyeingProcessRepository{db: db}
}

// FindByID finds a process by its ID
func (r *GormDyeingProcessRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.DyeingProcess, error) {
	var process production.DyeingProcess
	if err := r.db.WithContext(ctx).First(&process, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &process, nil
}

// FindByIDForTenant finds a process by ID within a tenant
func (r *GormDyeingProcessRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*production.DyeingProcess, error) {
	var process production.DyeingProcess
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&process).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &process, nil
}

// FindAllForTenant finds all processes for a tenant
func (r *GormDyeingProcessRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]production.DyeingProcess, error) {
	var processes []production.DyeingProcess
	query := r.filtered(ctx, tenantID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, dyeingSortColumns, "issue_date DESC")

	if err := query.Find(&processes).Error; err != nil {
		return nil, err
	}
	return processes, nil
}

// Save creates or updates a process
func (r *GormDyeingProcessRepository) Save(ctx context.Context, process *production.DyeingProcess) error {
	return r.db.WithContext(ctx).Save(process).Error
}

// CountForTenant counts processes for a tenant
func (r *GormDyeingProcessRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts processes in a given status for a tenant
func (r *GormDyeingProcessRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status production.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&production.DyeingProcess{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateLotNumber generates the next dyeing lot number for a tenant.
// Format: LOT-YYYY-NNNNN
func (r *GormDyeingProcessRepository) GenerateLotNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return generateDocumentNumber(ctx, r.db, "dyeing_processes", "lot_number", "LOT", tenantID)
}

func (r *GormDyeingProcessRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&production.DyeingProcess{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where("lot_number ILIKE ? OR thread_article ILIKE ? OR color ILIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "color":
			query = query.Where("color = ?", value)
		}
	}

	return query
}

var _ production.DyeingProcessRepository = (*GormDyeingProcessRepository)(nil)

var fabricSortColumns = map[string]bool{
	"batch_number":    true,
	"fabric_article":  true,
	"color":           true,
	"status":          true,
	"fabric_produced": true,
	"start_date":      true,
	"created_at":      true,
}

// GormFabricProductionRepository implements FabricProductionRepository using GORM
type GormFabricProductionRepository struct {
	db *gorm.DB
}

// NewGormFabricProductionRepository creates a new GormFabricProductionRepository
func NewGormFabricProductionRepository(db *gorm.DB) *GormFabricProductionRepository {
	return &GormFabricProductionRepository{db: db}
}

// FindByID finds a batch by its ID
func (r *GormFabricProductionRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.FabricProduction, error) {
	var batch production.FabricProduction
	if err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByIDForTenant finds a batch by ID within a tenant
func (r *GormFabricProductionRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*production.FabricProduction, error) {
	var batch production.FabricProduction
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindAllForTenant finds all batches for a tenant
func (r *GormFabricProductionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]production.FabricProduction, error) {
	var batches []production.FabricProduction
	query := r.filtered(ctx, tenantID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, fabricSortColumns, "start_date DESC")

	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Save creates or updates a batch
func (r *GormFabricProductionRepository) Save(ctx context.Context, batch *production.FabricProduction) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// CountForTenant counts batches for a tenant
func (r *GormFabricProductionRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts batches in a given status for a tenant
func (r *GormFabricProductionRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status production.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&production.FabricProduction{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateBatchNumber generates the next fabric batch number for a tenant.
// Format: BATCH-YYYY-NNNNN
func (r *GormFabricProductionRepository) GenerateBatchNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return generateDocumentNumber(ctx, r.db, "fabric_productions", "batch_number", "BATCH", tenantID)
}

func (r *GormFabricProductionRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&production.FabricProduction{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where("batch_number ILIKE ? OR fabric_article ILIKE ? OR color ILIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "color":
			query = query.Where("color = ?", value)
		}
	}

	return query
}

var _ production.FabricProductionRepository = (*GormFabricProductionRepository)(nil)
