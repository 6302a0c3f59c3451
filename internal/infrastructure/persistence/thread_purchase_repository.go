package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/procurement"
	"github.com/textile/backend/internal/domain/shared"
)

var threadPurchaseSortColumns = map[string]bool{
	"purchase_number": true,
	"article":         true,
	"status":          true,
	"total_amount":    true,
	"purchase_date":   true,
	"created_at":      true,
}

// GormThreadPurchaseRepository implements ThreadPurchaseRepository using GORM
type GormThreadPurchaseRepository struct {
	db *gorm.DB
}

// NewGormThreadPurchaseRepository creates a new GormThreadPurchaseRepository
func NewGormThreadPurchaseRepository(db *gorm.DB) *GormThreadPurchaseRepository {
	return &GormThreadPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID
func (r *GormThreadPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.ThreadPurchase, error) {
	var purchase procurement.ThreadPurchase
	if err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindByIDForTenant finds a purchase by ID within a tenant
func (r *GormThreadPurchaseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*procurement.ThreadPurchase, error) {
	var purchase procurement.ThreadPurchase
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindAllForTenant finds all purchases for a tenant
func (r *GormThreadPurchaseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]procurement.ThreadPurchase, error) {
	var purchases []procurement.ThreadPurchase
	query := r.filtered(ctx, tenantID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, threadPurchaseSortColumns, "purchase_date DESC")

	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Save creates or updates a purchase
func (r *GormThreadPurchaseRepository) Save(ctx context.Context, purchase *procurement.ThreadPurchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

// DeleteForTenant deletes a purchase within a tenant
func (r *GormThreadPurchaseRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&procurement.ThreadPurchase{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts purchases for a tenant
func (r *GormThreadPurchaseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GeneratePurchaseNumber generates the next purchase number for a tenant.
// Format: PO-YYYY-NNNNN
func (r *GormThreadPurchaseRepository) GeneratePurchaseNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return generateDocumentNumber(ctx, r.db, "thread_purchases", "purchase_number", "PO", tenantID)
}

func (r *GormThreadPurchaseRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&procurement.ThreadPurchase{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where("purchase_number ILIKE ? OR article ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "date_from":
			query = query.Where("purchase_date >= ?", value)
		case "date_to":
			query = query.Where("purchase_date <= ?", value)
		}
	}

	return query
}

var _ procurement.ThreadPurchaseRepository = (*GormThreadPurchaseRepository)(nil)
