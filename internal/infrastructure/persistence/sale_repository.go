package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/sales"
	"github.com/textile/backend/internal/domain/shared"
)

var saleSortColumns = map[string]bool{
	"invoice_number": true,
	"status":         true,
	"total_amount":   true,
	"sale_date":      true,
	"created_at":     true,
}

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID, with lines preloaded
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindByIDForTenant finds a sale by ID within a tenant, with lines preloaded
func (r *GormSaleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllForTenant finds all sales for a tenant
func (r *GormSaleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]sales.Sale, error) {
	var result []sales.Sale
	query := r.filtered(ctx, tenantID, filter).Preload("Items")
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, saleSortColumns, "sale_date DESC")

	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Save creates or updates a sale and its lines
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// CountForTenant counts sales for a tenant
func (r *GormSaleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateInvoiceNumber generates the next invoice number for a tenant.
// Format: SI-YYYY-NNNNN
func (r *GormSaleRepository) GenerateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return generateDocumentNumber(ctx, r.db, "sales", "invoice_number", "SI", tenantID)
}

func (r *GormSaleRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&sales.Sale{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		query = query.Where("invoice_number ILIKE ?", searchPattern(filter.Search))
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "date_from":
			query = query.Where("sale_date >= ?", value)
		case "date_to":
			query = query.Where("sale_date <= ?", value)
		}
	}

	return query
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
