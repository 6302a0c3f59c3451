package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/shared"
)

var ledgerSortColumns = map[string]bool{
	"entry_number":     true,
	"direction":        true,
	"status":           true,
	"amount":           true,
	"remaining_amount": true,
	"issue_date":       true,
	"due_date":         true,
	"created_at":       true,
}

// GormLedgerEntryRepository implements LedgerEntryRepository using GORM
type GormLedgerEntryRepository struct {
	db *gorm.DB
}

// NewGormLedgerEntryRepository creates a new GormLedgerEntryRepository
func NewGormLedgerEntryRepository(db *gorm.DB) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{db: db}
}

// FindByID finds an entry by its ID
func (r *GormLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	var entry finance.LedgerEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByIDForTenant finds an entry by ID within a tenant
func (r *GormLedgerEntryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.LedgerEntry, error) {
	var entry finance.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindBySource finds the entry created by a business document
func (r *GormLedgerEntryRepository) FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType finance.LedgerSourceType, sourceID uuid.UUID) (*finance.LedgerEntry, error) {
	var entry finance.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND source_type = ? AND source_id = ?", tenantID, sourceType, sourceID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAllForTenant finds all entries for a tenant
func (r *GormLedgerEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.LedgerEntry, error) {
	var entries []finance.LedgerEntry
	query := r.filtered(ctx, tenantID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, ledgerSortColumns, "issue_date DESC")

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindDuePastDate finds unsettled entries whose due date has passed
func (r *GormLedgerEntryRepository) FindDuePastDate(ctx context.Context, tenantID uuid.UUID) ([]finance.LedgerEntry, error) {
	var entries []finance.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ? AND due_date IS NOT NULL AND due_date < ?",
			tenantID,
			[]finance.LedgerStatus{finance.LedgerStatusPending, finance.LedgerStatusPartial},
			time.Now()).
		Order("due_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates an entry
func (r *GormLedgerEntryRepository) Save(ctx context.Context, entry *finance.LedgerEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// CountForTenant counts entries for a tenant
func (r *GormLedgerEntryRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumRemainingByDirection totals the outstanding balance per direction
func (r *GormLedgerEntryRepository) SumRemainingByDirection(ctx context.Context, tenantID uuid.UUID, direction finance.LedgerDirection) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&finance.LedgerEntry{}).
		Select("SUM(remaining_amount)").
		Where("tenant_id = ? AND direction = ? AND status NOT IN ?",
			tenantID, direction,
			[]finance.LedgerStatus{finance.LedgerStatusPaid, finance.LedgerStatusCancelled}).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// GenerateEntryNumber generates the next entry number for a tenant.
// Format: LG-YYYY-NNNNN
func (r *GormLedgerEntryRepository) GenerateEntryNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return generateDocumentNumber(ctx, r.db, "ledger_entries", "entry_number", "LG", tenantID)
}

func (r *GormLedgerEntryRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&finance.LedgerEntry{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		query = query.Where("entry_number ILIKE ?", searchPattern(filter.Search))
	}

	for key, value := range filter.Filters {
		switch key {
		case "direction":
			query = query.Where("direction = ?", value)
		case "party_type":
			query = query.Where("party_type = ?", value)
		case "party_id":
			query = query.Where("party_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "overdue":
			query = query.Where("status IN ? AND due_date IS NOT NULL AND due_date < ?",
				[]finance.LedgerStatus{finance.LedgerStatusPending, finance.LedgerStatusPartial, finance.LedgerStatusOverdue},
				time.Now())
		}
	}

	return query
}

var _ finance.LedgerEntryRepository = (*GormLedgerEntryRepository)(nil)

var paymentSortColumns = map[string]bool{
	"payment_number": true,
	"amount":         true,
	"method":         true,
	"payment_date":   true,
	"created_at":     true,
}

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByIDForTenant finds a payment by ID within a tenant
func (r *GormPaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByLedgerEntry finds all payments applied to a ledger entry
func (r *GormPaymentRepository) FindByLedgerEntry(ctx context.Context, tenantID, entryID uuid.UUID) ([]finance.Payment, error) {
	var payments []finance.Payment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND ledger_entry_id = ?", tenantID, entryID).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAllForTenant finds all payments for a tenant
func (r *GormPaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Payment, error) {
	var payments []finance.Payment
	query := r.filtered(ctx, tenantID, filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, paymentSortColumns, "payment_date DESC")

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates a payment record
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// CountForTenant counts payments for a tenant
func (r *GormPaymentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GeneratePaymentNumber generates the next payment number for a tenant.
// Format: PV-YYYY-NNNNN
func (r *GormPaymentRepository) GeneratePaymentNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return generateDocumentNumber(ctx, r.db, "payments", "payment_number", "PV", tenantID)
}

func (r *GormPaymentRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&finance.Payment{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where("payment_number ILIKE ? OR reference ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "party_type":
			query = query.Where("party_type = ?", value)
		case "party_id":
			query = query.Where("party_id = ?", value)
		case "method":
			query = query.Where("method = ?", value)
		case "date_from":
			query = query.Where("payment_date >= ?", value)
		case "date_to":
			query = query.Where("payment_date <= ?", value)
		}
	}

	return query
}

var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
