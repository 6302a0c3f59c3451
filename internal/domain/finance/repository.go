package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// LedgerEntryRepository defines the interface for ledger entry persistence
type LedgerEntryRepository interface {
	// FindByID finds an entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)

	// FindByIDForTenant finds an entry by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*LedgerEntry, error)

	// FindBySource finds the entry created by a business document
	FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType LedgerSourceType, sourceID uuid.UUID) (*LedgerEntry, error)

	// FindAllForTenant finds all entries for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]LedgerEntry, error)

	// FindDuePastDate finds unsettled entries whose due date has passed
	FindDuePastDate(ctx context.Context, tenantID uuid.UUID) ([]LedgerEntry, error)

	// Save creates or updates an entry
	Save(ctx context.Context, entry *LedgerEntry) error

	// CountForTenant counts entries for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// SumRemainingByDirection totals the outstanding balance per direction
	SumRemainingByDirection(ctx context.Context, tenantID uuid.UUID, direction LedgerDirection) (decimal.Decimal, error)

	// GenerateEntryNumber generates the next entry number for a tenant
	GenerateEntryNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByIDForTenant finds a payment by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)

	// FindByLedgerEntry finds all payments applied to a ledger entry
	FindByLedgerEntry(ctx context.Context, tenantID, entryID uuid.UUID) ([]Payment, error)

	// FindAllForTenant finds all payments for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Payment, error)

	// Save creates a payment record
	Save(ctx context.Context, payment *Payment) error

	// CountForTenant counts payments for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// GeneratePaymentNumber generates the next payment number for a tenant
	GeneratePaymentNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
