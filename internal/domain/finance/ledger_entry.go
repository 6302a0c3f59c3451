package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// LedgerDirection distinguishes money we owe from money owed to us
type LedgerDirection string

const (
	LedgerDirectionPayable    LedgerDirection = "PAYABLE"
	LedgerDirectionReceivable LedgerDirection = "RECEIVABLE"
)

// IsValid checks if the direction is valid
func (d LedgerDirection) IsValid() bool {
	return d == LedgerDirectionPayable || d == LedgerDirectionReceivable
}

// PartyType identifies the counterparty of a ledger entry
type PartyType string

const (
	PartyTypeVendor   PartyType = "VENDOR"
	PartyTypeCustomer PartyType = "CUSTOMER"
)

// IsValid checks if the party type is valid
func (p PartyType) IsValid() bool {
	return p == PartyTypeVendor || p == PartyTypeCustomer
}

// LedgerSourceType identifies the business document that created an entry
type LedgerSourceType string

const (
	LedgerSourceThreadPurchase LedgerSourceType = "THREAD_PURCHASE"
	LedgerSourceDyeingProcess  LedgerSourceType = "DYEING_PROCESS"
	LedgerSourceSale           LedgerSourceType = "SALE"
	LedgerSourceManual         LedgerSourceType = "MANUAL"
)

// IsValid checks if the source type is valid
func (s LedgerSourceType) IsValid() bool {
	switch s {
	case LedgerSourceThreadPurchase, LedgerSourceDyeingProcess, LedgerSourceSale, LedgerSourceManual:
		return true
	}
	return false
}

// LedgerStatus represents the settlement state of a ledger entry
type LedgerStatus string

const (
	LedgerStatusPending   LedgerStatus = "PENDING"   // Nothing paid yet
	LedgerStatusPartial   LedgerStatus = "PARTIAL"   // 0 < paid < amount
	LedgerStatusPaid      LedgerStatus = "PAID"      // Fully settled
	LedgerStatusOverdue   LedgerStatus = "OVERDUE"   // Past due date with balance outstanding
	LedgerStatusCancelled LedgerStatus = "CANCELLED" // Voided, accepts no payments
)

// IsValid checks if the status is a valid LedgerStatus
func (s LedgerStatus) IsValid() bool {
	switch s {
	case LedgerStatusPending, LedgerStatusPartial, LedgerStatusPaid, LedgerStatusOverdue, LedgerStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of LedgerStatus
func (s LedgerStatus) String() string {
	return string(s)
}

// CanApplyPayment returns true if payments may be applied in this status
func (s LedgerStatus) CanApplyPayment() bool {
	switch s {
	case LedgerStatusPending, LedgerStatusPartial, LedgerStatusOverdue:
		return true
	}
	return false
}

// LedgerEntry represents one payable or receivable obligation.
// The invariant RemainingAmount = Amount - PaidAmount holds at all times.
type LedgerEntry struct {
	shared.TenantAggregateRoot
	EntryNumber     string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_ledger_tenant_number,priority:2"`
	Direction       LedgerDirection  `gorm:"type:varchar(10);not null;index"`
	PartyType       PartyType        `gorm:"type:varchar(10);not null"`
	PartyID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	SourceType      LedgerSourceType `gorm:"type:varchar(20);not null;index:idx_ledger_source"`
	SourceID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_ledger_source"`
	Amount          decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	PaidAmount      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	RemainingAmount decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Status          LedgerStatus     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	IssueDate       time.Time        `gorm:"type:timestamptz;not null"`
	DueDate         *time.Time       `gorm:"type:timestamptz;index"`
	Notes           string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// NewLedgerEntry creates a new unsettled ledger entry.
// paymentTermsDays shifts the due date from the issue date; zero means due immediately.
func NewLedgerEntry(tenantID uuid.UUID, entryNumber string, direction LedgerDirection, partyType PartyType, partyID uuid.UUID, sourceType LedgerSourceType, sourceID uuid.UUID, amount decimal.Decimal, paymentTermsDays int) (*LedgerEntry, error) {
	if entryNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Entry number cannot be empty")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Direction must be PAYABLE or RECEIVABLE")
	}
	if !partyType.IsValid() || partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party type and ID are required")
	}
	if !sourceType.IsValid() || sourceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Source type and ID are required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if paymentTermsDays < 0 {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TERMS", "Payment terms cannot be negative")
	}

	now := time.Now()
	entry := &LedgerEntry{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EntryNumber:         entryNumber,
		Direction:           direction,
		PartyType:           partyType,
		PartyID:             partyID,
		SourceType:          sourceType,
		SourceID:            sourceID,
		Amount:              amount,
		PaidAmount:          decimal.Zero,
		RemainingAmount:     amount,
		Status:              LedgerStatusPending,
		IssueDate:           now,
	}
	// Zero payment terms means due immediately
	due := now.AddDate(0, 0, paymentTermsDays)
	entry.DueDate = &due

	entry.AddDomainEvent(NewLedgerEntryCreatedEvent(entry))

	return entry, nil
}

// ApplyPayment records a payment against the entry and keeps
// remaining = amount - paid.
func (e *LedgerEntry) ApplyPayment(amount decimal.Decimal) error {
	if !e.Status.CanApplyPayment() {
		return shared.NewDomainError("INVALID_STATUS", "Entry does not accept payments in its current status")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.GreaterThan(e.RemainingAmount) {
		return shared.NewDomainError("EXCEEDS_REMAINING", "Payment amount exceeds remaining balance")
	}

	e.PaidAmount = e.PaidAmount.Add(amount)
	e.RemainingAmount = e.Amount.Sub(e.PaidAmount)

	if e.RemainingAmount.IsZero() {
		e.Status = LedgerStatusPaid
	} else {
		e.Status = LedgerStatusPartial
	}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewLedgerPaymentAppliedEvent(e, amount))

	return nil
}

// MarkOverdue flags an unsettled entry whose due date has passed
func (e *LedgerEntry) MarkOverdue() error {
	if e.Status != LedgerStatusPending && e.Status != LedgerStatusPartial {
		return shared.NewDomainError("INVALID_STATUS", "Only pending or partial entries can become overdue")
	}
	if !e.IsOverdue() {
		return shared.NewDomainError("NOT_OVERDUE", "Entry is not past its due date")
	}

	e.Status = LedgerStatusOverdue
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// Cancel voids an entry before any payment has been applied
func (e *LedgerEntry) Cancel() error {
	if e.PaidAmount.GreaterThan(decimal.Zero) {
		return shared.NewDomainError("INVALID_STATUS", "Entries with payments cannot be cancelled")
	}
	if e.Status == LedgerStatusCancelled {
		return shared.NewDomainError("INVALID_STATUS", "Entry is already cancelled")
	}

	e.Status = LedgerStatusCancelled
	e.RemainingAmount = decimal.Zero
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewLedgerEntryCancelledEvent(e))

	return nil
}

// IsOverdue returns true if the entry is unsettled past its due date
func (e *LedgerEntry) IsOverdue() bool {
	if e.Status == LedgerStatusPaid || e.Status == LedgerStatusCancelled {
		return false
	}
	if e.DueDate == nil {
		return false
	}
	return time.Now().After(*e.DueDate)
}

// IsSettled returns true once the entry is fully paid
func (e *LedgerEntry) IsSettled() bool {
	return e.Status == LedgerStatusPaid
}
