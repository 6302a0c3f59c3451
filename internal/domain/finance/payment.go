package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// PaymentMethod represents how money changed hands
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodUPI          PaymentMethod = "UPI"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodUPI:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment records money paid or received against a ledger entry.
// Payments are immutable once created.
type Payment struct {
	shared.TenantAggregateRoot
	PaymentNumber string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_payment_tenant_number,priority:2"`
	LedgerEntryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PartyType     PartyType       `gorm:"type:varchar(10);not null"`
	PartyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null"`
	Reference     string          `gorm:"type:varchar(100)"` // Cheque number, UTR, etc.
	PaymentDate   time.Time       `gorm:"type:timestamptz;not null"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a payment against a ledger entry
func NewPayment(tenantID uuid.UUID, paymentNumber string, entry *LedgerEntry, amount decimal.Decimal, method PaymentMethod, reference string) (*Payment, error) {
	if paymentNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Payment number cannot be empty")
	}
	if entry == nil {
		return nil, shared.NewDomainError("INVALID_LEDGER_ENTRY", "Ledger entry is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Invalid payment method")
	}
	if len(reference) > 100 {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Reference cannot exceed 100 characters")
	}

	payment := &Payment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PaymentNumber:       paymentNumber,
		LedgerEntryID:       entry.ID,
		PartyType:           entry.PartyType,
		PartyID:             entry.PartyID,
		Amount:              amount,
		Method:              method,
		Reference:           reference,
		PaymentDate:         time.Now(),
	}

	payment.AddDomainEvent(NewPaymentRecordedEvent(payment))

	return payment, nil
}

// SetNotes sets the payment notes
func (p *Payment) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsOutgoing returns true for payments to vendors
func (p *Payment) IsOutgoing() bool {
	return p.PartyType == PartyTypeVendor
}
