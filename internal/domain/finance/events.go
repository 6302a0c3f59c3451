package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeLedgerEntry = "LedgerEntry"
	AggregateTypePayment     = "Payment"
)

// Event type constants
const (
	EventTypeLedgerEntryCreated   = "LedgerEntryCreated"
	EventTypeLedgerPaymentApplied = "LedgerPaymentApplied"
	EventTypeLedgerEntryCancelled = "LedgerEntryCancelled"
	EventTypePaymentRecorded      = "PaymentRecorded"
)

// LedgerEntryCreatedEvent is published when a new obligation is booked
type LedgerEntryCreatedEvent struct {
	shared.BaseDomainEvent
	EntryNumber string          `json:"entry_number"`
	Direction   LedgerDirection `json:"direction"`
	PartyID     uuid.UUID       `json:"party_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLedgerEntryCreatedEvent creates a new LedgerEntryCreatedEvent
func NewLedgerEntryCreatedEvent(entry *LedgerEntry) *LedgerEntryCreatedEvent {
	return &LedgerEntryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLedgerEntryCreated, AggregateTypeLedgerEntry, entry.ID, entry.TenantID),
		EntryNumber:     entry.EntryNumber,
		Direction:       entry.Direction,
		PartyID:         entry.PartyID,
		Amount:          entry.Amount,
	}
}

// LedgerPaymentAppliedEvent is published when a payment settles part of an entry
type LedgerPaymentAppliedEvent struct {
	shared.BaseDomainEvent
	EntryNumber     string          `json:"entry_number"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	NewStatus       LedgerStatus    `json:"new_status"`
}

// NewLedgerPaymentAppliedEvent creates a new LedgerPaymentAppliedEvent
func NewLedgerPaymentAppliedEvent(entry *LedgerEntry, paymentAmount decimal.Decimal) *LedgerPaymentAppliedEvent {
	return &LedgerPaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLedgerPaymentApplied, AggregateTypeLedgerEntry, entry.ID, entry.TenantID),
		EntryNumber:     entry.EntryNumber,
		PaymentAmount:   paymentAmount,
		PaidAmount:      entry.PaidAmount,
		RemainingAmount: entry.RemainingAmount,
		NewStatus:       entry.Status,
	}
}

// LedgerEntryCancelledEvent is published when an entry is voided
type LedgerEntryCancelledEvent struct {
	shared.BaseDomainEvent
	EntryNumber string          `json:"entry_number"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLedgerEntryCancelledEvent creates a new LedgerEntryCancelledEvent
func NewLedgerEntryCancelledEvent(entry *LedgerEntry) *LedgerEntryCancelledEvent {
	return &LedgerEntryCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLedgerEntryCancelled, AggregateTypeLedgerEntry, entry.ID, entry.TenantID),
		EntryNumber:     entry.EntryNumber,
		Amount:          entry.Amount,
	}
}

// PaymentRecordedEvent is published when money changes hands
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentNumber string          `json:"payment_number"`
	LedgerEntryID uuid.UUID       `json:"ledger_entry_id"`
	PartyID       uuid.UUID       `json:"party_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(payment *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, payment.ID, payment.TenantID),
		PaymentNumber:   payment.PaymentNumber,
		LedgerEntryID:   payment.LedgerEntryID,
		PartyID:         payment.PartyID,
		Amount:          payment.Amount,
		Method:          payment.Method,
	}
}
