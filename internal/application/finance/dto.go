package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/finance"
)

// RecordPaymentRequest represents a request to pay against a ledger entry
type RecordPaymentRequest struct {
	LedgerEntryID uuid.UUID       `json:"ledger_entry_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,dgt=0"`
	Method        string          `json:"method" binding:"required,oneof=CASH BANK_TRANSFER CHEQUE UPI"`
	Reference     string          `json:"reference" binding:"omitempty,max=100"`
	Notes         string          `json:"notes"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	PaymentNumber string          `json:"payment_number"`
	LedgerEntryID uuid.UUID       `json:"ledger_entry_id"`
	PartyType     string          `json:"party_type"`
	PartyID       uuid.UUID       `json:"party_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LedgerEntryResponse represents a ledger entry in API responses
type LedgerEntryResponse struct {
	ID              uuid.UUID         `json:"id"`
	TenantID        uuid.UUID         `json:"tenant_id"`
	EntryNumber     string            `json:"entry_number"`
	Direction       string            `json:"direction"`
	PartyType       string            `json:"party_type"`
	PartyID         uuid.UUID         `json:"party_id"`
	SourceType      string            `json:"source_type"`
	SourceID        uuid.UUID         `json:"source_id"`
	Amount          decimal.Decimal   `json:"amount"`
	PaidAmount      decimal.Decimal   `json:"paid_amount"`
	RemainingAmount decimal.Decimal   `json:"remaining_amount"`
	Status          string            `json:"status"`
	IssueDate       time.Time         `json:"issue_date"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
	Overdue         bool              `json:"overdue"`
	Notes           string            `json:"notes"`
	Payments        []PaymentResponse `json:"payments,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Version         int               `json:"version"`
}

// PaymentListFilter represents filter options for the payments list
type PaymentListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir"`
	PartyType string `form:"party_type" binding:"omitempty,oneof=VENDOR CUSTOMER"`
	PartyID   string `form:"party_id" binding:"omitempty,uuid"`
	Method    string `form:"method" binding:"omitempty,oneof=CASH BANK_TRANSFER CHEQUE UPI"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerListFilter represents filter options for the ledger list
type LedgerListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir"`
	Direction string `form:"direction" binding:"omitempty,oneof=PAYABLE RECEIVABLE"`
	PartyType string `form:"party_type" binding:"omitempty,oneof=VENDOR CUSTOMER"`
	PartyID   string `form:"party_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING PARTIAL PAID OVERDUE CANCELLED"`
	Overdue   bool   `form:"overdue"`
}

// SweepOverdueResponse reports how many entries were flagged overdue
type SweepOverdueResponse struct {
	Marked int `json:"marked"`
}

// OutstandingSummaryResponse totals the open balances per direction
type OutstandingSummaryResponse struct {
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
}

// ToPaymentResponse converts a Payment aggregate to a PaymentResponse DTO
func ToPaymentResponse(payment *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		TenantID:      payment.TenantID,
		PaymentNumber: payment.PaymentNumber,
		LedgerEntryID: payment.LedgerEntryID,
		PartyType:     string(payment.PartyType),
		PartyID:       payment.PartyID,
		Amount:        payment.Amount,
		Method:        payment.Method.String(),
		Reference:     payment.Reference,
		PaymentDate:   payment.PaymentDate,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of payments to response DTOs
func ToPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ToLedgerEntryResponse converts a LedgerEntry aggregate to a response DTO
func ToLedgerEntryResponse(entry *finance.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:              entry.ID,
		TenantID:        entry.TenantID,
		EntryNumber:     entry.EntryNumber,
		Direction:       string(entry.Direction),
		PartyType:       string(entry.PartyType),
		PartyID:         entry.PartyID,
		SourceType:      string(entry.SourceType),
		SourceID:        entry.SourceID,
		Amount:          entry.Amount,
		PaidAmount:      entry.PaidAmount,
		RemainingAmount: entry.RemainingAmount,
		Status:          entry.Status.String(),
		IssueDate:       entry.IssueDate,
		DueDate:         entry.DueDate,
		Overdue:         entry.IsOverdue(),
		Notes:           entry.Notes,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
		Version:         entry.Version,
	}
}

// ToLedgerEntryResponses converts a slice of entries to response DTOs
func ToLedgerEntryResponses(entries []finance.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
