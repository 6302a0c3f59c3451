package finance

import (
	"context"

	"github.com/google/uuid"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/shared"
)

// LedgerService serves the payables and receivables ledger
type LedgerService struct {
	ledgerRepo  finance.LedgerEntryRepository
	paymentRepo finance.PaymentRepository
	txScope     appshared.TransactionScope
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	ledgerRepo finance.LedgerEntryRepository,
	paymentRepo finance.PaymentRepository,
	txScope appshared.TransactionScope,
) *LedgerService {
	return &LedgerService{
		ledgerRepo:  ledgerRepo,
		paymentRepo: paymentRepo,
		txScope:     txScope,
	}
}

// GetByID retrieves a ledger entry with its payment history
func (s *LedgerService) GetByID(ctx context.Context, tenantID, entryID uuid.UUID) (*LedgerEntryResponse, error) {
	entry, err := s.ledgerRepo.FindByIDForTenant(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByLedgerEntry(ctx, tenantID, entry.ID)
	if err != nil {
		return nil, err
	}

	response := ToLedgerEntryResponse(entry)
	response.Payments = ToPaymentResponses(payments)
	return &response, nil
}

// List retrieves ledger entries with filtering and pagination
func (s *LedgerService) List(ctx context.Context, tenantID uuid.UUID, filter LedgerListFilter) (*shared.Paginated[LedgerEntryResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Direction != "" {
		domainFilter.Filters["direction"] = filter.Direction
	}
	if filter.PartyType != "" {
		domainFilter.Filters["party_type"] = filter.PartyType
	}
	if filter.PartyID != "" {
		domainFilter.Filters["party_id"] = filter.PartyID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Overdue {
		domainFilter.Filters["overdue"] = "true"
	}

	entries, err := s.ledgerRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.ledgerRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToLedgerEntryResponses(entries), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// SweepOverdue flags unsettled entries whose due date has passed.
// Typically run from a scheduler once a day.
func (s *LedgerService) SweepOverdue(ctx context.Context, tenantID uuid.UUID) (*SweepOverdueResponse, error) {
	marked := 0

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		entries, err := repos.LedgerRepo().FindDuePastDate(ctx, tenantID)
		if err != nil {
			return err
		}

		for i := range entries {
			entry := &entries[i]
			if err := entry.MarkOverdue(); err != nil {
				return err
			}
			if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SweepOverdueResponse{Marked: marked}, nil
}

// OutstandingSummary totals the open payable and receivable balances
func (s *LedgerService) OutstandingSummary(ctx context.Context, tenantID uuid.UUID) (*OutstandingSummaryResponse, error) {
	payable, err := s.ledgerRepo.SumRemainingByDirection(ctx, tenantID, finance.LedgerDirectionPayable)
	if err != nil {
		return nil, err
	}

	receivable, err := s.ledgerRepo.SumRemainingByDirection(ctx, tenantID, finance.LedgerDirectionReceivable)
	if err != nil {
		return nil, err
	}

	return &OutstandingSummaryResponse{
		TotalPayable:    payable,
		TotalReceivable: receivable,
	}, nil
}
