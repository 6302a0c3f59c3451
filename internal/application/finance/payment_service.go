package finance

import (
	"context"

	"github.com/google/uuid"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/shared"
)

// PaymentService records payments against payables and receivables
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	txScope     appshared.TransactionScope
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	txScope appshared.TransactionScope,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		txScope:     txScope,
	}
}

// Record applies a payment to a ledger entry. In one transaction the entry's
// paid amount grows, its status advances, and the party balance comes down.
func (s *PaymentService) Record(ctx context.Context, tenantID uuid.UUID, req RecordPaymentRequest) (*PaymentResponse, error) {
	var payment *finance.Payment

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		entry, err := repos.LedgerRepo().FindByIDForTenant(ctx, tenantID, req.LedgerEntryID)
		if err != nil {
			return err
		}

		if err := entry.ApplyPayment(req.Amount); err != nil {
			return err
		}
		if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
			return err
		}

		paymentNumber, err := repos.PaymentRepo().GeneratePaymentNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		payment, err = finance.NewPayment(tenantID, paymentNumber, entry, req.Amount, finance.PaymentMethod(req.Method), req.Reference)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			payment.SetNotes(req.Notes)
		}
		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}

		switch entry.PartyType {
		case finance.PartyTypeVendor:
			vendor, err := repos.VendorRepo().FindByIDForTenant(ctx, tenantID, entry.PartyID)
			if err != nil {
				return err
			}
			if err := vendor.DeductBalance(req.Amount); err != nil {
				return err
			}
			return repos.VendorRepo().Save(ctx, vendor)
		case finance.PartyTypeCustomer:
			customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, entry.PartyID)
			if err != nil {
				return err
			}
			if err := customer.DeductBalance(req.Amount); err != nil {
				return err
			}
			return repos.CustomerRepo().Save(ctx, customer)
		}
		return shared.NewDomainError("INVALID_PARTY", "Ledger entry has an unknown party type")
	})
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, tenantID, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByIDForTenant(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, tenantID uuid.UUID, filter PaymentListFilter) (*shared.Paginated[PaymentResponse], error) {
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
	if filter.PartyType != "" {
		domainFilter.Filters["party_type"] = filter.PartyType
	}
	if filter.PartyID != "" {
		domainFilter.Filters["party_id"] = filter.PartyID
	}
	if filter.Method != "" {
		domainFilter.Filters["method"] = filter.Method
	}
	if filter.DateFrom != "" {
		domainFilter.Filters["date_from"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		domainFilter.Filters["date_to"] = filter.DateTo
	}

	payments, err := s.paymentRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.paymentRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToPaymentResponses(payments), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}
