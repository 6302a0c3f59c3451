package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/sales"
	"github.com/textile/backend/internal/domain/shared"
)

// SaleService handles fabric sale invoicing
type SaleService struct {
	saleRepo sales.SaleRepository
	txScope  appshared.TransactionScope
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo sales.SaleRepository,
	txScope appshared.TransactionScope,
) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		txScope:  txScope,
	}
}

// Create invoices fabric to a customer. In one transaction it checks and
// decreases FABRIC stock per line with SALE_OUT movements, then settles the
// money side: credit sales open a receivable and raise the customer balance,
// cash sales record a settled entry with its payment.
func (s *SaleService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSaleRequest) (*SaleResponse, error) {
	var sale *sales.Sale

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, req.CustomerID)
		if err != nil {
			return err
		}
		if !customer.IsActive() {
			return shared.NewDomainError("INVALID_STATUS", "Customer is not active")
		}

		// Every line must be covered by fabric stock before anything is written.
		// Lines for the same article and color draw from the same item.
		items := make(map[uuid.UUID]*inventory.InventoryItem)
		required := make(map[uuid.UUID]decimal.Decimal)
		lineItems := make([]*inventory.InventoryItem, len(req.Lines))
		for i, line := range req.Lines {
			item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeFabric, line.Article, line.Color)
			if err != nil {
				return err
			}
			if item == nil {
				return shared.NewDomainError("INSUFFICIENT_STOCK", "No fabric stock for "+line.Article+" "+line.Color)
			}
			if existing, ok := items[item.ID]; ok {
				item = existing
			} else {
				items[item.ID] = item
			}
			required[item.ID] = required[item.ID].Add(line.Quantity)
			if !item.HasStock(required[item.ID]) {
				return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient fabric stock for "+line.Article+" "+line.Color)
			}
			lineItems[i] = item
		}

		invoiceNumber, err := repos.SaleRepo().GenerateInvoiceNumber(ctx, tenantID)
		if err != nil {
			return err
		}

		lines := make([]sales.LineInput, len(req.Lines))
		for i, line := range req.Lines {
			lines[i] = sales.LineInput{
				Article:   line.Article,
				Color:     line.Color,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
		}
		sale, err = sales.NewSale(tenantID, invoiceNumber, customer.ID, lines, req.Discount, sales.PaymentMode(req.PaymentMode))
		if err != nil {
			return err
		}
		if req.Notes != "" {
			sale.SetNotes(req.Notes)
		}

		// A credit-limit breach aborts before any stock moves
		if sale.IsCredit() {
			if err := customer.AddBalance(sale.TotalAmount); err != nil {
				return err
			}
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}

		for i, line := range req.Lines {
			item := lineItems[i]
			balanceBefore := item.Quantity
			if err := item.DecreaseStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
				return err
			}

			movement, err := inventory.NewInventoryMovement(
				item, inventory.MovementTypeSaleOut,
				line.Quantity, item.UnitCost, balanceBefore,
				inventory.SourceTypeSale, sale.ID,
			)
			if err != nil {
				return err
			}
			if err := repos.MovementRepo().Save(ctx, movement.WithNote(sale.InvoiceNumber)); err != nil {
				return err
			}
		}

		entryNumber, err := repos.LedgerRepo().GenerateEntryNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		entry, err := finance.NewLedgerEntry(
			tenantID, entryNumber,
			finance.LedgerDirectionReceivable, finance.PartyTypeCustomer, customer.ID,
			finance.LedgerSourceSale, sale.ID,
			sale.TotalAmount, 0,
		)
		if err != nil {
			return err
		}

		if sale.IsCredit() {
			if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
				return err
			}
			return repos.CustomerRepo().Save(ctx, customer)
		}

		// Cash sales settle the entry immediately with a payment record
		if err := entry.ApplyPayment(sale.TotalAmount); err != nil {
			return err
		}
		if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
			return err
		}

		paymentNumber, err := repos.PaymentRepo().GeneratePaymentNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		payment, err := finance.NewPayment(tenantID, paymentNumber, entry, sale.TotalAmount, finance.PaymentMethodCash, sale.InvoiceNumber)
		if err != nil {
			return err
		}
		return repos.PaymentRepo().Save(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales with filtering and pagination
func (s *SaleService) List(ctx context.Context, tenantID uuid.UUID, filter SaleListFilter) (*shared.Paginated[SaleResponse], error) {
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
	domainFilter.Search = filter.Search
	if filter.CustomerID != "" {
		domainFilter.Filters["customer_id"] = filter.CustomerID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.DateFrom != "" {
		domainFilter.Filters["date_from"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		domainFilter.Filters["date_to"] = filter.DateTo
	}

	saleList, err := s.saleRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.saleRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToSaleResponses(saleList), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Deliver marks a confirmed sale as delivered
func (s *SaleService) Deliver(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.Deliver(); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Cancel voids a confirmed sale. In one transaction it returns the sold
// fabric to stock with REVERSAL movements and, for credit sales, voids the
// receivable and lowers the customer balance. Cash invoices keep their
// settled entry; refunds are recorded as manual ledger entries.
func (s *SaleService) Cancel(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	var sale *sales.Sale

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		sale, err = repos.SaleRepo().FindByIDForTenant(ctx, tenantID, saleID)
		if err != nil {
			return err
		}

		if err := sale.Cancel(); err != nil {
			return err
		}
		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}

		movements, err := repos.MovementRepo().FindBySource(ctx, tenantID, inventory.SourceTypeSale, sale.ID)
		if err != nil {
			return err
		}
		for i := range movements {
			issue := &movements[i]
			if issue.MovementType != inventory.MovementTypeSaleOut {
				continue
			}

			item, err := repos.InventoryItemRepo().FindByIDForTenant(ctx, tenantID, issue.InventoryItemID)
			if err != nil {
				return err
			}

			balanceBefore := item.Quantity
			if err := item.IncreaseStock(issue.Quantity, issue.UnitCost); err != nil {
				return err
			}
			if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
				return err
			}

			reversal, err := inventory.NewInventoryMovement(
				item, inventory.MovementTypeReversal,
				issue.Quantity, issue.UnitCost, balanceBefore,
				inventory.SourceTypeSale, sale.ID,
			)
			if err != nil {
				return err
			}
			if err := repos.MovementRepo().Save(ctx, reversal.WithNote("cancelled "+sale.InvoiceNumber)); err != nil {
				return err
			}
		}

		if !sale.IsCredit() {
			return nil
		}

		entry, err := repos.LedgerRepo().FindBySource(ctx, tenantID, finance.LedgerSourceSale, sale.ID)
		if err != nil {
			return err
		}
		if err := entry.Cancel(); err != nil {
			return err
		}
		if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
			return err
		}

		customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, sale.CustomerID)
		if err != nil {
			return err
		}
		if err := customer.DeductBalance(sale.TotalAmount); err != nil {
			return err
		}
		return repos.CustomerRepo().Save(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}
