package procurement

import (
	"context"

	"github.com/google/uuid"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/procurement"
	"github.com/textile/backend/internal/domain/shared"
)

// ThreadPurchaseService handles thread procurement operations
type ThreadPurchaseService struct {
	purchaseRepo procurement.ThreadPurchaseRepository
	vendorRepo   partner.VendorRepository
	txScope      appshared.TransactionScope
}

// NewThreadPurchaseService creates a new ThreadPurchaseService
func NewThreadPurchaseService(
	purchaseRepo procurement.ThreadPurchaseRepository,
	vendorRepo partner.VendorRepository,
	txScope appshared.TransactionScope,
) *ThreadPurchaseService {
	return &ThreadPurchaseService{
		purchaseRepo: purchaseRepo,
		vendorRepo:   vendorRepo,
		txScope:      txScope,
	}
}

// Create records a new thread order against a vendor
func (s *ThreadPurchaseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateThreadPurchaseRequest) (*ThreadPurchaseResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Vendor is not active")
	}

	purchaseNumber, err := s.purchaseRepo.GeneratePurchaseNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	purchase, err := procurement.NewThreadPurchase(
		tenantID, purchaseNumber, vendor.ID,
		req.Article, req.Quantity, req.UnitPrice,
		procurement.PaymentMode(req.PaymentMode),
	)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		purchase.SetNotes(req.Notes)
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToThreadPurchaseResponse(purchase)
	return &response, nil
}

// GetByID retrieves a purchase by ID
func (s *ThreadPurchaseService) GetByID(ctx context.Context, tenantID, purchaseID uuid.UUID) (*ThreadPurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	response := ToThreadPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves purchases with filtering and pagination
func (s *ThreadPurchaseService) List(ctx context.Context, tenantID uuid.UUID, filter ThreadPurchaseListFilter) (*shared.Paginated[ThreadPurchaseResponse], error) {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.VendorID != "" {
		domainFilter.Filters["vendor_id"] = filter.VendorID
	}

	purchases, err := s.purchaseRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.purchaseRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToThreadPurchaseResponses(purchases), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update edits an unreceived purchase
func (s *ThreadPurchaseService) Update(ctx context.Context, tenantID, purchaseID uuid.UUID, req UpdateThreadPurchaseRequest) (*ThreadPurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if req.Article != nil || req.Quantity != nil || req.UnitPrice != nil {
		article := purchase.Article
		quantity := purchase.Quantity
		unitPrice := purchase.UnitPrice
		if req.Article != nil {
			article = *req.Article
		}
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		if err := purchase.UpdateDetails(article, quantity, unitPrice); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		purchase.SetNotes(*req.Notes)
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToThreadPurchaseResponse(purchase)
	return &response, nil
}

// Receive marks a purchase as received. In one transaction it moves the
// ordered quantity into raw thread stock, appends a movement record, and
// opens a payable ledger entry. Credit purchases raise the vendor balance;
// cash purchases settle the entry immediately with a payment record.
func (s *ThreadPurchaseService) Receive(ctx context.Context, tenantID, purchaseID uuid.UUID) (*ThreadPurchaseResponse, error) {
	var purchase *procurement.ThreadPurchase

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		purchase, err = repos.ThreadPurchaseRepo().FindByIDForTenant(ctx, tenantID, purchaseID)
		if err != nil {
			return err
		}

		if err := purchase.Receive(); err != nil {
			return err
		}
		if err := repos.ThreadPurchaseRepo().Save(ctx, purchase); err != nil {
			return err
		}

		// Move the received quantity into raw thread stock
		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeRawThread, purchase.Article, inventory.ColorRaw)
		if err != nil {
			return err
		}
		if item == nil {
			item, err = inventory.NewInventoryItem(tenantID, inventory.ItemTypeRawThread, purchase.Article, inventory.ColorRaw)
			if err != nil {
				return err
			}
		}

		balanceBefore := item.Quantity
		if err := item.IncreaseStock(purchase.Quantity, purchase.UnitPrice); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypePurchaseIn,
			purchase.Quantity, purchase.UnitPrice, balanceBefore,
			inventory.SourceTypeThreadPurchase, purchase.ID,
		)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Save(ctx, movement.WithNote(purchase.PurchaseNumber)); err != nil {
			return err
		}

		// Every receive opens a payable against the vendor
		vendor, err := repos.VendorRepo().FindByIDForTenant(ctx, tenantID, purchase.VendorID)
		if err != nil {
			return err
		}

		entryNumber, err := repos.LedgerRepo().GenerateEntryNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		entry, err := finance.NewLedgerEntry(
			tenantID, entryNumber,
			finance.LedgerDirectionPayable, finance.PartyTypeVendor, vendor.ID,
			finance.LedgerSourceThreadPurchase, purchase.ID,
			purchase.TotalAmount, vendor.PaymentTerms,
		)
		if err != nil {
			return err
		}

		if purchase.IsCredit() {
			if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
				return err
			}
			if err := vendor.AddBalance(purchase.TotalAmount); err != nil {
				return err
			}
			return repos.VendorRepo().Save(ctx, vendor)
		}

		// Cash purchases settle the payable immediately with a payment record
		if err := entry.ApplyPayment(purchase.TotalAmount); err != nil {
			return err
		}
		if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
			return err
		}

		paymentNumber, err := repos.PaymentRepo().GeneratePaymentNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		payment, err := finance.NewPayment(tenantID, paymentNumber, entry, purchase.TotalAmount, finance.PaymentMethodCash, purchase.PurchaseNumber)
		if err != nil {
			return err
		}
		return repos.PaymentRepo().Save(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	response := ToThreadPurchaseResponse(purchase)
	return &response, nil
}

// Cancel cancels an unreceived purchase
func (s *ThreadPurchaseService) Cancel(ctx context.Context, tenantID, purchaseID uuid.UUID) (*ThreadPurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := purchase.Cancel(); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToThreadPurchaseResponse(purchase)
	return &response, nil
}

// Delete deletes a purchase that never affected stock
func (s *ThreadPurchaseService) Delete(ctx context.Context, tenantID, purchaseID uuid.UUID) error {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return err
	}

	if !purchase.CanDelete() {
		return shared.NewDomainError("INVALID_STATUS", "Received purchases cannot be deleted")
	}

	return s.purchaseRepo.DeleteForTenant(ctx, tenantID, purchaseID)
}
