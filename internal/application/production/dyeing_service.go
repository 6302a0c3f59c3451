package production

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/shared"
)

// DyeingService handles the dyeing workflow
type DyeingService struct {
	dyeingRepo production.DyeingProcessRepository
	vendorRepo partner.VendorRepository
	txScope    appshared.TransactionScope
}

// NewDyeingService creates a new DyeingService
func NewDyeingService(
	dyeingRepo production.DyeingProcessRepository,
	vendorRepo partner.VendorRepository,
	txScope appshared.TransactionScope,
) *DyeingService {
	return &DyeingService{
		dyeingRepo: dyeingRepo,
		vendorRepo: vendorRepo,
		txScope:    txScope,
	}
}

// Create issues raw thread to a dyeing factory. In one transaction it
// consumes raw thread stock, appends a movement, and opens the lot.
// Nothing is written when stock cannot cover the input quantity.
func (s *DyeingService) Create(ctx context.Context, tenantID uuid.UUID, req CreateDyeingProcessRequest) (*DyeingProcessResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Vendor is not active")
	}
	if vendor.Type != partner.VendorTypeDyeingFactory {
		return nil, shared.NewDomainError("INVALID_TYPE", "Vendor is not a dyeing factory")
	}

	var process *production.DyeingProcess

	err = s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeRawThread, req.ThreadArticle, inventory.ColorRaw)
		if err != nil {
			return err
		}
		if item == nil || !item.HasStock(req.InputQuantity) {
			return shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough raw thread in stock")
		}

		lotNumber, err := repos.DyeingRepo().GenerateLotNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		process, err = production.NewDyeingProcess(
			tenantID, lotNumber, vendor.ID,
			req.ThreadArticle, req.Color, req.InputQuantity, req.DyeingRate,
		)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			process.SetNotes(req.Notes)
		}

		issueCost := item.UnitCost
		balanceBefore := item.Quantity
		if err := item.DecreaseStock(req.InputQuantity); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeDyeingOut,
			req.InputQuantity, issueCost, balanceBefore,
			inventory.SourceTypeDyeingProcess, process.ID,
		)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Save(ctx, movement.WithNote(process.LotNumber)); err != nil {
			return err
		}

		return repos.DyeingRepo().Save(ctx, process)
	})
	if err != nil {
		return nil, err
	}

	response := ToDyeingProcessResponse(process)
	return &response, nil
}

// GetByID retrieves a dyeing process by ID
func (s *DyeingService) GetByID(ctx context.Context, tenantID, processID uuid.UUID) (*DyeingProcessResponse, error) {
	process, err := s.dyeingRepo.FindByIDForTenant(ctx, tenantID, processID)
	if err != nil {
		return nil, err
	}

	response := ToDyeingProcessResponse(process)
	return &response, nil
}

// List retrieves dyeing processes with filtering and pagination
func (s *DyeingService) List(ctx context.Context, tenantID uuid.UUID, filter DyeingListFilter) (*shared.Paginated[DyeingProcessResponse], error) {
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
	if filter.Color != "" {
		domainFilter.Filters["color"] = filter.Color
	}

	processes, err := s.dyeingRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.dyeingRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToDyeingProcessResponses(processes), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update edits the color or rate of a running lot
func (s *DyeingService) Update(ctx context.Context, tenantID, processID uuid.UUID, req UpdateDyeingProcessRequest) (*DyeingProcessResponse, error) {
	process, err := s.dyeingRepo.FindByIDForTenant(ctx, tenantID, processID)
	if err != nil {
		return nil, err
	}

	if req.Color != nil || req.DyeingRate != nil {
		color := process.Color
		rate := process.DyeingRate
		if req.Color != nil {
			color = *req.Color
		}
		if req.DyeingRate != nil {
			rate = *req.DyeingRate
		}
		if err := process.UpdateDetails(color, rate); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		process.SetNotes(*req.Notes)
	}

	if err := s.dyeingRepo.Save(ctx, process); err != nil {
		return nil, err
	}

	response := ToDyeingProcessResponse(process)
	return &response, nil
}

// Complete records the dyed thread returned by the factory. In one
// transaction it adds dyed thread stock priced with the consumed raw
// value plus the dyeing charges, appends a movement, opens a payable
// for the dyeing cost, and raises the vendor balance.
func (s *DyeingService) Complete(ctx context.Context, tenantID, processID uuid.UUID, req CompleteDyeingProcessRequest) (*DyeingProcessResponse, error) {
	var process *production.DyeingProcess

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		process, err = repos.DyeingRepo().FindByIDForTenant(ctx, tenantID, processID)
		if err != nil {
			return err
		}

		consumedValue, err := consumedValueForSource(ctx, repos, tenantID, inventory.SourceTypeDyeingProcess, process.ID, inventory.MovementTypeDyeingOut)
		if err != nil {
			return err
		}

		if err := process.Complete(req.OutputQuantity); err != nil {
			return err
		}
		if err := repos.DyeingRepo().Save(ctx, process); err != nil {
			return err
		}

		// Dyed thread carries the raw thread value plus the dyeing charges
		unitCost := consumedValue.Add(process.DyeingCost).Div(process.OutputQuantity).Round(4)

		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeDyedThread, process.ThreadArticle, process.Color)
		if err != nil {
			return err
		}
		if item == nil {
			item, err = inventory.NewInventoryItem(tenantID, inventory.ItemTypeDyedThread, process.ThreadArticle, process.Color)
			if err != nil {
				return err
			}
		}

		balanceBefore := item.Quantity
		if err := item.IncreaseStock(process.OutputQuantity, unitCost); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeDyeingIn,
			process.OutputQuantity, unitCost, balanceBefore,
			inventory.SourceTypeDyeingProcess, process.ID,
		)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Save(ctx, movement.WithNote(process.LotNumber)); err != nil {
			return err
		}

		// The dyeing charges become a payable against the factory
		vendor, err := repos.VendorRepo().FindByIDForTenant(ctx, tenantID, process.VendorID)
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
			finance.LedgerSourceDyeingProcess, process.ID,
			process.DyeingCost, vendor.PaymentTerms,
		)
		if err != nil {
			return err
		}
		if err := repos.LedgerRepo().Save(ctx, entry); err != nil {
			return err
		}

		if err := vendor.AddBalance(process.DyeingCost); err != nil {
			return err
		}
		return repos.VendorRepo().Save(ctx, vendor)
	})
	if err != nil {
		return nil, err
	}

	response := ToDyeingProcessResponse(process)
	return &response, nil
}

// Cancel aborts a running lot and returns the consumed raw thread
// to stock in the same transaction.
func (s *DyeingService) Cancel(ctx context.Context, tenantID, processID uuid.UUID) (*DyeingProcessResponse, error) {
	var process *production.DyeingProcess

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		process, err = repos.DyeingRepo().FindByIDForTenant(ctx, tenantID, processID)
		if err != nil {
			return err
		}

		issue, err := findMovement(ctx, repos, tenantID, inventory.SourceTypeDyeingProcess, process.ID, inventory.MovementTypeDyeingOut)
		if err != nil {
			return err
		}

		if err := process.Cancel(); err != nil {
			return err
		}
		if err := repos.DyeingRepo().Save(ctx, process); err != nil {
			return err
		}

		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeRawThread, process.ThreadArticle, inventory.ColorRaw)
		if err != nil {
			return err
		}
		if item == nil {
			item, err = inventory.NewInventoryItem(tenantID, inventory.ItemTypeRawThread, process.ThreadArticle, inventory.ColorRaw)
			if err != nil {
				return err
			}
		}

		balanceBefore := item.Quantity
		if err := item.IncreaseStock(process.InputQuantity, issue.UnitCost); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		reversal, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeReversal,
			process.InputQuantity, issue.UnitCost, balanceBefore,
			inventory.SourceTypeDyeingProcess, process.ID,
		)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Save(ctx, reversal.WithNote("cancelled "+process.LotNumber))
	})
	if err != nil {
		return nil, err
	}

	response := ToDyeingProcessResponse(process)
	return &response, nil
}

// findMovement locates the movement a source document wrote for a given type
func findMovement(ctx context.Context, repos appshared.TransactionalRepositories, tenantID uuid.UUID, sourceType inventory.SourceType, sourceID uuid.UUID, movementType inventory.MovementType) (*inventory.InventoryMovement, error) {
	movements, err := repos.MovementRepo().FindBySource(ctx, tenantID, sourceType, sourceID)
	if err != nil {
		return nil, err
	}
	for i := range movements {
		if movements[i].MovementType == movementType {
			return &movements[i], nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Issue movement not found for source document")
}

// consumedValueForSource totals the value a source document took out of stock
func consumedValueForSource(ctx context.Context, repos appshared.TransactionalRepositories, tenantID uuid.UUID, sourceType inventory.SourceType, sourceID uuid.UUID, movementType inventory.MovementType) (decimal.Decimal, error) {
	movement, err := findMovement(ctx, repos, tenantID, sourceType, sourceID, movementType)
	if err != nil {
		return decimal.Zero, err
	}
	return movement.TotalCost(), nil
}
