package inventory

import (
	"context"

	"github.com/google/uuid"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/shared"
)

// InventoryService handles stock queries and manual corrections.
// Stock otherwise changes only through the purchasing, production,
// and sales flows.
type InventoryService struct {
	itemRepo     inventory.InventoryItemRepository
	movementRepo inventory.InventoryMovementRepository
	txScope      appshared.TransactionScope
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.InventoryMovementRepository,
	txScope appshared.TransactionScope,
) *InventoryService {
	return &InventoryService{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		txScope:      txScope,
	}
}

// GetByID retrieves an inventory item by ID
func (s *InventoryService) GetByID(ctx context.Context, tenantID, itemID uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByIDForTenant(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// List retrieves inventory items with filtering and pagination
func (s *InventoryService) List(ctx context.Context, tenantID uuid.UUID, filter InventoryListFilter) (*shared.Paginated[InventoryItemResponse], error) {
	if filter.BelowReorder {
		items, err := s.itemRepo.FindBelowReorderLevel(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		result := shared.NewPaginated(ToInventoryItemResponses(items), int64(len(items)), 1, len(items)+1)
		return &result, nil
	}

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
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.Article != "" {
		domainFilter.Filters["article"] = filter.Article
	}
	if filter.Color != "" {
		domainFilter.Filters["color"] = filter.Color
	}

	items, err := s.itemRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.itemRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToInventoryItemResponses(items), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Movements retrieves the journal for an item, newest first
func (s *InventoryService) Movements(ctx context.Context, tenantID, itemID uuid.UUID, filter MovementListFilter) (*shared.Paginated[MovementResponse], error) {
	if _, err := s.itemRepo.FindByIDForTenant(ctx, tenantID, itemID); err != nil {
		return nil, err
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "movement_date"
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	movements, err := s.movementRepo.FindByItem(ctx, tenantID, itemID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.movementRepo.CountByItem(ctx, tenantID, itemID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToMovementResponses(movements), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Adjust applies a signed manual correction to an item and appends an
// adjustment movement in the same transaction.
func (s *InventoryService) Adjust(ctx context.Context, tenantID, itemID uuid.UUID, req AdjustStockRequest) (*InventoryItemResponse, error) {
	if req.Quantity.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjustment quantity cannot be zero")
	}

	var item *inventory.InventoryItem

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		item, err = repos.InventoryItemRepo().FindByIDForTenant(ctx, tenantID, itemID)
		if err != nil {
			return err
		}

		balanceBefore := item.Quantity
		if req.Quantity.IsPositive() {
			if err := item.IncreaseStock(req.Quantity, item.UnitCost); err != nil {
				return err
			}
		} else {
			if err := item.DecreaseStock(req.Quantity.Neg()); err != nil {
				return err
			}
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeAdjustment,
			req.Quantity.Abs(), item.UnitCost, balanceBefore,
			inventory.SourceTypeManual, item.ID,
		)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Save(ctx, movement.WithNote(req.Reason))
	})
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// Update changes the reorder level of an item
func (s *InventoryService) Update(ctx context.Context, tenantID, itemID uuid.UUID, req UpdateInventoryItemRequest) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByIDForTenant(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}

	if req.ReorderLevel != nil {
		if err := item.SetReorderLevel(*req.ReorderLevel); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}
