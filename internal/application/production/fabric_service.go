package production

import (
	"context"

	"github.com/google/uuid"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/shared"
)

// FabricService handles the weaving workflow
type FabricService struct {
	fabricRepo production.FabricProductionRepository
	txScope    appshared.TransactionScope
}

// NewFabricService creates a new FabricService
func NewFabricService(
	fabricRepo production.FabricProductionRepository,
	txScope appshared.TransactionScope,
) *FabricService {
	return &FabricService{
		fabricRepo: fabricRepo,
		txScope:    txScope,
	}
}

// Create starts a weaving batch. In one transaction it consumes dyed
// thread stock, appends a movement, and opens the batch. Nothing is
// written when stock cannot cover the thread quantity.
func (s *FabricService) Create(ctx context.Context, tenantID uuid.UUID, req CreateFabricProductionRequest) (*FabricProductionResponse, error) {
	var batch *production.FabricProduction

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeDyedThread, req.ThreadArticle, req.Color)
		if err != nil {
			return err
		}
		if item == nil || !item.HasStock(req.ThreadQuantity) {
			return shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough dyed thread in stock")
		}

		batchNumber, err := repos.FabricRepo().GenerateBatchNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		batch, err = production.NewFabricProduction(
			tenantID, batchNumber,
			req.FabricArticle, req.Color, req.ThreadArticle,
			req.ThreadQuantity, req.ConversionCost,
		)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			batch.SetNotes(req.Notes)
		}

		issueCost := item.UnitCost
		balanceBefore := item.Quantity
		if err := item.DecreaseStock(req.ThreadQuantity); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeProductionOut,
			req.ThreadQuantity, issueCost, balanceBefore,
			inventory.SourceTypeFabricProduction, batch.ID,
		)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Save(ctx, movement.WithNote(batch.BatchNumber)); err != nil {
			return err
		}

		return repos.FabricRepo().Save(ctx, batch)
	})
	if err != nil {
		return nil, err
	}

	response := ToFabricProductionResponse(batch)
	return &response, nil
}

// GetByID retrieves a fabric batch by ID
func (s *FabricService) GetByID(ctx context.Context, tenantID, batchID uuid.UUID) (*FabricProductionResponse, error) {
	batch, err := s.fabricRepo.FindByIDForTenant(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}

	response := ToFabricProductionResponse(batch)
	return &response, nil
}

// List retrieves fabric batches with filtering and pagination
func (s *FabricService) List(ctx context.Context, tenantID uuid.UUID, filter FabricListFilter) (*shared.Paginated[FabricProductionResponse], error) {
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
	if filter.Color != "" {
		domainFilter.Filters["color"] = filter.Color
	}

	batches, err := s.fabricRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.fabricRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToFabricProductionResponses(batches), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update edits the conversion cost of a running batch
func (s *FabricService) Update(ctx context.Context, tenantID, batchID uuid.UUID, req UpdateFabricProductionRequest) (*FabricProductionResponse, error) {
	batch, err := s.fabricRepo.FindByIDForTenant(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}

	if req.ConversionCost != nil {
		if err := batch.UpdateDetails(*req.ConversionCost); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		batch.SetNotes(*req.Notes)
	}

	if err := s.fabricRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	response := ToFabricProductionResponse(batch)
	return &response, nil
}

// Complete records the output of a weaving batch. In one transaction
// it adds fabric stock priced with the consumed thread value plus the
// conversion cost and appends a movement.
func (s *FabricService) Complete(ctx context.Context, tenantID, batchID uuid.UUID, req CompleteFabricProductionRequest) (*FabricProductionResponse, error) {
	var batch *production.FabricProduction

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		batch, err = repos.FabricRepo().FindByIDForTenant(ctx, tenantID, batchID)
		if err != nil {
			return err
		}

		threadValue, err := consumedValueForSource(ctx, repos, tenantID, inventory.SourceTypeFabricProduction, batch.ID, inventory.MovementTypeProductionOut)
		if err != nil {
			return err
		}

		if err := batch.Complete(req.FabricProduced, req.Wastage, threadValue); err != nil {
			return err
		}
		if err := repos.FabricRepo().Save(ctx, batch); err != nil {
			return err
		}

		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeFabric, batch.FabricArticle, batch.Color)
		if err != nil {
			return err
		}
		if item == nil {
			item, err = inventory.NewInventoryItem(tenantID, inventory.ItemTypeFabric, batch.FabricArticle, batch.Color)
			if err != nil {
				return err
			}
		}

		balanceBefore := item.Quantity
		if err := item.IncreaseStock(batch.FabricProduced, batch.CostPerMeter); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeProductionIn,
			batch.FabricProduced, batch.CostPerMeter, balanceBefore,
			inventory.SourceTypeFabricProduction, batch.ID,
		)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Save(ctx, movement.WithNote(batch.BatchNumber))
	})
	if err != nil {
		return nil, err
	}

	response := ToFabricProductionResponse(batch)
	return &response, nil
}

// Cancel aborts a running batch and returns the consumed dyed thread
// to stock in the same transaction.
func (s *FabricService) Cancel(ctx context.Context, tenantID, batchID uuid.UUID) (*FabricProductionResponse, error) {
	var batch *production.FabricProduction

	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		batch, err = repos.FabricRepo().FindByIDForTenant(ctx, tenantID, batchID)
		if err != nil {
			return err
		}

		issue, err := findMovement(ctx, repos, tenantID, inventory.SourceTypeFabricProduction, batch.ID, inventory.MovementTypeProductionOut)
		if err != nil {
			return err
		}

		if err := batch.Cancel(); err != nil {
			return err
		}
		if err := repos.FabricRepo().Save(ctx, batch); err != nil {
			return err
		}

		item, err := repos.InventoryItemRepo().FindByKey(ctx, tenantID, inventory.ItemTypeDyedThread, batch.ThreadArticle, batch.Color)
		if err != nil {
			return err
		}
		if item == nil {
			item, err = inventory.NewInventoryItem(tenantID, inventory.ItemTypeDyedThread, batch.ThreadArticle, batch.Color)
			if err != nil {
				return err
			}
		}

		balanceBefore := item.Quantity
		if err := item.IncreaseStock(batch.ThreadQuantity, issue.UnitCost); err != nil {
			return err
		}
		if err := repos.InventoryItemRepo().Save(ctx, item); err != nil {
			return err
		}

		reversal, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeReversal,
			batch.ThreadQuantity, issue.UnitCost, balanceBefore,
			inventory.SourceTypeFabricProduction, batch.ID,
		)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Save(ctx, reversal.WithNote("cancelled "+batch.BatchNumber))
	})
	if err != nil {
		return nil, err
	}

	response := ToFabricProductionResponse(batch)
	return &response, nil
}
