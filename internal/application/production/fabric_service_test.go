package production

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/production"
)

type fabricServiceFixture struct {
	fabricRepo   *MockFabricRepository
	itemRepo     *MockInventoryItemRepository
	movementRepo *MockMovementRepository
	service      *FabricService
}

func newFabricServiceFixture() *fabricServiceFixture {
	f := &fabricServiceFixture{
		fabricRepo:   new(MockFabricRepository),
		itemRepo:     new(MockInventoryItemRepository),
		movementRepo: new(MockMovementRepository),
	}
	scope := &appshared.NoOpTransactionScope{
		Fabrics:        f.fabricRepo,
		InventoryItems: f.itemRepo,
		Movements:      f.movementRepo,
	}
	f.service = NewFabricService(f.fabricRepo, scope)
	return f
}

func createDyedThreadStock(t *testing.T, tenantID uuid.UUID, qty, cost int64) *inventory.InventoryItem {
	t.Helper()
	item, err := inventory.NewInventoryItem(tenantID, inventory.ItemTypeDyedThread, "30s combed", "navy blue")
	require.NoError(t, err)
	require.NoError(t, item.IncreaseStock(decimal.NewFromInt(qty), decimal.NewFromInt(cost)))
	return item
}

func TestFabricService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("consumes dyed thread and opens the batch", func(t *testing.T) {
		f := newFabricServiceFixture()
		item := createDyedThreadStock(t, tenantID, 100, 300)

		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeDyedThread, "30s combed", "navy blue").Return(item, nil)
		f.fabricRepo.On("GenerateBatchNumber", mock.Anything, tenantID).Return("FB-20260830-00001", nil)
		f.itemRepo.On("Save", mock.Anything, item).Return(nil)
		f.movementRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryMovement")).Return(nil)
		f.fabricRepo.On("Save", mock.Anything, mock.AnythingOfType("*production.FabricProduction")).Return(nil)

		resp, err := f.service.Create(context.Background(), tenantID, CreateFabricProductionRequest{
			FabricArticle:  "poplin 120gsm",
			Color:          "navy blue",
			ThreadArticle:  "30s combed",
			ThreadQuantity: decimal.NewFromInt(80),
			ConversionCost: decimal.NewFromInt(6000),
		})
		require.NoError(t, err)

		assert.Equal(t, "FB-20260830-00001", resp.BatchNumber)
		assert.Equal(t, "IN_PROCESS", resp.Status)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(20)))

		savedMovement := f.movementRepo.Calls[0].Arguments.Get(1).(*inventory.InventoryMovement)
		assert.Equal(t, inventory.MovementTypeProductionOut, savedMovement.MovementType)
		assert.True(t, savedMovement.UnitCost.Equal(decimal.NewFromInt(300)))
	})

	t.Run("insufficient dyed thread writes nothing", func(t *testing.T) {
		f := newFabricServiceFixture()
		item := createDyedThreadStock(t, tenantID, 50, 300)

		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeDyedThread, "30s combed", "navy blue").Return(item, nil)

		_, err := f.service.Create(context.Background(), tenantID, CreateFabricProductionRequest{
			FabricArticle:  "poplin 120gsm",
			Color:          "navy blue",
			ThreadArticle:  "30s combed",
			ThreadQuantity: decimal.NewFromInt(80),
		})
		assertDomainErrorCode(t, err, "INSUFFICIENT_STOCK")
		f.fabricRepo.AssertNotCalled(t, "Save")
		f.movementRepo.AssertNotCalled(t, "Save")
	})
}

func TestFabricService_Complete(t *testing.T) {
	tenantID := uuid.New()

	t.Run("rolls thread value and conversion cost into fabric", func(t *testing.T) {
		f := newFabricServiceFixture()

		batch, err := production.NewFabricProduction(
			tenantID, "FB-20260830-00001",
			"poplin 120gsm", "navy blue", "30s combed",
			decimal.NewFromInt(80), decimal.NewFromInt(6000),
		)
		require.NoError(t, err)

		dyedItem := createDyedThreadStock(t, tenantID, 100, 300)
		issue, err := inventory.NewInventoryMovement(
			dyedItem, inventory.MovementTypeProductionOut,
			decimal.NewFromInt(80), decimal.NewFromInt(300), decimal.NewFromInt(100),
			inventory.SourceTypeFabricProduction, batch.ID,
		)
		require.NoError(t, err)

		f.fabricRepo.On("FindByIDForTenant", mock.Anything, tenantID, batch.ID).Return(batch, nil)
		f.movementRepo.On("FindBySource", mock.Anything, tenantID, inventory.SourceTypeFabricProduction, batch.ID).Return([]inventory.InventoryMovement{*issue}, nil)
		f.fabricRepo.On("Save", mock.Anything, batch).Return(nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeFabric, "poplin 120gsm", "navy blue").Return(nil, nil)
		f.itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)
		f.movementRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryMovement")).Return(nil)

		resp, err := f.service.Complete(context.Background(), tenantID, batch.ID, CompleteFabricProductionRequest{
			FabricProduced: decimal.NewFromInt(400),
			Wastage:        decimal.NewFromInt(2),
		})
		require.NoError(t, err)

		assert.Equal(t, "COMPLETED", resp.Status)
		// (80*300 + 6000) / 400 = 75
		assert.True(t, resp.CostPerMeter.Equal(decimal.NewFromInt(75)))

		savedItem := f.itemRepo.Calls[1].Arguments.Get(1).(*inventory.InventoryItem)
		assert.Equal(t, inventory.ItemTypeFabric, savedItem.Type)
		assert.Equal(t, inventory.UnitMeter, savedItem.Unit)
		assert.True(t, savedItem.Quantity.Equal(decimal.NewFromInt(400)))
		assert.True(t, savedItem.UnitCost.Equal(decimal.NewFromInt(75)))
	})
}

func TestFabricService_Cancel(t *testing.T) {
	tenantID := uuid.New()

	t.Run("returns consumed dyed thread to stock", func(t *testing.T) {
		f := newFabricServiceFixture()

		batch, err := production.NewFabricProduction(
			tenantID, "FB-20260830-00002",
			"poplin 120gsm", "navy blue", "30s combed",
			decimal.NewFromInt(80), decimal.NewFromInt(6000),
		)
		require.NoError(t, err)

		item := createDyedThreadStock(t, tenantID, 20, 300)
		issue, err := inventory.NewInventoryMovement(
			item, inventory.MovementTypeProductionOut,
			decimal.NewFromInt(80), decimal.NewFromInt(300), decimal.NewFromInt(100),
			inventory.SourceTypeFabricProduction, batch.ID,
		)
		require.NoError(t, err)

		f.fabricRepo.On("FindByIDForTenant", mock.Anything, tenantID, batch.ID).Return(batch, nil)
		f.movementRepo.On("FindBySource", mock.Anything, tenantID, inventory.SourceTypeFabricProduction, batch.ID).Return([]inventory.InventoryMovement{*issue}, nil)
		f.fabricRepo.On("Save", mock.Anything, batch).Return(nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeDyedThread, "30s combed", "navy blue").Return(item, nil)
		f.itemRepo.On("Save", mock.Anything, item).Return(nil)
		f.movementRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryMovement")).Return(nil)

		resp, err := f.service.Cancel(context.Background(), tenantID, batch.ID)
		require.NoError(t, err)

		assert.Equal(t, "CANCELLED", resp.Status)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(100)))
	})
}
