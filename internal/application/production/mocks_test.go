package production

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/shared"
)

// MockDyeingRepository is a mock implementation of DyeingProcessRepository
type MockDyeingRepository struct {
	mock.Mock
}

func (m *MockDyeingRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.DyeingProcess, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.DyeingProcess), args.Error(1)
}

func (m *MockDyeingRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*production.DyeingProcess, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.DyeingProcess), args.Error(1)
}

func (m *MockDyeingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]production.DyeingProcess, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]production.DyeingProcess), args.Error(1)
}

func (m *MockDyeingRepository) Save(ctx context.Context, process *production.DyeingProcess) error {
	args := m.Called(ctx, process)
	return args.Error(0)
}

func (m *MockDyeingRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDyeingRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status production.Status) (int64, error) {
	args := m.Called(ctx, tenantID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDyeingRepository) GenerateLotNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

// MockFabricRepository is a mock implementation of FabricProductionRepository
type MockFabricRepository struct {
	mock.Mock
}

func (m *MockFabricRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.FabricProduction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.FabricProduction), args.Error(1)
}

func (m *MockFabricRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*production.FabricProduction, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.FabricProduction), args.Error(1)
}

func (m *MockFabricRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]production.FabricProduction, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]production.FabricProduction), args.Error(1)
}

func (m *MockFabricRepository) Save(ctx context.Context, batch *production.FabricProduction) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockFabricRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFabricRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status production.Status) (int64, error) {
	args := m.Called(ctx, tenantID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFabricRepository) GenerateBatchNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

// MockVendorRepository is a mock implementation of VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Vendor, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockVendorRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

// MockInventoryItemRepository is a mock implementation of InventoryItemRepository
type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindByKey(ctx context.Context, tenantID uuid.UUID, itemType inventory.ItemType, article, color string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, tenantID, itemType, article, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindBelowReorderLevel(ctx context.Context, tenantID uuid.UUID) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMovementRepository is a mock implementation of InventoryMovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Save(ctx context.Context, movement *inventory.InventoryMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	args := m.Called(ctx, tenantID, itemID, filter)
	return args.Get(0).([]inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType inventory.SourceType, sourceID uuid.UUID) ([]inventory.InventoryMovement, error) {
	args := m.Called(ctx, tenantID, sourceType, sourceID)
	return args.Get(0).([]inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) CountByItem(ctx context.Context, tenantID, itemID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, itemID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockLedgerRepository is a mock implementation of LedgerEntryRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.LedgerEntry, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType finance.LedgerSourceType, sourceID uuid.UUID) (*finance.LedgerEntry, error) {
	args := m.Called(ctx, tenantID, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.LedgerEntry, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindDuePastDate(ctx context.Context, tenantID uuid.UUID) ([]finance.LedgerEntry, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, entry *finance.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) SumRemainingByDirection(ctx context.Context, tenantID uuid.UUID, direction finance.LedgerDirection) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, direction)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) GenerateEntryNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}
