package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/sales"
)

type saleServiceFixture struct {
	saleRepo     *MockSaleRepository
	customerRepo *MockCustomerRepository
	itemRepo     *MockInventoryItemRepository
	movementRepo *MockMovementRepository
	ledgerRepo   *MockLedgerEntryRepository
	paymentRepo  *MockPaymentRepository
	service      *SaleService
}

func newSaleServiceFixture() *saleServiceFixture {
	f := &saleServiceFixture{
		saleRepo:     new(MockSaleRepository),
		customerRepo: new(MockCustomerRepository),
		itemRepo:     new(MockInventoryItemRepository),
		movementRepo: new(MockMovementRepository),
		ledgerRepo:   new(MockLedgerEntryRepository),
		paymentRepo:  new(MockPaymentRepository),
	}
	scope := &appshared.NoOpTransactionScope{
		Customers:      f.customerRepo,
		InventoryItems: f.itemRepo,
		Movements:      f.movementRepo,
		Ledgers:        f.ledgerRepo,
		Payments:       f.paymentRepo,
		Sales:          f.saleRepo,
	}
	f.service = NewSaleService(f.saleRepo, scope)
	return f
}

func createTestCustomer(t *testing.T, tenantID uuid.UUID) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(tenantID, "CUST001", "Metro Textiles")
	require.NoError(t, err)
	return customer
}

func createFabricItem(t *testing.T, tenantID uuid.UUID, article, color string, meters, cost int64) *inventory.InventoryItem {
	t.Helper()
	item, err := inventory.NewInventoryItem(tenantID, inventory.ItemTypeFabric, article, color)
	require.NoError(t, err)
	require.NoError(t, item.IncreaseStock(decimal.NewFromInt(meters), decimal.NewFromInt(cost)))
	return item
}

func TestSaleService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("credit sale moves stock and opens a receivable", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		item := createFabricItem(t, tenantID, "poplin 40x40", "navy", 500, 75)

		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.customerRepo.On("Save", mock.Anything, customer).Return(nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeFabric, "poplin 40x40", "navy").Return(item, nil)
		f.itemRepo.On("Save", mock.Anything, item).Return(nil)
		f.saleRepo.On("GenerateInvoiceNumber", mock.Anything, tenantID).Return("SI-20260830-00001", nil)
		f.saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)
		f.movementRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryMovement")).Return(nil)
		f.ledgerRepo.On("GenerateEntryNumber", mock.Anything, tenantID).Return("LG-20260830-00001", nil)
		f.ledgerRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.LedgerEntry")).Return(nil)

		resp, err := f.service.Create(context.Background(), tenantID, CreateSaleRequest{
			CustomerID: customer.ID,
			Lines: []SaleLineRequest{
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(120)},
			},
			PaymentMode: "CREDIT",
		})
		require.NoError(t, err)

		assert.Equal(t, "SI-20260830-00001", resp.InvoiceNumber)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(12000)))
		assert.Equal(t, "CONFIRMED", resp.Status)

		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(400)))

		movement := f.movementRepo.Calls[0].Arguments.Get(1).(*inventory.InventoryMovement)
		assert.Equal(t, inventory.MovementTypeSaleOut, movement.MovementType)
		assert.True(t, movement.UnitCost.Equal(decimal.NewFromInt(75)))
		assert.Equal(t, "SI-20260830-00001", movement.Note)

		entry := f.ledgerRepo.Calls[1].Arguments.Get(1).(*finance.LedgerEntry)
		assert.Equal(t, finance.LedgerDirectionReceivable, entry.Direction)
		assert.Equal(t, finance.PartyTypeCustomer, entry.PartyType)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(12000)))
		assert.Equal(t, finance.LedgerStatusPending, entry.Status)

		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(12000)))
		f.paymentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("cash sale settles the entry with a payment", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		item := createFabricItem(t, tenantID, "poplin 40x40", "navy", 500, 75)

		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeFabric, "poplin 40x40", "navy").Return(item, nil)
		f.itemRepo.On("Save", mock.Anything, item).Return(nil)
		f.saleRepo.On("GenerateInvoiceNumber", mock.Anything, tenantID).Return("SI-20260830-00002", nil)
		f.saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)
		f.movementRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryMovement")).Return(nil)
		f.ledgerRepo.On("GenerateEntryNumber", mock.Anything, tenantID).Return("LG-20260830-00002", nil)
		f.ledgerRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.LedgerEntry")).Return(nil)
		f.paymentRepo.On("GeneratePaymentNumber", mock.Anything, tenantID).Return("PV-20260830-00001", nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Payment")).Return(nil)

		_, err := f.service.Create(context.Background(), tenantID, CreateSaleRequest{
			CustomerID: customer.ID,
			Lines: []SaleLineRequest{
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromInt(110)},
			},
			PaymentMode: "CASH",
		})
		require.NoError(t, err)

		entry := f.ledgerRepo.Calls[1].Arguments.Get(1).(*finance.LedgerEntry)
		assert.Equal(t, finance.LedgerStatusPaid, entry.Status)
		assert.True(t, entry.RemainingAmount.IsZero())

		payment := f.paymentRepo.Calls[1].Arguments.Get(1).(*finance.Payment)
		assert.True(t, payment.Amount.Equal(decimal.NewFromInt(5500)))
		assert.Equal(t, finance.PaymentMethodCash, payment.Method)
		assert.Equal(t, entry.ID, payment.LedgerEntryID)

		// Cash settles on the spot, the customer balance is untouched
		assert.True(t, customer.Balance.IsZero())
		f.customerRepo.AssertNotCalled(t, "Save")
	})

	t.Run("insufficient fabric stock fails without writes", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		item := createFabricItem(t, tenantID, "poplin 40x40", "navy", 30, 75)

		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeFabric, "poplin 40x40", "navy").Return(item, nil)

		_, err := f.service.Create(context.Background(), tenantID, CreateSaleRequest{
			CustomerID: customer.ID,
			Lines: []SaleLineRequest{
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(120)},
			},
			PaymentMode: "CREDIT",
		})
		assertDomainErrorCode(t, err, "INSUFFICIENT_STOCK")
		f.saleRepo.AssertNotCalled(t, "Save")
		f.itemRepo.AssertNotCalled(t, "Save")
		f.movementRepo.AssertNotCalled(t, "Save")
	})

	t.Run("lines for the same fabric draw from one stock balance", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		item := createFabricItem(t, tenantID, "poplin 40x40", "navy", 150, 75)

		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeFabric, "poplin 40x40", "navy").Return(item, nil)

		_, err := f.service.Create(context.Background(), tenantID, CreateSaleRequest{
			CustomerID: customer.ID,
			Lines: []SaleLineRequest{
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(120)},
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(115)},
			},
			PaymentMode: "CREDIT",
		})
		assertDomainErrorCode(t, err, "INSUFFICIENT_STOCK")
	})

	t.Run("credit limit breach fails before any stock moves", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(5000)))
		item := createFabricItem(t, tenantID, "poplin 40x40", "navy", 500, 75)

		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.itemRepo.On("FindByKey", mock.Anything, tenantID, inventory.ItemTypeFabric, "poplin 40x40", "navy").Return(item, nil)
		f.saleRepo.On("GenerateInvoiceNumber", mock.Anything, tenantID).Return("SI-20260830-00003", nil)

		_, err := f.service.Create(context.Background(), tenantID, CreateSaleRequest{
			CustomerID: customer.ID,
			Lines: []SaleLineRequest{
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(120)},
			},
			PaymentMode: "CREDIT",
		})
		assertDomainErrorCode(t, err, "CREDIT_LIMIT_EXCEEDED")
		f.saleRepo.AssertNotCalled(t, "Save")
		f.itemRepo.AssertNotCalled(t, "Save")
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(500)))
	})

	t.Run("inactive customer is rejected", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		require.NoError(t, customer.Deactivate())

		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)

		_, err := f.service.Create(context.Background(), tenantID, CreateSaleRequest{
			CustomerID: customer.ID,
			Lines: []SaleLineRequest{
				{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(120)},
			},
			PaymentMode: "CREDIT",
		})
		assertDomainErrorCode(t, err, "INVALID_STATUS")
	})
}

func TestSaleService_Deliver(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()

	t.Run("marks a confirmed sale delivered", func(t *testing.T) {
		f := newSaleServiceFixture()
		sale, err := sales.NewSale(tenantID, "SI-20260830-00004", customerID, []sales.LineInput{
			{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(120)},
		}, decimal.Zero, sales.PaymentModeCredit)
		require.NoError(t, err)

		f.saleRepo.On("FindByIDForTenant", mock.Anything, tenantID, sale.ID).Return(sale, nil)
		f.saleRepo.On("Save", mock.Anything, sale).Return(nil)

		resp, err := f.service.Deliver(context.Background(), tenantID, sale.ID)
		require.NoError(t, err)

		assert.Equal(t, "DELIVERED", resp.Status)
		assert.NotNil(t, resp.DeliveredDate)
	})

	t.Run("delivered sale cannot be delivered again", func(t *testing.T) {
		f := newSaleServiceFixture()
		sale, err := sales.NewSale(tenantID, "SI-20260830-00005", customerID, []sales.LineInput{
			{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(120)},
		}, decimal.Zero, sales.PaymentModeCredit)
		require.NoError(t, err)
		require.NoError(t, sale.Deliver())

		f.saleRepo.On("FindByIDForTenant", mock.Anything, tenantID, sale.ID).Return(sale, nil)

		_, err = f.service.Deliver(context.Background(), tenantID, sale.ID)
		assertDomainErrorCode(t, err, "INVALID_STATUS")
	})
}

func TestSaleService_Cancel(t *testing.T) {
	tenantID := uuid.New()

	t.Run("credit cancel returns stock and voids the receivable", func(t *testing.T) {
		f := newSaleServiceFixture()
		customer := createTestCustomer(t, tenantID)
		item := createFabricItem(t, tenantID, "poplin 40x40", "navy", 400, 75)

		sale, err := sales.NewSale(tenantID, "SI-20260830-00006", customer.ID, []sales.LineInput{
			{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(120)},
		}, decimal.Zero, sales.PaymentModeCredit)
		require.NoError(t, err)
		require.NoError(t, customer.AddBalance(sale.TotalAmount))

		entry, err := finance.NewLedgerEntry(tenantID, "LG-20260830-00003",
			finance.LedgerDirectionReceivable, finance.PartyTypeCustomer, customer.ID,
			finance.LedgerSourceSale, sale.ID, sale.TotalAmount, 0)
		require.NoError(t, err)

		issue := inventory.InventoryMovement{
			TenantID:        tenantID,
			InventoryItemID: item.ID,
			MovementType:    inventory.MovementTypeSaleOut,
			Quantity:        decimal.NewFromInt(100),
			UnitCost:        decimal.NewFromInt(75),
			SourceType:      inventory.SourceTypeSale,
			SourceID:        sale.ID,
		}

		f.saleRepo.On("FindByIDForTenant", mock.Anything, tenantID, sale.ID).Return(sale, nil)
		f.saleRepo.On("Save", mock.Anything, sale).Return(nil)
		f.movementRepo.On("FindBySource", mock.Anything, tenantID, inventory.SourceTypeSale, sale.ID).Return([]inventory.InventoryMovement{issue}, nil)
		f.movementRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryMovement")).Return(nil)
		f.itemRepo.On("FindByIDForTenant", mock.Anything, tenantID, item.ID).Return(item, nil)
		f.itemRepo.On("Save", mock.Anything, item).Return(nil)
		f.ledgerRepo.On("FindBySource", mock.Anything, tenantID, finance.LedgerSourceSale, sale.ID).Return(entry, nil)
		f.ledgerRepo.On("Save", mock.Anything, entry).Return(nil)
		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.customerRepo.On("Save", mock.Anything, customer).Return(nil)

		resp, err := f.service.Cancel(context.Background(), tenantID, sale.ID)
		require.NoError(t, err)

		assert.Equal(t, "CANCELLED", resp.Status)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, finance.LedgerStatusCancelled, entry.Status)
		assert.True(t, customer.Balance.IsZero())

		reversal := f.movementRepo.Calls[1].Arguments.Get(1).(*inventory.InventoryMovement)
		assert.Equal(t, inventory.MovementTypeReversal, reversal.MovementType)
		assert.Equal(t, "cancelled SI-20260830-00006", reversal.Note)
	})

	t.Run("delivered sale cannot be cancelled", func(t *testing.T) {
		f := newSaleServiceFixture()
		sale, err := sales.NewSale(tenantID, "SI-20260830-00007", uuid.New(), []sales.LineInput{
			{Article: "poplin 40x40", Color: "navy", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(120)},
		}, decimal.Zero, sales.PaymentModeCredit)
		require.NoError(t, err)
		require.NoError(t, sale.Deliver())

		f.saleRepo.On("FindByIDForTenant", mock.Anything, tenantID, sale.ID).Return(sale, nil)

		_, err = f.service.Cancel(context.Background(), tenantID, sale.ID)
		assertDomainErrorCode(t, err, "INVALID_STATUS")
		f.movementRepo.AssertNotCalled(t, "FindBySource")
	})
}
