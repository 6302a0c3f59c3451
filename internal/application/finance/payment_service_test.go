package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/partner"
)

type financeFixture struct {
	ledgerRepo   *MockLedgerEntryRepository
	paymentRepo  *MockPaymentRepository
	vendorRepo   *MockVendorRepository
	customerRepo *MockCustomerRepository
	payments     *PaymentService
	ledger       *LedgerService
}

func newFinanceFixture() *financeFixture {
	f := &financeFixture{
		ledgerRepo:   new(MockLedgerEntryRepository),
		paymentRepo:  new(MockPaymentRepository),
		vendorRepo:   new(MockVendorRepository),
		customerRepo: new(MockCustomerRepository),
	}
	scope := &appshared.NoOpTransactionScope{
		Vendors:   f.vendorRepo,
		Customers: f.customerRepo,
		Ledgers:   f.ledgerRepo,
		Payments:  f.paymentRepo,
	}
	f.payments = NewPaymentService(f.paymentRepo, scope)
	f.ledger = NewLedgerService(f.ledgerRepo, f.paymentRepo, scope)
	return f
}

func createPayableEntry(t *testing.T, tenantID, vendorID uuid.UUID, amount int64, termsDays int) *finance.LedgerEntry {
	t.Helper()
	entry, err := finance.NewLedgerEntry(tenantID, "LG-20260830-00001",
		finance.LedgerDirectionPayable, finance.PartyTypeVendor, vendorID,
		finance.LedgerSourceThreadPurchase, uuid.New(), decimal.NewFromInt(amount), termsDays)
	require.NoError(t, err)
	return entry
}

func TestPaymentService_Record(t *testing.T) {
	tenantID := uuid.New()

	t.Run("partial payment lowers the vendor balance", func(t *testing.T) {
		f := newFinanceFixture()
		vendor, err := partner.NewVendor(tenantID, "VEND001", "Anand Spinners", partner.VendorTypeThreadSupplier)
		require.NoError(t, err)
		require.NoError(t, vendor.AddBalance(decimal.NewFromInt(25000)))
		entry := createPayableEntry(t, tenantID, vendor.ID, 25000, 30)

		f.ledgerRepo.On("FindByIDForTenant", mock.Anything, tenantID, entry.ID).Return(entry, nil)
		f.ledgerRepo.On("Save", mock.Anything, entry).Return(nil)
		f.paymentRepo.On("GeneratePaymentNumber", mock.Anything, tenantID).Return("PV-20260830-00001", nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Payment")).Return(nil)
		f.vendorRepo.On("FindByIDForTenant", mock.Anything, tenantID, vendor.ID).Return(vendor, nil)
		f.vendorRepo.On("Save", mock.Anything, vendor).Return(nil)

		resp, err := f.payments.Record(context.Background(), tenantID, RecordPaymentRequest{
			LedgerEntryID: entry.ID,
			Amount:        decimal.NewFromInt(10000),
			Method:        "BANK_TRANSFER",
			Reference:     "UTR123456",
		})
		require.NoError(t, err)

		assert.Equal(t, "PV-20260830-00001", resp.PaymentNumber)
		assert.Equal(t, "VENDOR", resp.PartyType)
		assert.Equal(t, finance.LedgerStatusPartial, entry.Status)
		assert.True(t, entry.RemainingAmount.Equal(decimal.NewFromInt(15000)))
		assert.True(t, vendor.Balance.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("full payment settles the entry", func(t *testing.T) {
		f := newFinanceFixture()
		vendor, err := partner.NewVendor(tenantID, "VEND001", "Anand Spinners", partner.VendorTypeThreadSupplier)
		require.NoError(t, err)
		require.NoError(t, vendor.AddBalance(decimal.NewFromInt(8000)))
		entry := createPayableEntry(t, tenantID, vendor.ID, 8000, 15)

		f.ledgerRepo.On("FindByIDForTenant", mock.Anything, tenantID, entry.ID).Return(entry, nil)
		f.ledgerRepo.On("Save", mock.Anything, entry).Return(nil)
		f.paymentRepo.On("GeneratePaymentNumber", mock.Anything, tenantID).Return("PV-20260830-00002", nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Payment")).Return(nil)
		f.vendorRepo.On("FindByIDForTenant", mock.Anything, tenantID, vendor.ID).Return(vendor, nil)
		f.vendorRepo.On("Save", mock.Anything, vendor).Return(nil)

		_, err = f.payments.Record(context.Background(), tenantID, RecordPaymentRequest{
			LedgerEntryID: entry.ID,
			Amount:        decimal.NewFromInt(8000),
			Method:        "CASH",
		})
		require.NoError(t, err)

		assert.Equal(t, finance.LedgerStatusPaid, entry.Status)
		assert.True(t, entry.RemainingAmount.IsZero())
		assert.True(t, vendor.Balance.IsZero())
	})

	t.Run("receivable payment lowers the customer balance", func(t *testing.T) {
		f := newFinanceFixture()
		customer, err := partner.NewCustomer(tenantID, "CUST001", "Metro Textiles")
		require.NoError(t, err)
		require.NoError(t, customer.AddBalance(decimal.NewFromInt(12000)))

		entry, err := finance.NewLedgerEntry(tenantID, "LG-20260830-00002",
			finance.LedgerDirectionReceivable, finance.PartyTypeCustomer, customer.ID,
			finance.LedgerSourceSale, uuid.New(), decimal.NewFromInt(12000), 0)
		require.NoError(t, err)

		f.ledgerRepo.On("FindByIDForTenant", mock.Anything, tenantID, entry.ID).Return(entry, nil)
		f.ledgerRepo.On("Save", mock.Anything, entry).Return(nil)
		f.paymentRepo.On("GeneratePaymentNumber", mock.Anything, tenantID).Return("PV-20260830-00003", nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Payment")).Return(nil)
		f.customerRepo.On("FindByIDForTenant", mock.Anything, tenantID, customer.ID).Return(customer, nil)
		f.customerRepo.On("Save", mock.Anything, customer).Return(nil)

		_, err = f.payments.Record(context.Background(), tenantID, RecordPaymentRequest{
			LedgerEntryID: entry.ID,
			Amount:        decimal.NewFromInt(5000),
			Method:        "UPI",
			Reference:     "upi-9981",
		})
		require.NoError(t, err)

		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(7000)))
		f.vendorRepo.AssertNotCalled(t, "FindByIDForTenant")
	})

	t.Run("overpayment is rejected without writes", func(t *testing.T) {
		f := newFinanceFixture()
		vendorID := uuid.New()
		entry := createPayableEntry(t, tenantID, vendorID, 5000, 30)

		f.ledgerRepo.On("FindByIDForTenant", mock.Anything, tenantID, entry.ID).Return(entry, nil)

		_, err := f.payments.Record(context.Background(), tenantID, RecordPaymentRequest{
			LedgerEntryID: entry.ID,
			Amount:        decimal.NewFromInt(6000),
			Method:        "CASH",
		})
		assertDomainErrorCode(t, err, "EXCEEDS_REMAINING")
		f.ledgerRepo.AssertNotCalled(t, "Save")
		f.paymentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("cancelled entry does not accept payments", func(t *testing.T) {
		f := newFinanceFixture()
		entry := createPayableEntry(t, tenantID, uuid.New(), 5000, 30)
		require.NoError(t, entry.Cancel())

		f.ledgerRepo.On("FindByIDForTenant", mock.Anything, tenantID, entry.ID).Return(entry, nil)

		_, err := f.payments.Record(context.Background(), tenantID, RecordPaymentRequest{
			LedgerEntryID: entry.ID,
			Amount:        decimal.NewFromInt(1000),
			Method:        "CASH",
		})
		assertDomainErrorCode(t, err, "INVALID_STATUS")
	})
}

func TestLedgerService_SweepOverdue(t *testing.T) {
	tenantID := uuid.New()

	t.Run("marks due entries overdue", func(t *testing.T) {
		f := newFinanceFixture()

		first := createPayableEntry(t, tenantID, uuid.New(), 5000, 30)
		second := createPayableEntry(t, tenantID, uuid.New(), 9000, 15)
		past := time.Now().AddDate(0, 0, -1)
		first.DueDate = &past
		second.DueDate = &past

		f.ledgerRepo.On("FindDuePastDate", mock.Anything, tenantID).Return([]finance.LedgerEntry{*first, *second}, nil)
		f.ledgerRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.LedgerEntry")).Return(nil)

		resp, err := f.ledger.SweepOverdue(context.Background(), tenantID)
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Marked)
		saved := f.ledgerRepo.Calls[1].Arguments.Get(1).(*finance.LedgerEntry)
		assert.Equal(t, finance.LedgerStatusOverdue, saved.Status)
	})

	t.Run("nothing due marks nothing", func(t *testing.T) {
		f := newFinanceFixture()

		f.ledgerRepo.On("FindDuePastDate", mock.Anything, tenantID).Return([]finance.LedgerEntry{}, nil)

		resp, err := f.ledger.SweepOverdue(context.Background(), tenantID)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Marked)
	})
}

func TestLedgerService_GetByID(t *testing.T) {
	tenantID := uuid.New()

	t.Run("includes payment history", func(t *testing.T) {
		f := newFinanceFixture()
		entry := createPayableEntry(t, tenantID, uuid.New(), 10000, 30)
		require.NoError(t, entry.ApplyPayment(decimal.NewFromInt(4000)))

		payment, err := finance.NewPayment(tenantID, "PV-20260830-00004", entry, decimal.NewFromInt(4000), finance.PaymentMethodCheque, "CHQ-221")
		require.NoError(t, err)

		f.ledgerRepo.On("FindByIDForTenant", mock.Anything, tenantID, entry.ID).Return(entry, nil)
		f.paymentRepo.On("FindByLedgerEntry", mock.Anything, tenantID, entry.ID).Return([]finance.Payment{*payment}, nil)

		resp, err := f.ledger.GetByID(context.Background(), tenantID, entry.ID)
		require.NoError(t, err)

		assert.Equal(t, "PARTIAL", resp.Status)
		require.Len(t, resp.Payments, 1)
		assert.Equal(t, "PV-20260830-00004", resp.Payments[0].PaymentNumber)
	})
}

func TestLedgerService_OutstandingSummary(t *testing.T) {
	tenantID := uuid.New()

	t.Run("totals both directions", func(t *testing.T) {
		f := newFinanceFixture()

		f.ledgerRepo.On("SumRemainingByDirection", mock.Anything, tenantID, finance.LedgerDirectionPayable).Return(decimal.NewFromInt(42000), nil)
		f.ledgerRepo.On("SumRemainingByDirection", mock.Anything, tenantID, finance.LedgerDirectionReceivable).Return(decimal.NewFromInt(31000), nil)

		resp, err := f.ledger.OutstandingSummary(context.Background(), tenantID)
		require.NoError(t, err)

		assert.True(t, resp.TotalPayable.Equal(decimal.NewFromInt(42000)))
		assert.True(t, resp.TotalReceivable.Equal(decimal.NewFromInt(31000)))
	})
}
