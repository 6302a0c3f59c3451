package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestVendor(t *testing.T) *Vendor {
	t.Helper()
	vendor, err := NewVendor(uuid.New(), "VND001", "Test Vendor", VendorTypeThreadSupplier)
	require.NoError(t, err)
	return vendor
}

func TestNewVendor(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates vendor with valid input", func(t *testing.T) {
		vendor, err := NewVendor(tenantID, "VND001", "Test Vendor", VendorTypeThreadSupplier)
		require.NoError(t, err)
		require.NotNil(t, vendor)

		assert.NotEqual(t, uuid.Nil, vendor.ID)
		assert.Equal(t, tenantID, vendor.TenantID)
		assert.Equal(t, "VND001", vendor.Code)
		assert.Equal(t, "Test Vendor", vendor.Name)
		assert.Equal(t, VendorTypeThreadSupplier, vendor.Type)
		assert.Equal(t, VendorStatusActive, vendor.Status)
		assert.Equal(t, 0, vendor.PaymentTerms)
		assert.True(t, vendor.Balance.IsZero())

		events := vendor.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeVendorCreated, events[0].EventType())
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		vendor, err := NewVendor(tenantID, "vnd001", "Test Vendor", VendorTypeDyeingFactory)
		require.NoError(t, err)
		assert.Equal(t, "VND001", vendor.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		vendor, err := NewVendor(tenantID, "", "Test Vendor", VendorTypeThreadSupplier)
		assert.Nil(t, vendor)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		vendor, err := NewVendor(tenantID, "VND001", "", VendorTypeThreadSupplier)
		assert.Nil(t, vendor)
		assert.Error(t, err)
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		vendor, err := NewVendor(tenantID, "VND001", "Test Vendor", VendorType("invalid"))
		assert.Nil(t, vendor)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid vendor type")
	})

	t.Run("fails with invalid characters in code", func(t *testing.T) {
		vendor, err := NewVendor(tenantID, "VND@001", "Test Vendor", VendorTypeThreadSupplier)
		assert.Nil(t, vendor)
		assert.Error(t, err)
	})
}

func TestVendor_Update(t *testing.T) {
	vendor := createTestVendor(t)

	t.Run("updates name and type", func(t *testing.T) {
		vendor.ClearDomainEvents()
		err := vendor.Update("New Name", VendorTypeDyeingFactory)
		require.NoError(t, err)
		assert.Equal(t, "New Name", vendor.Name)
		assert.Equal(t, VendorTypeDyeingFactory, vendor.Type)

		events := vendor.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeVendorUpdated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		err := vendor.Update("", VendorTypeThreadSupplier)
		assert.Error(t, err)
	})
}

func TestVendor_SetContact(t *testing.T) {
	vendor := createTestVendor(t)

	t.Run("sets contact information", func(t *testing.T) {
		err := vendor.SetContact("John", "+91 98765 43210", "john@vendor.com")
		require.NoError(t, err)
		assert.Equal(t, "John", vendor.ContactName)
		assert.Equal(t, "+91 98765 43210", vendor.Phone)
		assert.Equal(t, "john@vendor.com", vendor.Email)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		err := vendor.SetContact("John", "", "not-an-email")
		assert.Error(t, err)
	})

	t.Run("fails with invalid phone", func(t *testing.T) {
		err := vendor.SetContact("John", "abc123", "")
		assert.Error(t, err)
	})
}

func TestVendor_SetPaymentTerms(t *testing.T) {
	vendor := createTestVendor(t)

	t.Run("sets payment terms", func(t *testing.T) {
		err := vendor.SetPaymentTerms(30)
		require.NoError(t, err)
		assert.Equal(t, 30, vendor.PaymentTerms)
	})

	t.Run("fails with negative days", func(t *testing.T) {
		err := vendor.SetPaymentTerms(-1)
		assert.Error(t, err)
	})

	t.Run("fails with more than a year", func(t *testing.T) {
		err := vendor.SetPaymentTerms(366)
		assert.Error(t, err)
	})
}

func TestVendor_Balance(t *testing.T) {
	t.Run("adds and deducts balance", func(t *testing.T) {
		vendor := createTestVendor(t)
		vendor.ClearDomainEvents()

		err := vendor.AddBalance(decimal.NewFromInt(1000))
		require.NoError(t, err)
		assert.True(t, vendor.Balance.Equal(decimal.NewFromInt(1000)))
		assert.True(t, vendor.HasBalance())

		err = vendor.DeductBalance(decimal.NewFromInt(400))
		require.NoError(t, err)
		assert.True(t, vendor.Balance.Equal(decimal.NewFromInt(600)))

		events := vendor.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeVendorBalanceChanged, events[0].EventType())
	})

	t.Run("fails to add non-positive amount", func(t *testing.T) {
		vendor := createTestVendor(t)
		assert.Error(t, vendor.AddBalance(decimal.Zero))
		assert.Error(t, vendor.AddBalance(decimal.NewFromInt(-5)))
	})

	t.Run("fails to deduct more than balance", func(t *testing.T) {
		vendor := createTestVendor(t)
		require.NoError(t, vendor.AddBalance(decimal.NewFromInt(100)))
		err := vendor.DeductBalance(decimal.NewFromInt(101))
		assert.Error(t, err)
	})
}

func TestVendor_StatusTransitions(t *testing.T) {
	vendor := createTestVendor(t)

	t.Run("cannot activate an active vendor", func(t *testing.T) {
		err := vendor.Activate()
		assert.Error(t, err)
	})

	t.Run("deactivates and reactivates", func(t *testing.T) {
		require.NoError(t, vendor.Deactivate())
		assert.False(t, vendor.IsActive())

		require.NoError(t, vendor.Activate())
		assert.True(t, vendor.IsActive())
	})

	t.Run("cannot deactivate an inactive vendor", func(t *testing.T) {
		require.NoError(t, vendor.Deactivate())
		err := vendor.Deactivate()
		assert.Error(t, err)
	})
}
