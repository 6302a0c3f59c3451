package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCustomer(t *testing.T) *Customer {
	t.Helper()
	customer, err := NewCustomer(uuid.New(), "CST001", "Test Customer")
	require.NoError(t, err)
	return customer
}

func TestNewCustomer(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates customer with valid input", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CST001", "Test Customer")
		require.NoError(t, err)
		require.NotNil(t, customer)

		assert.Equal(t, tenantID, customer.TenantID)
		assert.Equal(t, "CST001", customer.Code)
		assert.Equal(t, CustomerStatusActive, customer.Status)
		assert.True(t, customer.CreditLimit.IsZero())
		assert.True(t, customer.Balance.IsZero())

		events := customer.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCustomerCreated, events[0].EventType())
	})

	t.Run("fails with empty code", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "", "Test Customer")
		assert.Nil(t, customer)
		assert.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CST001", "")
		assert.Nil(t, customer)
		assert.Error(t, err)
	})
}

func TestCustomer_CreditLimit(t *testing.T) {
	t.Run("enforces credit limit on balance increase", func(t *testing.T) {
		customer := createTestCustomer(t)
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(500)))

		require.NoError(t, customer.AddBalance(decimal.NewFromInt(400)))

		err := customer.AddBalance(decimal.NewFromInt(200))
		require.Error(t, err)
		domainErr := assertDomainError(t, err)
		assert.Equal(t, "CREDIT_LIMIT_EXCEEDED", domainErr.Code)
		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(400)))
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		customer := createTestCustomer(t)
		err := customer.AddBalance(decimal.NewFromInt(1000000))
		require.NoError(t, err)
	})

	t.Run("fails with negative limit", func(t *testing.T) {
		customer := createTestCustomer(t)
		err := customer.SetCreditLimit(decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("reports available credit", func(t *testing.T) {
		customer := createTestCustomer(t)
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(500)))
		require.NoError(t, customer.AddBalance(decimal.NewFromInt(200)))
		assert.True(t, customer.AvailableCredit().Equal(decimal.NewFromInt(300)))
	})
}

func TestCustomer_Balance(t *testing.T) {
	t.Run("adds and deducts balance", func(t *testing.T) {
		customer := createTestCustomer(t)

		require.NoError(t, customer.AddBalance(decimal.NewFromInt(750)))
		assert.True(t, customer.HasBalance())

		require.NoError(t, customer.DeductBalance(decimal.NewFromInt(750)))
		assert.False(t, customer.HasBalance())
	})

	t.Run("fails to deduct more than balance", func(t *testing.T) {
		customer := createTestCustomer(t)
		require.NoError(t, customer.AddBalance(decimal.NewFromInt(100)))
		assert.Error(t, customer.DeductBalance(decimal.NewFromInt(150)))
	})
}

func TestCustomer_StatusTransitions(t *testing.T) {
	customer := createTestCustomer(t)

	require.NoError(t, customer.Deactivate())
	assert.False(t, customer.IsActive())

	require.NoError(t, customer.Activate())
	assert.True(t, customer.IsActive())

	assert.Error(t, customer.Activate())
}
