package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer represents a buyer of finished fabric.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.TenantAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Status      CustomerStatus  `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName string          `gorm:"type:varchar(100)"`
	Phone       string          `gorm:"type:varchar(50);index"`
	Email       string          `gorm:"type:varchar(200);index"`
	Address     string          `gorm:"type:text"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Zero means no limit
	Balance     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Current accounts receivable balance
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(tenantID uuid.UUID, code, name string) (*Customer, error) {
	if err := validatePartnerCode(code); err != nil {
		return nil, err
	}
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	customer := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Status:              CustomerStatusActive,
		CreditLimit:         decimal.Zero,
		Balance:             decimal.Zero,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the customer's address
func (c *Customer) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetCreditLimit sets the maximum receivable balance allowed for this customer
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}

	c.CreditLimit = limit
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the customer's notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// AddBalance adds to the customer's receivable balance (when fabric is sold on credit)
func (c *Customer) AddBalance(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !c.CreditLimit.IsZero() && c.Balance.Add(amount).GreaterThan(c.CreditLimit) {
		return shared.NewDomainError("CREDIT_LIMIT_EXCEEDED", "Sale would exceed customer credit limit")
	}

	oldBalance := c.Balance
	c.Balance = c.Balance.Add(amount)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerBalanceChangedEvent(c, oldBalance, c.Balance, "sale"))

	return nil
}

// DeductBalance deducts from the customer's receivable balance (when a payment is received)
func (c *Customer) DeductBalance(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if c.Balance.LessThan(amount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount exceeds current balance")
	}

	oldBalance := c.Balance
	c.Balance = c.Balance.Sub(amount)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerBalanceChangedEvent(c, oldBalance, c.Balance, "payment"))

	return nil
}

// Activate activates the customer
func (c *Customer) Activate() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusActive))

	return nil
}

// Deactivate deactivates the customer
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusInactive))

	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// HasBalance returns true if the customer has outstanding receivable balance
func (c *Customer) HasBalance() bool {
	return c.Balance.GreaterThan(decimal.Zero)
}

// AvailableCredit returns the remaining credit for new sales (zero limit means unlimited)
func (c *Customer) AvailableCredit() decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	available := c.CreditLimit.Sub(c.Balance)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// Validation functions shared by vendors and customers

func validatePartnerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validatePartnerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	for _, r := range phone {
		if !((r >= '0' && r <= '9') || r == '+' || r == '-' || r == ' ' || r == '(' || r == ')') {
			return shared.NewDomainError("INVALID_PHONE", "Phone contains invalid characters")
		}
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}
