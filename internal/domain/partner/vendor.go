package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// VendorStatus represents the status of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "active"
	VendorStatusInactive VendorStatus = "inactive"
)

// VendorType represents the kind of service a vendor provides
type VendorType string

const (
	VendorTypeThreadSupplier VendorType = "thread_supplier" // Sells raw thread
	VendorTypeDyeingFactory  VendorType = "dyeing_factory"  // Dyes thread on job-work basis
	VendorTypeOther          VendorType = "other"
)

// Vendor represents a supplier of thread or dyeing services.
// It is the aggregate root for vendor-related operations.
type Vendor struct {
	shared.TenantAggregateRoot
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_vendor_tenant_code,priority:2"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Type         VendorType      `gorm:"type:varchar(20);not null;default:'thread_supplier'"`
	Status       VendorStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName  string          `gorm:"type:varchar(100)"`
	Phone        string          `gorm:"type:varchar(50);index"`
	Email        string          `gorm:"type:varchar(200);index"`
	Address      string          `gorm:"type:text"`
	PaymentTerms int             `gorm:"not null;default:0"`                    // Days until payment due
	Balance      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Current accounts payable balance
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor with required fields
func NewVendor(tenantID uuid.UUID, code, name string, vendorType VendorType) (*Vendor, error) {
	if err := validatePartnerCode(code); err != nil {
		return nil, err
	}
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if err := validateVendorType(vendorType); err != nil {
		return nil, err
	}

	vendor := &Vendor{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Type:                vendorType,
		Status:              VendorStatusActive,
		PaymentTerms:        0,
		Balance:             decimal.Zero,
	}

	vendor.AddDomainEvent(NewVendorCreatedEvent(vendor))

	return vendor, nil
}

// Update updates the vendor's basic information
func (v *Vendor) Update(name string, vendorType VendorType) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if err := validateVendorType(vendorType); err != nil {
		return err
	}

	v.Name = name
	v.Type = vendorType
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVendorUpdatedEvent(v))

	return nil
}

// SetContact sets the vendor's contact information
func (v *Vendor) SetContact(contactName, phone, email string) error {
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

	v.ContactName = contactName
	v.Phone = phone
	v.Email = email
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetAddress sets the vendor's address
func (v *Vendor) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	v.Address = address
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetPaymentTerms sets the number of days until payment is due
func (v *Vendor) SetPaymentTerms(days int) error {
	if days < 0 {
		return shared.NewDomainError("INVALID_PAYMENT_TERMS", "Payment terms cannot be negative")
	}
	if days > 365 {
		return shared.NewDomainError("INVALID_PAYMENT_TERMS", "Payment terms cannot exceed 365 days")
	}

	v.PaymentTerms = days
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetNotes sets the vendor's notes
func (v *Vendor) SetNotes(notes string) {
	v.Notes = notes
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// AddBalance adds to the vendor's payable balance (when goods or services are received on credit)
func (v *Vendor) AddBalance(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	oldBalance := v.Balance
	v.Balance = v.Balance.Add(amount)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVendorBalanceChangedEvent(v, oldBalance, v.Balance, "purchase"))

	return nil
}

// DeductBalance deducts from the vendor's payable balance (when a payment is made)
func (v *Vendor) DeductBalance(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if v.Balance.LessThan(amount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount exceeds current balance")
	}

	oldBalance := v.Balance
	v.Balance = v.Balance.Sub(amount)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVendorBalanceChangedEvent(v, oldBalance, v.Balance, "payment"))

	return nil
}

// Activate activates the vendor
func (v *Vendor) Activate() error {
	if v.Status == VendorStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Vendor is already active")
	}

	oldStatus := v.Status
	v.Status = VendorStatusActive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVendorStatusChangedEvent(v, oldStatus, VendorStatusActive))

	return nil
}

// Deactivate deactivates the vendor
func (v *Vendor) Deactivate() error {
	if v.Status == VendorStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Vendor is already inactive")
	}

	oldStatus := v.Status
	v.Status = VendorStatusInactive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVendorStatusChangedEvent(v, oldStatus, VendorStatusInactive))

	return nil
}

// IsActive returns true if the vendor is active
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// HasBalance returns true if the vendor has outstanding payable balance
func (v *Vendor) HasBalance() bool {
	return v.Balance.GreaterThan(decimal.Zero)
}

// Validation functions

func validateVendorType(t VendorType) error {
	switch t {
	case VendorTypeThreadSupplier, VendorTypeDyeingFactory, VendorTypeOther:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid vendor type")
	}
}
