package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusConfirmed SaleStatus = "CONFIRMED"
	SaleStatusDelivered SaleStatus = "DELIVERED"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SaleStatus
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusConfirmed, SaleStatusDelivered, SaleStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SaleStatus
func (s SaleStatus) String() string {
	return string(s)
}

// PaymentMode represents how a sale is settled
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeCredit PaymentMode = "CREDIT"
)

// IsValid checks if the payment mode is valid
func (m PaymentMode) IsValid() bool {
	return m == PaymentModeCash || m == PaymentModeCredit
}

// SaleItem is one fabric line on a sale invoice
type SaleItem struct {
	shared.BaseEntity
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Article   string          `gorm:"type:varchar(100);not null"`
	Color     string          `gorm:"type:varchar(50);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Meters
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// LineInput carries one requested sale line into NewSale
type LineInput struct {
	Article   string
	Color     string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Sale represents a fabric sale invoice. Lines are fixed at creation;
// cancellation reverses the whole invoice.
type Sale struct {
	shared.TenantAggregateRoot
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_sale_tenant_number,priority:2"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID;references:ID"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentMode   PaymentMode     `gorm:"type:varchar(10);not null;default:'CREDIT'"`
	Status        SaleStatus      `gorm:"type:varchar(20);not null;default:'CONFIRMED'"`
	SaleDate      time.Time       `gorm:"type:timestamptz;not null"`
	DeliveredDate *time.Time      `gorm:"type:timestamptz"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a confirmed sale invoice from the given lines
func NewSale(tenantID uuid.UUID, invoiceNumber string, customerID uuid.UUID, lines []LineInput, discount decimal.Decimal, paymentMode PaymentMode) (*Sale, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "Sale must have at least one line")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if !paymentMode.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_MODE", "Payment mode must be CASH or CREDIT")
	}

	sale := &Sale{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		InvoiceNumber:       invoiceNumber,
		CustomerID:          customerID,
		Items:               make([]SaleItem, 0, len(lines)),
		Discount:            discount,
		PaymentMode:         paymentMode,
		Status:              SaleStatusConfirmed,
		SaleDate:            time.Now(),
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		article := strings.TrimSpace(line.Article)
		if article == "" {
			return nil, shared.NewDomainError("INVALID_ARTICLE", "Line article cannot be empty")
		}
		color := strings.TrimSpace(line.Color)
		if color == "" {
			return nil, shared.NewDomainError("INVALID_COLOR", "Line color cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
		if line.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_PRICE", "Line unit price must be positive")
		}

		lineTotal := line.Quantity.Mul(line.UnitPrice).Round(2)
		sale.Items = append(sale.Items, SaleItem{
			BaseEntity: shared.NewBaseEntity(),
			SaleID:     sale.ID,
			Article:    article,
			Color:      color,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			LineTotal:  lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	if discount.GreaterThan(subtotal) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed subtotal")
	}

	sale.Subtotal = subtotal
	sale.TotalAmount = subtotal.Sub(discount)

	sale.AddDomainEvent(NewSaleCreatedEvent(sale))

	return sale, nil
}

// SetNotes sets the invoice notes
func (s *Sale) SetNotes(notes string) {
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Deliver marks the sale as delivered
func (s *Sale) Deliver() error {
	if s.Status != SaleStatusConfirmed {
		return shared.NewDomainError("INVALID_STATUS", "Only confirmed sales can be delivered")
	}

	now := time.Now()
	s.Status = SaleStatusDelivered
	s.DeliveredDate = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleDeliveredEvent(s))

	return nil
}

// Cancel cancels an undelivered sale. Stock and ledger reversal happens
// in the same transaction as this state change.
func (s *Sale) Cancel() error {
	if s.Status != SaleStatusConfirmed {
		return shared.NewDomainError("INVALID_STATUS", "Only confirmed sales can be cancelled")
	}

	s.Status = SaleStatusCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleCancelledEvent(s))

	return nil
}

// IsCredit returns true if the sale is on credit terms
func (s *Sale) IsCredit() bool {
	return s.PaymentMode == PaymentModeCredit
}

// TotalQuantity returns the total meters sold across all lines
func (s *Sale) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Quantity)
	}
	return total
}

// ItemCount returns the number of lines on the invoice
func (s *Sale) ItemCount() int {
	return len(s.Items)
}
