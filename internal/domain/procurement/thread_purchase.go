package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// ThreadPurchaseStatus represents the status of a thread purchase
type ThreadPurchaseStatus string

const (
	ThreadPurchaseStatusOrdered   ThreadPurchaseStatus = "ORDERED"
	ThreadPurchaseStatusReceived  ThreadPurchaseStatus = "RECEIVED"
	ThreadPurchaseStatusCancelled ThreadPurchaseStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ThreadPurchaseStatus
func (s ThreadPurchaseStatus) IsValid() bool {
	switch s {
	case ThreadPurchaseStatusOrdered, ThreadPurchaseStatusReceived, ThreadPurchaseStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ThreadPurchaseStatus
func (s ThreadPurchaseStatus) String() string {
	return string(s)
}

// PaymentMode represents how a purchase or sale is paid for
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeCredit PaymentMode = "CREDIT"
)

// IsValid checks if the payment mode is valid
func (m PaymentMode) IsValid() bool {
	return m == PaymentModeCash || m == PaymentModeCredit
}

// ThreadPurchase represents an order of raw thread from a vendor.
// It is the aggregate root for thread procurement.
type ThreadPurchase struct {
	shared.TenantAggregateRoot
	PurchaseNumber string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_thread_purchase_tenant_number,priority:2"`
	VendorID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	Article        string               `gorm:"type:varchar(100);not null"` // Thread count and quality, e.g. "30s combed"
	Quantity       decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	UnitPrice      decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	TotalAmount    decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	PaymentMode    PaymentMode          `gorm:"type:varchar(10);not null;default:'CREDIT'"`
	Status         ThreadPurchaseStatus `gorm:"type:varchar(20);not null;default:'ORDERED'"`
	PurchaseDate   time.Time            `gorm:"type:timestamptz;not null"`
	ReceivedDate   *time.Time           `gorm:"type:timestamptz"`
	Notes          string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ThreadPurchase) TableName() string {
	return "thread_purchases"
}

// NewThreadPurchase creates a new thread purchase in ORDERED status
func NewThreadPurchase(tenantID uuid.UUID, purchaseNumber string, vendorID uuid.UUID, article string, quantity, unitPrice decimal.Decimal, paymentMode PaymentMode) (*ThreadPurchase, error) {
	if purchaseNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Purchase number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if err := validateArticle(article); err != nil {
		return nil, err
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}
	if !paymentMode.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_MODE", "Payment mode must be CASH or CREDIT")
	}

	purchase := &ThreadPurchase{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PurchaseNumber:      purchaseNumber,
		VendorID:            vendorID,
		Article:             strings.TrimSpace(article),
		Quantity:            quantity,
		UnitPrice:           unitPrice,
		TotalAmount:         quantity.Mul(unitPrice).Round(2),
		PaymentMode:         paymentMode,
		Status:              ThreadPurchaseStatusOrdered,
		PurchaseDate:        time.Now(),
	}

	purchase.AddDomainEvent(NewThreadPurchaseCreatedEvent(purchase))

	return purchase, nil
}

// UpdateDetails changes the article, quantity or price of an unreceived purchase
func (p *ThreadPurchase) UpdateDetails(article string, quantity, unitPrice decimal.Decimal) error {
	if p.Status != ThreadPurchaseStatusOrdered {
		return shared.NewDomainError("INVALID_STATUS", "Only ordered purchases can be edited")
	}
	if err := validateArticle(article); err != nil {
		return err
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	p.Article = strings.TrimSpace(article)
	p.Quantity = quantity
	p.UnitPrice = unitPrice
	p.TotalAmount = quantity.Mul(unitPrice).Round(2)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetNotes sets the purchase notes
func (p *ThreadPurchase) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Receive marks the purchase as received. Receiving is forward-only.
func (p *ThreadPurchase) Receive() error {
	if p.Status != ThreadPurchaseStatusOrdered {
		return shared.NewDomainError("INVALID_STATUS", "Only ordered purchases can be received")
	}

	now := time.Now()
	p.Status = ThreadPurchaseStatusReceived
	p.ReceivedDate = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	p.AddDomainEvent(NewThreadPurchaseReceivedEvent(p))

	return nil
}

// Cancel cancels an unreceived purchase
func (p *ThreadPurchase) Cancel() error {
	if p.Status != ThreadPurchaseStatusOrdered {
		return shared.NewDomainError("INVALID_STATUS", "Only ordered purchases can be cancelled")
	}

	p.Status = ThreadPurchaseStatusCancelled
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewThreadPurchaseCancelledEvent(p))

	return nil
}

// CanDelete returns true if the purchase can be deleted.
// Received purchases have inventory and ledger rows hanging off them.
func (p *ThreadPurchase) CanDelete() bool {
	return p.Status == ThreadPurchaseStatusOrdered || p.Status == ThreadPurchaseStatusCancelled
}

// IsReceived returns true if the purchase has been received
func (p *ThreadPurchase) IsReceived() bool {
	return p.Status == ThreadPurchaseStatusReceived
}

// IsCredit returns true if the purchase is on credit terms
func (p *ThreadPurchase) IsCredit() bool {
	return p.PaymentMode == PaymentModeCredit
}

func validateArticle(article string) error {
	article = strings.TrimSpace(article)
	if article == "" {
		return shared.NewDomainError("INVALID_ARTICLE", "Article cannot be empty")
	}
	if len(article) > 100 {
		return shared.NewDomainError("INVALID_ARTICLE", "Article cannot exceed 100 characters")
	}
	return nil
}
