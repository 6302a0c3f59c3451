package procurement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constant for ThreadPurchase
const AggregateTypeThreadPurchase = "ThreadPurchase"

// Event type constants for ThreadPurchase
const (
	EventTypeThreadPurchaseCreated   = "ThreadPurchaseCreated"
	EventTypeThreadPurchaseReceived  = "ThreadPurchaseReceived"
	EventTypeThreadPurchaseCancelled = "ThreadPurchaseCancelled"
)

// ThreadPurchaseCreatedEvent is published when a new purchase is placed
type ThreadPurchaseCreatedEvent struct {
	shared.BaseDomainEvent
	PurchaseNumber string          `json:"purchase_number"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	Article        string          `json:"article"`
	Quantity       decimal.Decimal `json:"quantity"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// NewThreadPurchaseCreatedEvent creates a new ThreadPurchaseCreatedEvent
func NewThreadPurchaseCreatedEvent(p *ThreadPurchase) *ThreadPurchaseCreatedEvent {
	return &ThreadPurchaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeThreadPurchaseCreated, AggregateTypeThreadPurchase, p.ID, p.TenantID),
		PurchaseNumber:  p.PurchaseNumber,
		VendorID:        p.VendorID,
		Article:         p.Article,
		Quantity:        p.Quantity,
		TotalAmount:     p.TotalAmount,
	}
}

// ThreadPurchaseReceivedEvent is published when purchased thread arrives
type ThreadPurchaseReceivedEvent struct {
	shared.BaseDomainEvent
	PurchaseNumber string          `json:"purchase_number"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	Article        string          `json:"article"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentMode    PaymentMode     `json:"payment_mode"`
}

// NewThreadPurchaseReceivedEvent creates a new ThreadPurchaseReceivedEvent
func NewThreadPurchaseReceivedEvent(p *ThreadPurchase) *ThreadPurchaseReceivedEvent {
	return &ThreadPurchaseReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeThreadPurchaseReceived, AggregateTypeThreadPurchase, p.ID, p.TenantID),
		PurchaseNumber:  p.PurchaseNumber,
		VendorID:        p.VendorID,
		Article:         p.Article,
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		TotalAmount:     p.TotalAmount,
		PaymentMode:     p.PaymentMode,
	}
}

// ThreadPurchaseCancelledEvent is published when a purchase is cancelled
type ThreadPurchaseCancelledEvent struct {
	shared.BaseDomainEvent
	PurchaseNumber string    `json:"purchase_number"`
	VendorID       uuid.UUID `json:"vendor_id"`
}

// NewThreadPurchaseCancelledEvent creates a new ThreadPurchaseCancelledEvent
func NewThreadPurchaseCancelledEvent(p *ThreadPurchase) *ThreadPurchaseCancelledEvent {
	return &ThreadPurchaseCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeThreadPurchaseCancelled, AggregateTypeThreadPurchase, p.ID, p.TenantID),
		PurchaseNumber:  p.PurchaseNumber,
		VendorID:        p.VendorID,
	}
}
