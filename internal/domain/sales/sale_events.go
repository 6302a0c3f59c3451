package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constant for Sale
const AggregateTypeSale = "Sale"

// Event type constants for Sale
const (
	EventTypeSaleCreated   = "SaleCreated"
	EventTypeSaleDelivered = "SaleDelivered"
	EventTypeSaleCancelled = "SaleCancelled"
)

// SaleCreatedEvent is published when an invoice is raised
type SaleCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	ItemCount     int             `json:"item_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMode   PaymentMode     `json:"payment_mode"`
}

// NewSaleCreatedEvent creates a new SaleCreatedEvent
func NewSaleCreatedEvent(sale *Sale) *SaleCreatedEvent {
	return &SaleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCreated, AggregateTypeSale, sale.ID, sale.TenantID),
		InvoiceNumber:   sale.InvoiceNumber,
		CustomerID:      sale.CustomerID,
		ItemCount:       len(sale.Items),
		TotalAmount:     sale.TotalAmount,
		PaymentMode:     sale.PaymentMode,
	}
}

// SaleDeliveredEvent is published when goods leave the warehouse
type SaleDeliveredEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string    `json:"invoice_number"`
	CustomerID    uuid.UUID `json:"customer_id"`
}

// NewSaleDeliveredEvent creates a new SaleDeliveredEvent
func NewSaleDeliveredEvent(sale *Sale) *SaleDeliveredEvent {
	return &SaleDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleDelivered, AggregateTypeSale, sale.ID, sale.TenantID),
		InvoiceNumber:   sale.InvoiceNumber,
		CustomerID:      sale.CustomerID,
	}
}

// SaleCancelledEvent is published when an invoice is voided
type SaleCancelledEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// NewSaleCancelledEvent creates a new SaleCancelledEvent
func NewSaleCancelledEvent(sale *Sale) *SaleCancelledEvent {
	return &SaleCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCancelled, AggregateTypeSale, sale.ID, sale.TenantID),
		InvoiceNumber:   sale.InvoiceNumber,
		CustomerID:      sale.CustomerID,
		TotalAmount:     sale.TotalAmount,
	}
}
