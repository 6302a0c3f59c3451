package partner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constant for Vendor
const AggregateTypeVendor = "Vendor"

// Event type constants for Vendor
const (
	EventTypeVendorCreated        = "VendorCreated"
	EventTypeVendorUpdated        = "VendorUpdated"
	EventTypeVendorStatusChanged  = "VendorStatusChanged"
	EventTypeVendorBalanceChanged = "VendorBalanceChanged"
	EventTypeVendorDeleted        = "VendorDeleted"
)

// VendorCreatedEvent is published when a new vendor is created
type VendorCreatedEvent struct {
	shared.BaseDomainEvent
	VendorID uuid.UUID  `json:"vendor_id"`
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	Type     VendorType `json:"type"`
}

// NewVendorCreatedEvent creates a new VendorCreatedEvent
func NewVendorCreatedEvent(vendor *Vendor) *VendorCreatedEvent {
	return &VendorCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVendorCreated, AggregateTypeVendor, vendor.ID, vendor.TenantID),
		VendorID:        vendor.ID,
		Code:            vendor.Code,
		Name:            vendor.Name,
		Type:            vendor.Type,
	}
}

// VendorUpdatedEvent is published when a vendor is updated
type VendorUpdatedEvent struct {
	shared.BaseDomainEvent
	VendorID uuid.UUID  `json:"vendor_id"`
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	Type     VendorType `json:"type"`
}

// NewVendorUpdatedEvent creates a new VendorUpdatedEvent
func NewVendorUpdatedEvent(vendor *Vendor) *VendorUpdatedEvent {
	return &VendorUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVendorUpdated, AggregateTypeVendor, vendor.ID, vendor.TenantID),
		VendorID:        vendor.ID,
		Code:            vendor.Code,
		Name:            vendor.Name,
		Type:            vendor.Type,
	}
}

// VendorStatusChangedEvent is published when a vendor's status changes
type VendorStatusChangedEvent struct {
	shared.BaseDomainEvent
	VendorID  uuid.UUID    `json:"vendor_id"`
	Code      string       `json:"code"`
	OldStatus VendorStatus `json:"old_status"`
	NewStatus VendorStatus `json:"new_status"`
}

// NewVendorStatusChangedEvent creates a new VendorStatusChangedEvent
func NewVendorStatusChangedEvent(vendor *Vendor, oldStatus, newStatus VendorStatus) *VendorStatusChangedEvent {
	return &VendorStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVendorStatusChanged, AggregateTypeVendor, vendor.ID, vendor.TenantID),
		VendorID:        vendor.ID,
		Code:            vendor.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// VendorBalanceChangedEvent is published when a vendor's payable balance changes
type VendorBalanceChangedEvent struct {
	shared.BaseDomainEvent
	VendorID   uuid.UUID       `json:"vendor_id"`
	Code       string          `json:"code"`
	OldBalance decimal.Decimal `json:"old_balance"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Reason     string          `json:"reason"` // "purchase", "dyeing", "payment"
}

// NewVendorBalanceChangedEvent creates a new VendorBalanceChangedEvent
func NewVendorBalanceChangedEvent(vendor *Vendor, oldBalance, newBalance decimal.Decimal, reason string) *VendorBalanceChangedEvent {
	return &VendorBalanceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVendorBalanceChanged, AggregateTypeVendor, vendor.ID, vendor.TenantID),
		VendorID:        vendor.ID,
		Code:            vendor.Code,
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
		Reason:          reason,
	}
}

// VendorDeletedEvent is published when a vendor is deleted
type VendorDeletedEvent struct {
	shared.BaseDomainEvent
	VendorID uuid.UUID `json:"vendor_id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
}

// NewVendorDeletedEvent creates a new VendorDeletedEvent
func NewVendorDeletedEvent(vendor *Vendor) *VendorDeletedEvent {
	return &VendorDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVendorDeleted, AggregateTypeVendor, vendor.ID, vendor.TenantID),
		VendorID:        vendor.ID,
		Code:            vendor.Code,
		Name:            vendor.Name,
	}
}
