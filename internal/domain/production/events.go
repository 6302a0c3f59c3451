package production

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeDyeingProcess    = "DyeingProcess"
	AggregateTypeFabricProduction = "FabricProduction"
)

// Event type constants
const (
	EventTypeDyeingProcessCreated      = "DyeingProcessCreated"
	EventTypeDyeingProcessCompleted    = "DyeingProcessCompleted"
	EventTypeDyeingProcessCancelled    = "DyeingProcessCancelled"
	EventTypeFabricProductionCreated   = "FabricProductionCreated"
	EventTypeFabricProductionCompleted = "FabricProductionCompleted"
	EventTypeFabricProductionCancelled = "FabricProductionCancelled"
)

// DyeingProcessCreatedEvent is published when raw thread is issued for dyeing
type DyeingProcessCreatedEvent struct {
	shared.BaseDomainEvent
	LotNumber     string          `json:"lot_number"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	ThreadArticle string          `json:"thread_article"`
	Color         string          `json:"color"`
	InputQuantity decimal.Decimal `json:"input_quantity"`
	DyeingCost    decimal.Decimal `json:"dyeing_cost"`
}

// NewDyeingProcessCreatedEvent creates a new DyeingProcessCreatedEvent
func NewDyeingProcessCreatedEvent(d *DyeingProcess) *DyeingProcessCreatedEvent {
	return &DyeingProcessCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDyeingProcessCreated, AggregateTypeDyeingProcess, d.ID, d.TenantID),
		LotNumber:       d.LotNumber,
		VendorID:        d.VendorID,
		ThreadArticle:   d.ThreadArticle,
		Color:           d.Color,
		InputQuantity:   d.InputQuantity,
		DyeingCost:      d.DyeingCost,
	}
}

// DyeingProcessCompletedEvent is published when dyed thread comes back
type DyeingProcessCompletedEvent struct {
	shared.BaseDomainEvent
	LotNumber      string          `json:"lot_number"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	ThreadArticle  string          `json:"thread_article"`
	Color          string          `json:"color"`
	OutputQuantity decimal.Decimal `json:"output_quantity"`
	Wastage        decimal.Decimal `json:"wastage"`
	DyeingCost     decimal.Decimal `json:"dyeing_cost"`
}

// NewDyeingProcessCompletedEvent creates a new DyeingProcessCompletedEvent
func NewDyeingProcessCompletedEvent(d *DyeingProcess) *DyeingProcessCompletedEvent {
	return &DyeingProcessCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDyeingProcessCompleted, AggregateTypeDyeingProcess, d.ID, d.TenantID),
		LotNumber:       d.LotNumber,
		VendorID:        d.VendorID,
		ThreadArticle:   d.ThreadArticle,
		Color:           d.Color,
		OutputQuantity:  d.OutputQuantity,
		Wastage:         d.Wastage,
		DyeingCost:      d.DyeingCost,
	}
}

// DyeingProcessCancelledEvent is published when a lot is aborted
type DyeingProcessCancelledEvent struct {
	shared.BaseDomainEvent
	LotNumber     string          `json:"lot_number"`
	InputQuantity decimal.Decimal `json:"input_quantity"`
}

// NewDyeingProcessCancelledEvent creates a new DyeingProcessCancelledEvent
func NewDyeingProcessCancelledEvent(d *DyeingProcess) *DyeingProcessCancelledEvent {
	return &DyeingProcessCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDyeingProcessCancelled, AggregateTypeDyeingProcess, d.ID, d.TenantID),
		LotNumber:       d.LotNumber,
		InputQuantity:   d.InputQuantity,
	}
}

// FabricProductionCreatedEvent is published when dyed thread goes on the looms
type FabricProductionCreatedEvent struct {
	shared.BaseDomainEvent
	BatchNumber    string          `json:"batch_number"`
	FabricArticle  string          `json:"fabric_article"`
	Color          string          `json:"color"`
	ThreadArticle  string          `json:"thread_article"`
	ThreadQuantity decimal.Decimal `json:"thread_quantity"`
}

// NewFabricProductionCreatedEvent creates a new FabricProductionCreatedEvent
func NewFabricProductionCreatedEvent(f *FabricProduction) *FabricProductionCreatedEvent {
	return &FabricProductionCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFabricProductionCreated, AggregateTypeFabricProduction, f.ID, f.TenantID),
		BatchNumber:     f.BatchNumber,
		FabricArticle:   f.FabricArticle,
		Color:           f.Color,
		ThreadArticle:   f.ThreadArticle,
		ThreadQuantity:  f.ThreadQuantity,
	}
}

// FabricProductionCompletedEvent is published when a batch comes off the looms
type FabricProductionCompletedEvent struct {
	shared.BaseDomainEvent
	BatchNumber    string          `json:"batch_number"`
	FabricArticle  string          `json:"fabric_article"`
	Color          string          `json:"color"`
	FabricProduced decimal.Decimal `json:"fabric_produced"`
	Wastage        decimal.Decimal `json:"wastage"`
	CostPerMeter   decimal.Decimal `json:"cost_per_meter"`
}

// NewFabricProductionCompletedEvent creates a new FabricProductionCompletedEvent
func NewFabricProductionCompletedEvent(f *FabricProduction) *FabricProductionCompletedEvent {
	return &FabricProductionCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFabricProductionCompleted, AggregateTypeFabricProduction, f.ID, f.TenantID),
		BatchNumber:     f.BatchNumber,
		FabricArticle:   f.FabricArticle,
		Color:           f.Color,
		FabricProduced:  f.FabricProduced,
		Wastage:         f.Wastage,
		CostPerMeter:    f.CostPerMeter,
	}
}

// FabricProductionCancelledEvent is published when a batch is aborted
type FabricProductionCancelledEvent struct {
	shared.BaseDomainEvent
	BatchNumber    string          `json:"batch_number"`
	ThreadQuantity decimal.Decimal `json:"thread_quantity"`
}

// NewFabricProductionCancelledEvent creates a new FabricProductionCancelledEvent
func NewFabricProductionCancelledEvent(f *FabricProduction) *FabricProductionCancelledEvent {
	return &FabricProductionCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFabricProductionCancelled, AggregateTypeFabricProduction, f.ID, f.TenantID),
		BatchNumber:     f.BatchNumber,
		ThreadQuantity:  f.ThreadQuantity,
	}
}
