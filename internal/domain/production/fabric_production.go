package production

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// FabricProduction represents one batch of dyed thread woven into fabric.
// It is the aggregate root for the weaving workflow. Creating a batch consumes
// dyed thread; completing it yields fabric stock.
type FabricProduction struct {
	shared.TenantAggregateRoot
	BatchNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_fabric_tenant_batch,priority:2"`
	FabricArticle  string          `gorm:"type:varchar(100);not null"` // e.g. "poplin 120gsm"
	Color          string          `gorm:"type:varchar(50);not null"`
	ThreadArticle  string          `gorm:"type:varchar(100);not null"`            // Dyed thread consumed
	ThreadQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`           // kg of dyed thread issued
	ConversionCost decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Weaving charges for the batch
	FabricProduced decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Meters of fabric produced
	Wastage        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // kg of thread lost in process
	CostPerMeter   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Set on completion
	Status         Status          `gorm:"type:varchar(20);not null;default:'IN_PROCESS'"`
	StartDate      time.Time       `gorm:"type:timestamptz;not null"`
	CompletionDate *time.Time      `gorm:"type:timestamptz"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (FabricProduction) TableName() string {
	return "fabric_productions"
}

// NewFabricProduction creates a new fabric batch in IN_PROCESS status
func NewFabricProduction(tenantID uuid.UUID, batchNumber, fabricArticle, color, threadArticle string, threadQuantity, conversionCost decimal.Decimal) (*FabricProduction, error) {
	if batchNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Batch number cannot be empty")
	}
	fabricArticle = strings.TrimSpace(fabricArticle)
	if fabricArticle == "" {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Fabric article cannot be empty")
	}
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, shared.NewDomainError("INVALID_COLOR", "Color cannot be empty")
	}
	threadArticle = strings.TrimSpace(threadArticle)
	if threadArticle == "" {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Thread article cannot be empty")
	}
	if threadQuantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Thread quantity must be positive")
	}
	if conversionCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Conversion cost cannot be negative")
	}

	batch := &FabricProduction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BatchNumber:         batchNumber,
		FabricArticle:       fabricArticle,
		Color:               color,
		ThreadArticle:       threadArticle,
		ThreadQuantity:      threadQuantity,
		ConversionCost:      conversionCost,
		FabricProduced:      decimal.Zero,
		Wastage:             decimal.Zero,
		CostPerMeter:        decimal.Zero,
		Status:              StatusInProcess,
		StartDate:           time.Now(),
	}

	batch.AddDomainEvent(NewFabricProductionCreatedEvent(batch))

	return batch, nil
}

// UpdateDetails changes the conversion cost of a batch that is still running
func (f *FabricProduction) UpdateDetails(conversionCost decimal.Decimal) error {
	if f.Status != StatusInProcess {
		return shared.NewDomainError("INVALID_STATUS", "Only in-process batches can be edited")
	}
	if conversionCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Conversion cost cannot be negative")
	}

	f.ConversionCost = conversionCost
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// SetNotes sets the batch notes
func (f *FabricProduction) SetNotes(notes string) {
	f.Notes = notes
	f.UpdatedAt = time.Now()
	f.IncrementVersion()
}

// Complete records the fabric output of the batch. threadValue is the value
// of the dyed thread consumed, used to roll the cost into the fabric.
func (f *FabricProduction) Complete(fabricProduced, wastage, threadValue decimal.Decimal) error {
	if f.Status != StatusInProcess {
		return shared.NewDomainError("INVALID_STATUS", "Only in-process batches can be completed")
	}
	if fabricProduced.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Fabric produced must be positive")
	}
	if wastage.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Wastage cannot be negative")
	}
	if wastage.GreaterThanOrEqual(f.ThreadQuantity) {
		return shared.NewDomainError("INVALID_QUANTITY", "Wastage cannot reach the thread quantity consumed")
	}
	if threadValue.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Thread value cannot be negative")
	}

	now := time.Now()
	f.FabricProduced = fabricProduced
	f.Wastage = wastage
	f.CostPerMeter = threadValue.Add(f.ConversionCost).Div(fabricProduced).Round(4)
	f.Status = StatusCompleted
	f.CompletionDate = &now
	f.UpdatedAt = now
	f.IncrementVersion()

	f.AddDomainEvent(NewFabricProductionCompletedEvent(f))

	return nil
}

// Cancel aborts a running batch. The consumed dyed thread is returned
// to stock by the caller in the same transaction.
func (f *FabricProduction) Cancel() error {
	if f.Status != StatusInProcess {
		return shared.NewDomainError("INVALID_STATUS", "Only in-process batches can be cancelled")
	}

	f.Status = StatusCancelled
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	f.AddDomainEvent(NewFabricProductionCancelledEvent(f))

	return nil
}

// IsInProcess returns true while the batch is on the looms
func (f *FabricProduction) IsInProcess() bool {
	return f.Status == StatusInProcess
}

// TotalCost returns the full cost of the completed batch
func (f *FabricProduction) TotalCost() decimal.Decimal {
	return f.CostPerMeter.Mul(f.FabricProduced).Round(2)
}
