package production

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/shared"
)

// DyeingProcess represents one lot of raw thread issued to a dyeing factory.
// It is the aggregate root for the dyeing workflow. Creating a process consumes
// raw thread; completing it yields dyed thread and a payable for the dyeing charges.
type DyeingProcess struct {
	shared.TenantAggregateRoot
	LotNumber      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_dyeing_tenant_lot,priority:2"`
	VendorID       uuid.UUID       `gorm:"type:uuid;not null;index"` // Dyeing factory
	ThreadArticle  string          `gorm:"type:varchar(100);not null"`
	Color          string          `gorm:"type:varchar(50);not null"`
	InputQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`           // Raw thread issued, kg
	OutputQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Dyed thread returned, kg
	Wastage        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Input minus output, kg
	DyeingRate     decimal.Decimal `gorm:"type:decimal(18,4);not null"`           // Charge per kg of input
	DyeingCost     decimal.Decimal `gorm:"type:decimal(18,4);not null"`           // InputQuantity * DyeingRate
	Status         Status          `gorm:"type:varchar(20);not null;default:'IN_PROCESS'"`
	IssueDate      time.Time       `gorm:"type:timestamptz;not null"`
	CompletionDate *time.Time      `gorm:"type:timestamptz"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DyeingProcess) TableName() string {
	return "dyeing_processes"
}

// NewDyeingProcess creates a new dyeing process in IN_PROCESS status
func NewDyeingProcess(tenantID uuid.UUID, lotNumber string, vendorID uuid.UUID, threadArticle, color string, inputQuantity, dyeingRate decimal.Decimal) (*DyeingProcess, error) {
	if lotNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Lot number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	threadArticle = strings.TrimSpace(threadArticle)
	if threadArticle == "" {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Thread article cannot be empty")
	}
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, shared.NewDomainError("INVALID_COLOR", "Color cannot be empty")
	}
	if inputQuantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Input quantity must be positive")
	}
	if dyeingRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RATE", "Dyeing rate must be positive")
	}

	process := &DyeingProcess{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		LotNumber:           lotNumber,
		VendorID:            vendorID,
		ThreadArticle:       threadArticle,
		Color:               color,
		InputQuantity:       inputQuantity,
		OutputQuantity:      decimal.Zero,
		Wastage:             decimal.Zero,
		DyeingRate:          dyeingRate,
		DyeingCost:          inputQuantity.Mul(dyeingRate).Round(2),
		Status:              StatusInProcess,
		IssueDate:           time.Now(),
	}

	process.AddDomainEvent(NewDyeingProcessCreatedEvent(process))

	return process, nil
}

// UpdateDetails changes the rate or color of a process that is still running
func (d *DyeingProcess) UpdateDetails(color string, dyeingRate decimal.Decimal) error {
	if d.Status != StatusInProcess {
		return shared.NewDomainError("INVALID_STATUS", "Only in-process lots can be edited")
	}
	color = strings.TrimSpace(color)
	if color == "" {
		return shared.NewDomainError("INVALID_COLOR", "Color cannot be empty")
	}
	if dyeingRate.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_RATE", "Dyeing rate must be positive")
	}

	d.Color = color
	d.DyeingRate = dyeingRate
	d.DyeingCost = d.InputQuantity.Mul(dyeingRate).Round(2)
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// SetNotes sets the process notes
func (d *DyeingProcess) SetNotes(notes string) {
	d.Notes = notes
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// Complete records the dyed thread returned by the factory.
// Output cannot exceed input; the difference is recorded as wastage.
func (d *DyeingProcess) Complete(outputQuantity decimal.Decimal) error {
	if d.Status != StatusInProcess {
		return shared.NewDomainError("INVALID_STATUS", "Only in-process lots can be completed")
	}
	if outputQuantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Output quantity must be positive")
	}
	if outputQuantity.GreaterThan(d.InputQuantity) {
		return shared.NewDomainError("INVALID_QUANTITY", "Output quantity cannot exceed input quantity")
	}

	now := time.Now()
	d.OutputQuantity = outputQuantity
	d.Wastage = d.InputQuantity.Sub(outputQuantity)
	d.Status = StatusCompleted
	d.CompletionDate = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDyeingProcessCompletedEvent(d))

	return nil
}

// Cancel aborts a running process. The consumed raw thread is returned
// to stock by the caller in the same transaction.
func (d *DyeingProcess) Cancel() error {
	if d.Status != StatusInProcess {
		return shared.NewDomainError("INVALID_STATUS", "Only in-process lots can be cancelled")
	}

	d.Status = StatusCancelled
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	d.AddDomainEvent(NewDyeingProcessCancelledEvent(d))

	return nil
}

// IsInProcess returns true while the lot is at the dyeing factory
func (d *DyeingProcess) IsInProcess() bool {
	return d.Status == StatusInProcess
}

// WastagePercent returns wastage as a percentage of input
func (d *DyeingProcess) WastagePercent() decimal.Decimal {
	if d.InputQuantity.IsZero() {
		return decimal.Zero
	}
	return d.Wastage.Div(d.InputQuantity).Mul(decimal.NewFromInt(100)).Round(2)
}
