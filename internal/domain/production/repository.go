package production

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// DyeingProcessRepository defines the interface for dyeing process persistence
type DyeingProcessRepository interface {
	// FindByID finds a process by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*DyeingProcess, error)

	// FindByIDForTenant finds a process by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*DyeingProcess, error)

	// FindAllForTenant finds all processes for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]DyeingProcess, error)

	// Save creates or updates a process
	Save(ctx context.Context, process *DyeingProcess) error

	// CountForTenant counts processes for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts processes in a given status for a tenant
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status Status) (int64, error)

	// GenerateLotNumber generates the next dyeing lot number for a tenant
	GenerateLotNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// FabricProductionRepository defines the interface for fabric batch persistence
type FabricProductionRepository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*FabricProduction, error)

	// FindByIDForTenant finds a batch by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*FabricProduction, error)

	// FindAllForTenant finds all batches for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]FabricProduction, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *FabricProduction) error

	// CountForTenant counts batches for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts batches in a given status for a tenant
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status Status) (int64, error)

	// GenerateBatchNumber generates the next fabric batch number for a tenant
	GenerateBatchNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
