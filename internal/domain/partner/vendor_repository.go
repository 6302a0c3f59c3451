package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindByIDForTenant finds a vendor by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Vendor, error)

	// FindByCode finds a vendor by its code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Vendor, error)

	// FindAllForTenant finds all vendors for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Vendor, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error

	// DeleteForTenant deletes a vendor within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts vendors for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a vendor with the given code exists in the tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}
