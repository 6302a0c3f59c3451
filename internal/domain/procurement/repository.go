package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// ThreadPurchaseRepository defines the interface for thread purchase persistence
type ThreadPurchaseRepository interface {
	// FindByID finds a purchase by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ThreadPurchase, error)

	// FindByIDForTenant finds a purchase by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ThreadPurchase, error)

	// FindAllForTenant finds all purchases for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ThreadPurchase, error)

	// Save creates or updates a purchase
	Save(ctx context.Context, purchase *ThreadPurchase) error

	// DeleteForTenant deletes a purchase within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts purchases for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// GeneratePurchaseNumber generates the next purchase number for a tenant
	GeneratePurchaseNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
