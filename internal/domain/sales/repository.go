package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID, with lines preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindByIDForTenant finds a sale by ID within a tenant, with lines preloaded
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)

	// FindAllForTenant finds all sales for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// Save creates or updates a sale and its lines
	Save(ctx context.Context, sale *Sale) error

	// CountForTenant counts sales for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// GenerateInvoiceNumber generates the next invoice number for a tenant
	GenerateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
