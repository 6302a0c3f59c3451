package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// UserRepository defines the persistence interface for users
type UserRepository interface {
	shared.TenantRepository[User]

	// FindByUsername finds a user by username within a tenant.
	// Returns nil without error when no user exists.
	FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*User, error)

	// ExistsByUsername checks whether a username is already taken within a tenant
	ExistsByUsername(ctx context.Context, tenantID uuid.UUID, username string) (bool, error)
}
