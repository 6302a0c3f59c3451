package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenantProvider lists tenants for background jobs. Tenants are derived
// from the users table since every tenant has at least one user.
type GormTenantProvider struct {
	db *gorm.DB
}

func NewGormTenantProvider(db *gorm.DB) *GormTenantProvider {
	return &GormTenantProvider{db: db}
}

// ActiveTenantIDs returns the distinct tenant IDs known to the system
func (p *GormTenantProvider) ActiveTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := p.db.WithContext(ctx).
		Table("users").
		Distinct("tenant_id").
		Pluck("tenant_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
