package persistence

import (
	"context"

	"gorm.io/gorm"

	appshared "github.com/textile/backend/internal/application/shared"
	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/procurement"
	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/sales"
)

// GormTransactionScope implements TransactionScope using GORM transactions
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction. Every repository handed
// to fn operates on the same transaction; an error rolls everything back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appshared.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) VendorRepo() partner.VendorRepository {
	return NewGormVendorRepository(r.tx)
}

func (r *gormTransactionalRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormTransactionalRepositories) ThreadPurchaseRepo() procurement.ThreadPurchaseRepository {
	return NewGormThreadPurchaseRepository(r.tx)
}

func (r *gormTransactionalRepositories) DyeingRepo() production.DyeingProcessRepository {
	return NewGormDyeingProcessRepository(r.tx)
}

func (r *gormTransactionalRepositories) FabricRepo() production.FabricProductionRepository {
	return NewGormFabricProductionRepository(r.tx)
}

func (r *gormTransactionalRepositories) InventoryItemRepo() inventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

func (r *gormTransactionalRepositories) MovementRepo() inventory.InventoryMovementRepository {
	return NewGormInventoryMovementRepository(r.tx)
}

func (r *gormTransactionalRepositories) LedgerRepo() finance.LedgerEntryRepository {
	return NewGormLedgerEntryRepository(r.tx)
}

func (r *gormTransactionalRepositories) PaymentRepo() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

func (r *gormTransactionalRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var _ appshared.TransactionScope = (*GormTransactionScope)(nil)
var _ appshared.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
