package shared

import (
	"context"

	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/inventory"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/procurement"
	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or
// roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories within a
// transaction. All repositories returned share the same underlying
// database transaction.
//
// Document receipt, production completion, sale creation, and payment
// recording each update several aggregates (the document, stock levels,
// the movement journal, the ledger, and a party balance). Those writes
// must land together, so the services run them through this scope.
type TransactionalRepositories interface {
	VendorRepo() partner.VendorRepository
	CustomerRepo() partner.CustomerRepository
	ThreadPurchaseRepo() procurement.ThreadPurchaseRepository
	DyeingRepo() production.DyeingProcessRepository
	FabricRepo() production.FabricProductionRepository
	InventoryItemRepo() inventory.InventoryItemRepository
	MovementRepo() inventory.InventoryMovementRepository
	LedgerRepo() finance.LedgerEntryRepository
	PaymentRepo() finance.PaymentRepository
	SaleRepo() sales.SaleRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	Vendors         partner.VendorRepository
	Customers       partner.CustomerRepository
	ThreadPurchases procurement.ThreadPurchaseRepository
	Dyeings         production.DyeingProcessRepository
	Fabrics         production.FabricProductionRepository
	InventoryItems  inventory.InventoryItemRepository
	Movements       inventory.InventoryMovementRepository
	Ledgers         finance.LedgerEntryRepository
	Payments        finance.PaymentRepository
	Sales           sales.SaleRepository
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) VendorRepo() partner.VendorRepository                { return s.Vendors }
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository            { return s.Customers }
func (s *NoOpTransactionScope) ThreadPurchaseRepo() procurement.ThreadPurchaseRepository {
	return s.ThreadPurchases
}
func (s *NoOpTransactionScope) DyeingRepo() production.DyeingProcessRepository  { return s.Dyeings }
func (s *NoOpTransactionScope) FabricRepo() production.FabricProductionRepository { return s.Fabrics }
func (s *NoOpTransactionScope) InventoryItemRepo() inventory.InventoryItemRepository {
	return s.InventoryItems
}
func (s *NoOpTransactionScope) MovementRepo() inventory.InventoryMovementRepository {
	return s.Movements
}
func (s *NoOpTransactionScope) LedgerRepo() finance.LedgerEntryRepository { return s.Ledgers }
func (s *NoOpTransactionScope) PaymentRepo() finance.PaymentRepository    { return s.Payments }
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository            { return s.Sales }

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
