package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/finance"
	"github.com/textile/backend/internal/domain/procurement"
	"github.com/textile/backend/internal/domain/production"
	"github.com/textile/backend/internal/domain/report"
	"github.com/textile/backend/internal/domain/sales"
)

// GormDashboardRepository implements the dashboard read queries with
// aggregate SQL across contexts. Reads only; never joins a transaction.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// StockValueByType returns quantity and value totals per inventory item type
func (r *GormDashboardRepository) StockValueByType(ctx context.Context, tenantID uuid.UUID) ([]report.StockValue, error) {
	var rows []report.StockValue
	if err := r.db.WithContext(ctx).
		Table("inventory_items").
		Select("type AS item_type, COUNT(*) AS item_count, SUM(quantity) AS total_quantity, SUM(quantity * unit_cost) AS total_value").
		Where("tenant_id = ?", tenantID).
		Group("type").
		Order("type ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductionCounts returns how many dyeing and fabric batches are in process
func (r *GormDashboardRepository) ProductionCounts(ctx context.Context, tenantID uuid.UUID) (*report.ProductionCounts, error) {
	counts := &report.ProductionCounts{}

	if err := r.db.WithContext(ctx).
		Table("dyeing_processes").
		Where("tenant_id = ? AND status = ?", tenantID, production.StatusInProcess).
		Count(&counts.DyeingInProcess).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Table("fabric_productions").
		Where("tenant_id = ? AND status = ?", tenantID, production.StatusInProcess).
		Count(&counts.FabricInProcess).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

// OutstandingBalances returns open payable/receivable totals and the number
// of unsettled entries past their due date as of asOf
func (r *GormDashboardRepository) OutstandingBalances(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (*report.OutstandingBalances, error) {
	balances := &report.OutstandingBalances{
		TotalPayable:    decimal.Zero,
		TotalReceivable: decimal.Zero,
	}

	openStatuses := []finance.LedgerStatus{
		finance.LedgerStatusPending,
		finance.LedgerStatusPartial,
		finance.LedgerStatusOverdue,
	}

	var sums []struct {
		Direction finance.LedgerDirection
		Total     decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Table("ledger_entries").
		Select("direction, SUM(remaining_amount) AS total").
		Where("tenant_id = ? AND status IN ?", tenantID, openStatuses).
		Group("direction").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	for _, row := range sums {
		switch row.Direction {
		case finance.LedgerDirectionPayable:
			balances.TotalPayable = row.Total
		case finance.LedgerDirectionReceivable:
			balances.TotalReceivable = row.Total
		}
	}

	if err := r.db.WithContext(ctx).
		Table("ledger_entries").
		Where("tenant_id = ? AND status IN ? AND due_date IS NOT NULL AND due_date < ?",
			tenantID, openStatuses, asOf).
		Count(&balances.OverdueCount).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

// PeriodTotals returns purchase and sales amounts dated on or after since,
// cancelled documents excluded
func (r *GormDashboardRepository) PeriodTotals(ctx context.Context, tenantID uuid.UUID, since time.Time) (*report.PeriodTotals, error) {
	totals := &report.PeriodTotals{
		PurchaseTotal: decimal.Zero,
		SalesTotal:    decimal.Zero,
	}

	var purchaseTotal decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Table("thread_purchases").
		Select("SUM(total_amount)").
		Where("tenant_id = ? AND status <> ? AND purchase_date >= ?",
			tenantID, procurement.ThreadPurchaseStatusCancelled, since).
		Scan(&purchaseTotal).Error; err != nil {
		return nil, err
	}
	if purchaseTotal.Valid {
		totals.PurchaseTotal = purchaseTotal.Decimal
	}

	var salesTotal decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Table("sales").
		Select("SUM(total_amount)").
		Where("tenant_id = ? AND status <> ? AND sale_date >= ?",
			tenantID, sales.SaleStatusCancelled, since).
		Scan(&salesTotal).Error; err != nil {
		return nil, err
	}
	if salesTotal.Valid {
		totals.SalesTotal = salesTotal.Decimal
	}

	return totals, nil
}

var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
