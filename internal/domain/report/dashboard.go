package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockValue is a read model for inventory value grouped by item type
type StockValue struct {
	ItemType      string          `json:"item_type"`
	ItemCount     int64           `json:"item_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// ProductionCounts holds the number of batches still moving through production
type ProductionCounts struct {
	DyeingInProcess int64 `json:"dyeing_in_process"`
	FabricInProcess int64 `json:"fabric_in_process"`
}

// OutstandingBalances aggregates open ledger amounts by direction
type OutstandingBalances struct {
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	OverdueCount    int64           `json:"overdue_count"`
}

// PeriodTotals holds purchase and sales totals accumulated since a cutoff date
type PeriodTotals struct {
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
	SalesTotal    decimal.Decimal `json:"sales_total"`
}

// DashboardRepository defines the read-side queries behind the dashboard.
// Implementations query across contexts directly; none of these reads
// participate in a business transaction.
type DashboardRepository interface {
	// StockValueByType returns quantity and value totals per inventory item type
	StockValueByType(ctx context.Context, tenantID uuid.UUID) ([]StockValue, error)

	// ProductionCounts returns how many dyeing and fabric batches are in process
	ProductionCounts(ctx context.Context, tenantID uuid.UUID) (*ProductionCounts, error)

	// OutstandingBalances returns open payable/receivable totals and, relative
	// to asOf, the number of unsettled entries past their due date
	OutstandingBalances(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (*OutstandingBalances, error)

	// PeriodTotals returns purchase and sales amounts dated on or after since,
	// excluding cancelled documents
	PeriodTotals(ctx context.Context, tenantID uuid.UUID, since time.Time) (*PeriodTotals, error)
}
