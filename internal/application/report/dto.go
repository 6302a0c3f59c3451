package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/report"
)

// StockValueResponse is one row of the stock-value breakdown
type StockValueResponse struct {
	ItemType      string          `json:"item_type"`
	ItemCount     int64           `json:"item_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// DashboardResponse is the tenant-wide summary served at /api/reports/dashboard
type DashboardResponse struct {
	GeneratedAt          time.Time            `json:"generated_at"`
	StockValues          []StockValueResponse `json:"stock_values"`
	DyeingInProcess      int64                `json:"dyeing_in_process"`
	FabricInProcess      int64                `json:"fabric_in_process"`
	TotalPayable         decimal.Decimal      `json:"total_payable"`
	TotalReceivable      decimal.Decimal      `json:"total_receivable"`
	OverdueCount         int64                `json:"overdue_count"`
	MonthToDatePurchases decimal.Decimal      `json:"month_to_date_purchases"`
	MonthToDateSales     decimal.Decimal      `json:"month_to_date_sales"`
}

func toDashboardResponse(
	generatedAt time.Time,
	stock []report.StockValue,
	production *report.ProductionCounts,
	outstanding *report.OutstandingBalances,
	monthToDate *report.PeriodTotals,
) *DashboardResponse {
	values := make([]StockValueResponse, len(stock))
	for i, row := range stock {
		values[i] = StockValueResponse{
			ItemType:      row.ItemType,
			ItemCount:     row.ItemCount,
			TotalQuantity: row.TotalQuantity,
			TotalValue:    row.TotalValue,
		}
	}
	return &DashboardResponse{
		GeneratedAt:          generatedAt,
		StockValues:          values,
		DyeingInProcess:      production.DyeingInProcess,
		FabricInProcess:      production.FabricInProcess,
		TotalPayable:         outstanding.TotalPayable,
		TotalReceivable:      outstanding.TotalReceivable,
		OverdueCount:         outstanding.OverdueCount,
		MonthToDatePurchases: monthToDate.PurchaseTotal,
		MonthToDateSales:     monthToDate.SalesTotal,
	}
}
