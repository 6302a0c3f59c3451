package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/textile/backend/internal/domain/report"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) StockValueByType(ctx context.Context, tenantID uuid.UUID) ([]report.StockValue, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.StockValue), args.Error(1)
}

func (m *MockDashboardRepository) ProductionCounts(ctx context.Context, tenantID uuid.UUID) (*report.ProductionCounts, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ProductionCounts), args.Error(1)
}

func (m *MockDashboardRepository) OutstandingBalances(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (*report.OutstandingBalances, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.OutstandingBalances), args.Error(1)
}

func (m *MockDashboardRepository) PeriodTotals(ctx context.Context, tenantID uuid.UUID, since time.Time) (*report.PeriodTotals, error) {
	args := m.Called(ctx, tenantID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.PeriodTotals), args.Error(1)
}
