package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/textile/backend/internal/domain/report"
	"github.com/textile/backend/internal/infrastructure/cache"
)

// dashboardTTL bounds how stale a served dashboard can be
const dashboardTTL = 60 * time.Second

// DashboardService computes the tenant summary and caches it per tenant
type DashboardService struct {
	repo   report.DashboardRepository
	cache  cache.Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo report.DashboardRepository, c cache.Cache, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		cache:  c,
		logger: logger,
		now:    time.Now,
	}
}

func dashboardCacheKey(tenantID uuid.UUID) string {
	return "dashboard:" + tenantID.String()
}

// Dashboard returns the tenant summary, served from cache when a fresh copy
// exists. Cache failures degrade to a direct read, never to an error.
func (s *DashboardService) Dashboard(ctx context.Context, tenantID uuid.UUID) (*DashboardResponse, error) {
	key := dashboardCacheKey(tenantID)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
	} else if cached != nil {
		var resp DashboardResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		s.logger.Warn("discarding corrupt dashboard cache entry", zap.String("key", key))
	}

	resp, err := s.compute(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, data, dashboardTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return resp, nil
}

// Invalidate drops the cached summary for a tenant
func (s *DashboardService) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	return s.cache.Delete(ctx, dashboardCacheKey(tenantID))
}

func (s *DashboardService) compute(ctx context.Context, tenantID uuid.UUID) (*DashboardResponse, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stock, err := s.repo.StockValueByType(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query stock values: %w", err)
	}

	production, err := s.repo.ProductionCounts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query production counts: %w", err)
	}

	outstanding, err := s.repo.OutstandingBalances(ctx, tenantID, now)
	if err != nil {
		return nil, fmt.Errorf("query outstanding balances: %w", err)
	}

	monthToDate, err := s.repo.PeriodTotals(ctx, tenantID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("query month-to-date totals: %w", err)
	}

	return toDashboardResponse(now, stock, production, outstanding, monthToDate), nil
}
