// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TenantProvider lists the tenants to run scheduled jobs for
type TenantProvider interface {
	ActiveTenantIDs(ctx context.Context) ([]uuid.UUID, error)
}

// OverdueSweepService marks open ledger entries past their due date
type OverdueSweepService interface {
	SweepTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
}

// OverdueSweeperConfig holds sweeper scheduling configuration
type OverdueSweeperConfig struct {
	// Daily run time, 24h clock
	Hour   int
	Minute int

	// CheckInterval is how often the loop checks whether it is time to run
	CheckInterval time.Duration
}

// DefaultOverdueSweeperConfig runs the sweep at 1am, checking every minute
func DefaultOverdueSweeperConfig() OverdueSweeperConfig {
	return OverdueSweeperConfig{
		Hour:          1,
		Minute:        0,
		CheckInterval: time.Minute,
	}
}

// OverdueSweeper advances PENDING and PARTIAL ledger entries past their due
// date to OVERDUE, once per day per tenant.
type OverdueSweeper struct {
	config         OverdueSweeperConfig
	sweepService   OverdueSweepService
	tenantProvider TenantProvider
	logger         *zap.Logger

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunDate string
}

// NewOverdueSweeper creates an overdue sweeper
func NewOverdueSweeper(
	config OverdueSweeperConfig,
	sweepService OverdueSweepService,
	tenantProvider TenantProvider,
	logger *zap.Logger,
) *OverdueSweeper {
	if config.CheckInterval <= 0 {
		config.CheckInterval = time.Minute
	}
	return &OverdueSweeper{
		config:         config,
		sweepService:   sweepService,
		tenantProvider: tenantProvider,
		logger:         logger,
	}
}

// Start begins the scheduling loop
func (s *OverdueSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("overdue sweeper started",
		zap.Int("hour", s.config.Hour),
		zap.Int("minute", s.config.Minute),
		zap.Duration("check_interval", s.config.CheckInterval),
	)
	return nil
}

// Stop terminates the loop and waits for an in-flight sweep to finish
func (s *OverdueSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("overdue sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *OverdueSweeper) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkAndRun(ctx)
		}
	}
}

func (s *OverdueSweeper) checkAndRun(ctx context.Context) {
	now := time.Now()
	currentDate := now.Format("2006-01-02")

	s.mu.Lock()
	alreadyRan := s.lastRunDate == currentDate
	s.mu.Unlock()
	if alreadyRan {
		return
	}

	scheduled := time.Date(now.Year(), now.Month(), now.Day(), s.config.Hour, s.config.Minute, 0, 0, now.Location())
	if now.Before(scheduled) {
		return
	}

	s.mu.Lock()
	s.lastRunDate = currentDate
	s.mu.Unlock()

	s.RunOnce(ctx)
}

// RunOnce sweeps every active tenant immediately. A failing tenant is logged
// and does not stop the others.
func (s *OverdueSweeper) RunOnce(ctx context.Context) {
	tenantIDs, err := s.tenantProvider.ActiveTenantIDs(ctx)
	if err != nil {
		s.logger.Error("overdue sweep: failed to list tenants", zap.Error(err))
		return
	}

	var total int
	for _, tenantID := range tenantIDs {
		n, err := s.sweepService.SweepTenant(ctx, tenantID)
		if err != nil {
			s.logger.Error("overdue sweep failed for tenant",
				zap.String("tenant_id", tenantID.String()),
				zap.Error(err))
			continue
		}
		total += n
	}

	s.logger.Info("overdue sweep finished",
		zap.Int("tenants", len(tenantIDs)),
		zap.Int("entries_marked", total))
}
