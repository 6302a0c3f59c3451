package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTenantProvider struct {
	ids []uuid.UUID
	err error
}

func (f *fakeTenantProvider) ActiveTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	return f.ids, f.err
}

type fakeSweepService struct {
	mu     sync.Mutex
	swept  []uuid.UUID
	failOn uuid.UUID
}

func (f *fakeSweepService) SweepTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tenantID == f.failOn {
		return 0, errors.New("sweep failed")
	}
	f.swept = append(f.swept, tenantID)
	return 2, nil
}

func (f *fakeSweepService) sweptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.swept)
}

func TestOverdueSweeper_RunOnce(t *testing.T) {
	tenants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	svc := &fakeSweepService{}
	sweeper := NewOverdueSweeper(
		DefaultOverdueSweeperConfig(),
		svc,
		&fakeTenantProvider{ids: tenants},
		zap.NewNop(),
	)

	sweeper.RunOnce(context.Background())
	assert.Equal(t, 3, svc.sweptCount())
}

func TestOverdueSweeper_FailingTenantDoesNotStopOthers(t *testing.T) {
	tenants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	svc := &fakeSweepService{failOn: tenants[1]}
	sweeper := NewOverdueSweeper(
		DefaultOverdueSweeperConfig(),
		svc,
		&fakeTenantProvider{ids: tenants},
		zap.NewNop(),
	)

	sweeper.RunOnce(context.Background())
	assert.Equal(t, 2, svc.sweptCount())
}

func TestOverdueSweeper_StartStop(t *testing.T) {
	cfg := OverdueSweeperConfig{Hour: 0, Minute: 0, CheckInterval: 10 * time.Millisecond}
	svc := &fakeSweepService{}
	sweeper := NewOverdueSweeper(cfg, svc, &fakeTenantProvider{ids: []uuid.UUID{uuid.New()}}, zap.NewNop())

	require.NoError(t, sweeper.Start(context.Background()))
	// starting twice is a no-op
	require.NoError(t, sweeper.Start(context.Background()))

	// the scheduled time 00:00 has always passed, so the first tick sweeps
	assert.Eventually(t, func() bool {
		return svc.sweptCount() == 1
	}, time.Second, 10*time.Millisecond)

	// the same day never sweeps twice
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, svc.sweptCount())

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(stopCtx))
	require.NoError(t, sweeper.Stop(stopCtx))
}
