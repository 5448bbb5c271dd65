package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSyncer struct {
	mu       sync.Mutex
	calls    int
	failures int
	count    int
}

func (f *fakeSyncer) SyncSnapshot(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return 0, errors.New("bucket unavailable")
	}
	return f.count, nil
}

func (f *fakeSyncer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testConfig() Config {
	return Config{
		Interval:      time.Hour,
		JobTimeout:    time.Second,
		RetryAttempts: 2,
		RetryDelay:    10 * time.Millisecond,
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{}, &fakeSyncer{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := testConfig()
	cfg.RetryAttempts = -1
	_, err = New(cfg, &fakeSyncer{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(15 * time.Minute)
	assert.Equal(t, 15*time.Minute, cfg.Interval)
	assert.True(t, cfg.RunOnStart)
	assert.Positive(t, cfg.JobTimeout)
}

func TestJob_Lifecycle(t *testing.T) {
	now := time.Now()
	job := NewJob(1)
	assert.Equal(t, JobStatusPending, job.Status)

	job.Start(now)
	assert.Equal(t, JobStatusRunning, job.Status)

	job.Fail(now, "boom")
	assert.True(t, job.ShouldRetry())

	job.RetryCount = 1
	assert.False(t, job.ShouldRetry())

	job.Start(now)
	job.Complete(now, 4)
	assert.Equal(t, JobStatusSuccess, job.Status)
	assert.Equal(t, 4, job.Count)
	assert.Empty(t, job.Error)
}

func TestScheduler_TriggerRequiresStart(t *testing.T) {
	s, err := New(testConfig(), &fakeSyncer{}, zap.NewNop())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Trigger(), ErrSchedulerNotRunning)
}

func TestScheduler_RunOnStart(t *testing.T) {
	syncer := &fakeSyncer{count: 3}
	cfg := testConfig()
	cfg.RunOnStart = true

	s, err := New(cfg, syncer, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	require.Eventually(t, func() bool { return s.LastJob() != nil }, time.Second, 5*time.Millisecond)
	job := s.LastJob()
	assert.Equal(t, JobStatusSuccess, job.Status)
	assert.Equal(t, 3, job.Count)
	assert.Equal(t, 1, syncer.Calls())
}

func TestScheduler_RetriesFailedSync(t *testing.T) {
	syncer := &fakeSyncer{failures: 2, count: 1}
	s, err := New(testConfig(), syncer, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	require.NoError(t, s.Trigger())
	require.Eventually(t, func() bool { return s.LastJob() != nil }, time.Second, 5*time.Millisecond)

	job := s.LastJob()
	assert.Equal(t, JobStatusSuccess, job.Status)
	assert.Equal(t, 2, job.RetryCount)
	assert.Equal(t, 3, syncer.Calls())
}

func TestScheduler_GivesUpAfterMaxRetries(t *testing.T) {
	syncer := &fakeSyncer{failures: 10}
	s, err := New(testConfig(), syncer, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	require.NoError(t, s.Trigger())
	require.Eventually(t, func() bool { return s.LastJob() != nil }, time.Second, 5*time.Millisecond)

	job := s.LastJob()
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, "bucket unavailable", job.Error)
	assert.Equal(t, 3, syncer.Calls())
}

func TestScheduler_TicksOnInterval(t *testing.T) {
	syncer := &fakeSyncer{}
	cfg := testConfig()
	cfg.Interval = 10 * time.Millisecond

	s, err := New(cfg, syncer, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	require.Eventually(t, func() bool { return syncer.Calls() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	calls := syncer.Calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, syncer.Calls(), "no syncs after Stop")
	assert.ErrorIs(t, s.Trigger(), ErrSchedulerNotRunning)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s, err := New(testConfig(), &fakeSyncer{}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
