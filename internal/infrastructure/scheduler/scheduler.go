// Package scheduler re-exports the catalog snapshot on a fixed interval so
// offline tills pick up price changes without a manual sync.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobStatus represents the status of a sync job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// Job is one snapshot export attempt, retried on failure
type Job struct {
	ID          uuid.UUID
	Status      JobStatus
	Error       string
	Count       int
	StartedAt   *time.Time
	CompletedAt *time.Time
	RetryCount  int
	MaxRetries  int
}

// NewJob creates a pending job
func NewJob(maxRetries int) *Job {
	return &Job{
		ID:         uuid.New(),
		Status:     JobStatusPending,
		MaxRetries: maxRetries,
	}
}

// Start marks the job as running
func (j *Job) Start(now time.Time) {
	j.Status = JobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete(now time.Time, count int) {
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
	j.Count = count
}

// Fail marks the job as failed
func (j *Job) Fail(now time.Time, err string) {
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry returns true if the job should be retried
func (j *Job) ShouldRetry() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// SnapshotSyncer exports the catalog snapshot and reports the product count
type SnapshotSyncer interface {
	SyncSnapshot(ctx context.Context) (int, error)
}

// Config holds scheduler configuration
type Config struct {
	Interval      time.Duration
	JobTimeout    time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	// RunOnStart exports once immediately instead of waiting a full interval
	RunOnStart bool
}

// DefaultConfig returns the scheduler defaults for interval
func DefaultConfig(interval time.Duration) Config {
	return Config{
		Interval:      interval,
		JobTimeout:    2 * time.Minute,
		RetryAttempts: 3,
		RetryDelay:    30 * time.Second,
		RunOnStart:    true,
	}
}

// Scheduler runs snapshot sync jobs on a ticker with a single worker.
// At most one job is queued while another runs.
type Scheduler struct {
	config Config
	syncer SnapshotSyncer
	logger *zap.Logger
	now    func() time.Time

	jobs      chan *Job
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	last      *Job
}

// New creates a scheduler; it does nothing until Start
func New(config Config, syncer SnapshotSyncer, logger *zap.Logger) (*Scheduler, error) {
	if config.Interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	if config.JobTimeout <= 0 || config.RetryAttempts < 0 || config.RetryDelay < 0 {
		return nil, fmt.Errorf("%w: timeout, retries and delay", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		config: config,
		syncer: syncer,
		logger: logger,
		now:    time.Now,
		jobs:   make(chan *Job, 1),
	}, nil
}

// Start launches the ticker and the worker
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	s.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(2)
	go s.worker(ctx)
	go s.tick(ctx)

	s.logger.Info("Snapshot scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)
	return nil
}

// Stop cancels pending work and waits for the running job, at most until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.cancel()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Snapshot scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Snapshot scheduler stop timed out")
		return ctx.Err()
	}
}

// Trigger queues an immediate sync
func (s *Scheduler) Trigger() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return ErrSchedulerNotRunning
	}
	return s.submit(NewJob(s.config.RetryAttempts))
}

// LastJob returns a copy of the most recently finished job, or nil
func (s *Scheduler) LastJob() *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	job := *s.last
	return &job
}

// submit must be called with mu held
func (s *Scheduler) submit(job *Job) error {
	select {
	case s.jobs <- job:
		s.logger.Debug("Snapshot sync queued", zap.String("job_id", job.ID.String()))
		return nil
	default:
		return ErrJobQueueFull
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	defer s.wg.Done()

	if s.config.RunOnStart {
		s.enqueue()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enqueue()
		}
	}
}

func (s *Scheduler) enqueue() {
	if err := s.Trigger(); err != nil && err != ErrSchedulerNotRunning {
		s.logger.Debug("Skipping scheduled sync", zap.Error(err))
	}
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.jobs:
			s.runWithRetry(ctx, job)
		}
	}
}

// runWithRetry retries a failed job after RetryDelay until MaxRetries
func (s *Scheduler) runWithRetry(ctx context.Context, job *Job) {
	for {
		s.processJob(ctx, job)
		if !job.ShouldRetry() {
			break
		}

		job.RetryCount++
		s.logger.Info("Snapshot sync scheduled for retry",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount),
			zap.Int("max_retries", job.MaxRetries),
		)

		timer := time.NewTimer(s.config.RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.record(job)
			return
		case <-timer.C:
		}
	}
	s.record(job)
}

func (s *Scheduler) processJob(ctx context.Context, job *Job) {
	job.Start(s.now())

	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	count, err := s.syncer.SyncSnapshot(jobCtx)
	if err != nil {
		job.Fail(s.now(), err.Error())
		s.logger.Error("Snapshot sync failed",
			zap.String("job_id", job.ID.String()),
			zap.Int("attempt", job.RetryCount+1),
			zap.Error(err),
		)
		return
	}

	job.Complete(s.now(), count)
	s.logger.Info("Snapshot sync completed",
		zap.String("job_id", job.ID.String()),
		zap.Int("count", count),
	)
}

func (s *Scheduler) record(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = job
}
