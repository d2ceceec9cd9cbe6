package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"brandtracker-api/pkg/log"

	"github.com/robfig/cron/v3"
)

// Job is a single unit of scheduled work. The scheduler never runs two
// invocations of the same job concurrently: an overrunning sweep causes the
// next tick to be skipped rather than stacked.
type Job func(ctx context.Context)

// Scheduler drives a job on a fixed interval, with one delayed immediate run
// shortly after Start.
type Scheduler struct {
	logger       log.Logger
	cron         *cron.Cron
	name         string
	interval     time.Duration
	initialDelay time.Duration
	job          Job

	mu      sync.Mutex // held while the job runs, TryLock gives single-flight
	started bool
	timer   *time.Timer
}

// New creates a scheduler for the given job.
func New(logger log.Logger, name string, interval, initialDelay time.Duration, job Job) *Scheduler {
	return &Scheduler{
		logger:       logger,
		cron:         cron.New(),
		name:         name,
		interval:     interval,
		initialDelay: initialDelay,
		job:          job,
	}
}

// Start registers the cron entry and schedules the initial run.
func (s *Scheduler) Start() error {
	if s.started {
		return fmt.Errorf("scheduler %s already started", s.name)
	}

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", s.name, err)
	}

	s.timer = time.AfterFunc(s.initialDelay, s.runOnce)
	s.cron.Start()
	s.started = true

	s.logger.Infof(context.Background(), "pkg.scheduler: job %s scheduled every %s (first run in %s)",
		s.name, s.interval, s.initialDelay)
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
	<-s.cron.Stop().Done()

	// Block until any in-flight job releases the lock.
	s.mu.Lock()
	s.mu.Unlock() //nolint:staticcheck // lock/unlock pair used as a barrier
}

// RunNow executes the job synchronously, respecting the single-flight guard.
// It reports whether the job actually ran.
func (s *Scheduler) RunNow(ctx context.Context) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()

	s.job(ctx)
	return true
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()

	if !s.mu.TryLock() {
		s.logger.Warnf(ctx, "pkg.scheduler: job %s still running, skipping tick", s.name)
		return
	}
	defer s.mu.Unlock()

	start := time.Now()
	s.job(ctx)
	s.logger.Infof(ctx, "pkg.scheduler: job %s completed in %s", s.name, time.Since(start))
}
