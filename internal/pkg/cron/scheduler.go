package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is the body of a scheduled job. The context is cancelled when the
// scheduler stops.
type JobFunc func(ctx context.Context) error

type Job struct {
	Name     string
	Interval time.Duration
	Run      JobFunc
}

// Scheduler runs registered jobs on fixed intervals, each in its own
// goroutine. Jobs also fire once immediately on Start.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, run JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Run:      run,
	})
	slog.Info("Cron: job registered", "job", name, "interval", interval.String())
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron: scheduler started", "jobs", len(s.jobs))
}

// Stop cancels every job context and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron: scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.executeJob(job)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()

	if err := job.Run(s.ctx); err != nil {
		slog.Error("Cron: job failed", "job", job.Name, "error", err, "duration", time.Since(start).String())
		return
	}
	slog.Debug("Cron: job completed", "job", job.Name, "duration", time.Since(start).String())
}

// RunOnce executes every registered job a single time with the given
// context. Used by tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Run(ctx); err != nil {
			slog.Error("Cron: job failed", "job", job.Name, "error", err)
		}
	}
}
