package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Job is a named reconciliation pass dispatched at a fixed interval.
type Job struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

// Scheduler drives all jobs from a single goroutine: the same job can
// never run two overlapping instances, and a failing pass never
// suppresses the next scheduled run.
type Scheduler struct {
	jobs     []Job
	baseTick time.Duration
	logger   logger.Logger
}

func New(baseTick time.Duration, logger logger.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:     jobs,
		baseTick: baseTick,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.baseTick)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("base_tick", s.baseTick),
		logger.Int("jobs", len(s.jobs)),
	)

	next := make([]time.Time, len(s.jobs))
	now := time.Now()
	for i, job := range s.jobs {
		next[i] = now.Add(job.Every)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx, next)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, next []time.Time) {
	now := time.Now()
	for i, job := range s.jobs {
		if now.Before(next[i]) {
			continue
		}
		next[i] = now.Add(job.Every)

		if err := job.Run(ctx); err != nil {
			s.logger.Error("job pass failed",
				logger.String("job", job.Name),
				logger.String("error", err.Error()),
			)
		}
	}
}
