package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_RunsDueJobs(t *testing.T) {
	var runs atomic.Int32

	job := Job{
		Name:  "counter",
		Every: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	}

	s := New(20*time.Millisecond, newTestLogger(t), job)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestScheduler_RespectsPerJobInterval(t *testing.T) {
	var fast, slow atomic.Int32

	jobs := []Job{
		{
			Name:  "fast",
			Every: 5 * time.Millisecond,
			Run: func(ctx context.Context) error {
				fast.Add(1)
				return nil
			},
		},
		{
			Name:  "slow",
			Every: time.Hour,
			Run: func(ctx context.Context) error {
				slow.Add(1)
				return nil
			},
		},
	}

	s := New(20*time.Millisecond, newTestLogger(t), jobs...)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, fast.Load(), int32(2))
	assert.Equal(t, int32(0), slow.Load(), "hourly job must not fire in a 90ms run")
}

func TestScheduler_FailingJobDoesNotStopOthers(t *testing.T) {
	var healthy atomic.Int32

	jobs := []Job{
		{
			Name:  "failing",
			Every: 5 * time.Millisecond,
			Run: func(ctx context.Context) error {
				return errors.New("db error")
			},
		},
		{
			Name:  "healthy",
			Every: 5 * time.Millisecond,
			Run: func(ctx context.Context) error {
				healthy.Add(1)
				return nil
			},
		},
	}

	s := New(20*time.Millisecond, newTestLogger(t), jobs...)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, healthy.Load(), int32(2))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s := New(time.Second, newTestLogger(t)) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
