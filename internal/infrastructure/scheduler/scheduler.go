package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Sweeper interface {
	SweepOverdue(ctx context.Context, asOf time.Time) (int, error)
}

// DeletionScheduler drives the recurring hard-delete sweep. It runs the
// sweep synchronously on its own goroutine, so a slow sweep makes the ticker
// drop ticks instead of overlapping executions.
type DeletionScheduler struct {
	log      *zap.Logger
	interval time.Duration
	sweeper  Sweeper
	now      func() time.Time
}

func New(logger *zap.Logger, interval time.Duration, sweeper Sweeper) *DeletionScheduler {
	return &DeletionScheduler{
		log:      logger,
		interval: interval,
		sweeper:  sweeper,
		now:      time.Now,
	}
}

func (s *DeletionScheduler) Run(ctx context.Context) {
	s.log.Info("starting deletion scheduler", zap.Duration("interval", s.interval))

	defer func() {
		s.log.Info("deletion scheduler gracefully stopped")
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// sweep never propagates an error: a failed tick is logged and the next tick
// retries whatever is still overdue.
func (s *DeletionScheduler) sweep(ctx context.Context) {
	asOf := s.now().UTC()

	deleted, err := s.sweeper.SweepOverdue(ctx, asOf)
	if err != nil {
		// alert
		s.log.Error("deletion sweep error", zap.Error(err))
	}
	if deleted > 0 {
		s.log.Info("deletion sweep removed employees", zap.Int("count", deleted))
	}
}
