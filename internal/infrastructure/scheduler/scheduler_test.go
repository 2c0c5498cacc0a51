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

type fakeSweeper struct {
	mu    sync.Mutex
	calls []time.Time
	fn    func(asOf time.Time) (int, error)
}

func (f *fakeSweeper) SweepOverdue(_ context.Context, asOf time.Time) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, asOf)
	f.mu.Unlock()

	if f.fn != nil {
		return f.fn(asOf)
	}
	return 0, nil
}

func (f *fakeSweeper) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestRun_TicksAndStops(t *testing.T) {
	sw := &fakeSweeper{}
	s := New(zap.NewNop(), 5*time.Millisecond, sw)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sw.callCount() >= 3 },
		time.Second, time.Millisecond, "expected several sweep ticks")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestRun_SweepErrorDoesNotStopTicking(t *testing.T) {
	sw := &fakeSweeper{
		fn: func(time.Time) (int, error) { return 0, errors.New("db down") },
	}
	s := New(zap.NewNop(), 5*time.Millisecond, sw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.Eventually(t, func() bool { return sw.callCount() >= 3 },
		time.Second, time.Millisecond, "ticks must continue after a failing sweep")
}

func TestSweep_PassesUTCNow(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	sw := &fakeSweeper{}
	s := New(zap.NewNop(), time.Minute, sw)
	s.now = func() time.Time { return fixed }

	s.sweep(context.Background())

	require.Equal(t, 1, sw.callCount())
	assert.Equal(t, fixed.UTC(), sw.calls[0])
	assert.Equal(t, time.UTC, sw.calls[0].Location())
}
