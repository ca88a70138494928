package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls int64
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	atomic.AddInt64(&r.calls, 1)
	return nil
}

func (r *countingRefresher) count() int64 {
	return atomic.LoadInt64(&r.calls)
}

func TestNewService(t *testing.T) {
	svc := NewService(&countingRefresher{}, time.Minute)

	assert.NotNil(t, svc)
	assert.False(t, svc.Running())
}

func TestService_StartAndStop(t *testing.T) {
	refresher := &countingRefresher{}
	svc := NewService(refresher, 10*time.Millisecond)

	svc.Start()
	assert.True(t, svc.Running())

	// Let a few ticks fire
	time.Sleep(60 * time.Millisecond)
	svc.Stop()
	assert.False(t, svc.Running())

	fired := refresher.count()
	require.Greater(t, fired, int64(0))

	// No more ticks after Stop
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, fired, refresher.count())
}

func TestService_StopBeforeStart(t *testing.T) {
	svc := NewService(&countingRefresher{}, time.Minute)

	// Stop without a running schedule must not panic
	svc.Stop()
	assert.False(t, svc.Running())
}

func TestService_StopTwice(t *testing.T) {
	svc := NewService(&countingRefresher{}, time.Minute)

	svc.Start()
	svc.Stop()
	svc.Stop()
	assert.False(t, svc.Running())
}

func TestService_StartReplacesPreviousSchedule(t *testing.T) {
	refresher := &countingRefresher{}
	svc := NewService(refresher, 10*time.Millisecond)

	// Restarting must replace the old schedule, never stack a second one
	svc.Start()
	svc.Start()
	svc.Start()
	assert.True(t, svc.Running())

	time.Sleep(55 * time.Millisecond)
	svc.Stop()

	// With stacked tickers this would be roughly 3x the tick count
	assert.LessOrEqual(t, refresher.count(), int64(8))
}

type failingRefresher struct {
	countingRefresher
}

func (r *failingRefresher) Refresh(ctx context.Context) error {
	r.countingRefresher.Refresh(ctx)
	return context.DeadlineExceeded
}

func TestService_KeepsTickingAfterFailure(t *testing.T) {
	refresher := &failingRefresher{}
	svc := NewService(refresher, 10*time.Millisecond)

	svc.Start()
	time.Sleep(45 * time.Millisecond)
	svc.Stop()

	// Failures are logged, the schedule keeps going
	assert.Greater(t, refresher.count(), int64(1))
}
