package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"mysupervisor/domain"
	"mysupervisor/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedulerFixture struct {
	registry  *FleetRegistry
	clock     *manualClock
	counts    *mock.CountSourceMock
	metrics   *mock.FleetMetricsMock
	scheduler *AggregationScheduler
}

func newSchedulerFixture(t *testing.T, counts *mock.CountSourceMock, interval, queryTimeout time.Duration) *schedulerFixture {
	t.Helper()
	registry, clock, _ := newTestRegistry(t)
	metrics := &mock.FleetMetricsMock{}
	logger := log.NewNopLogger()
	policy := NewRestartPolicy(false, nil, registry, metrics, logger)
	sweeper := NewStalenessSweeper(registry, policy, clock, 5*time.Minute, metrics, logger)
	return &schedulerFixture{
		registry:  registry,
		clock:     clock,
		counts:    counts,
		metrics:   metrics,
		scheduler: NewAggregationScheduler(registry, counts, sweeper, clock, interval, queryTimeout, metrics, logger),
	}
}

func fixedCounts(calendars, announcements int) *mock.CountSourceMock {
	return &mock.CountSourceMock{
		CountCalendarsFunc:     func(context.Context) (int, error) { return calendars, nil },
		CountAnnouncementsFunc: func(context.Context) (int, error) { return announcements, nil },
	}
}

func TestNewAggregationScheduler_Panics(t *testing.T) {
	f := newSchedulerFixture(t, fixedCounts(0, 0), time.Minute, time.Second)
	sweeper := f.scheduler.sweeper

	assert.PanicsWithValue(t, "service.aggregation_scheduler.go: interval must be positive", func() {
		NewAggregationScheduler(f.registry, f.counts, sweeper, f.clock, 0, time.Second, f.metrics, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.aggregation_scheduler.go: queryTimeout must be positive", func() {
		NewAggregationScheduler(f.registry, f.counts, sweeper, f.clock, time.Minute, 0, f.metrics, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.aggregation_scheduler.go: counts is required", func() {
		NewAggregationScheduler(f.registry, nil, sweeper, f.clock, time.Minute, time.Second, f.metrics, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.aggregation_scheduler.go: sweeper is required", func() {
		NewAggregationScheduler(f.registry, f.counts, nil, f.clock, time.Minute, time.Second, f.metrics, log.NewNopLogger())
	})
}

func TestAggregationScheduler_RunOnce_UpdatesCountersAndSelf(t *testing.T) {
	f := newSchedulerFixture(t, fixedCounts(7, 3), time.Minute, time.Second)
	f.clock.Advance(time.Minute)

	require.True(t, f.scheduler.RunOnce(context.Background()))

	status := f.registry.Snapshot()
	assert.Equal(t, 7, status.TotalCalendars)
	assert.Equal(t, 3, status.TotalAnnouncements)
	assert.Equal(t, registryStart.Add(time.Minute), status.Self.LastHeartbeat)
	assert.Equal(t, time.Minute, status.Self.Uptime)

	require.Len(t, f.metrics.ObserveStatusCalls(), 1)
	assert.Equal(t, status, f.metrics.ObserveStatusCalls()[0].Status)
	assert.Len(t, f.counts.CountCalendarsCalls(), 1)
	assert.Len(t, f.counts.CountAnnouncementsCalls(), 1)
}

// Counter query fails at tick N; the snapshot keeps the tick N-1 value.
func TestAggregationScheduler_RunOnce_FailedQueryKeepsLastKnownValue(t *testing.T) {
	var tick atomic.Int32
	counts := &mock.CountSourceMock{
		CountCalendarsFunc: func(context.Context) (int, error) {
			if tick.Load() == 2 {
				return 0, assert.AnError
			}
			return 10 * int(tick.Load()), nil
		},
		CountAnnouncementsFunc: func(context.Context) (int, error) {
			return 100 * int(tick.Load()), nil
		},
	}
	f := newSchedulerFixture(t, counts, time.Minute, time.Second)

	tick.Store(1)
	require.True(t, f.scheduler.RunOnce(context.Background()))
	tick.Store(2)
	require.True(t, f.scheduler.RunOnce(context.Background()))

	status := f.registry.Snapshot()
	assert.Equal(t, 10, status.TotalCalendars)
	assert.Equal(t, 200, status.TotalAnnouncements)
	require.Len(t, f.metrics.IncCountQueryFailureCalls(), 1)
	assert.Equal(t, "calendars", f.metrics.IncCountQueryFailureCalls()[0].Query)

	tick.Store(3)
	require.True(t, f.scheduler.RunOnce(context.Background()))
	assert.Equal(t, 30, f.registry.Snapshot().TotalCalendars)
}

func TestAggregationScheduler_RunOnce_QueryTimeout(t *testing.T) {
	counts := &mock.CountSourceMock{
		CountCalendarsFunc: func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		CountAnnouncementsFunc: func(context.Context) (int, error) { return 4, nil },
	}
	f := newSchedulerFixture(t, counts, time.Minute, 20*time.Millisecond)

	require.True(t, f.scheduler.RunOnce(context.Background()))
	assert.Equal(t, 4, f.registry.Snapshot().TotalAnnouncements)
	require.Len(t, f.metrics.IncCountQueryFailureCalls(), 1)
}

func TestAggregationScheduler_RunOnce_RecoversFromPanickingQuery(t *testing.T) {
	counts := &mock.CountSourceMock{
		CountCalendarsFunc:     func(context.Context) (int, error) { panic("driver bug") },
		CountAnnouncementsFunc: func(context.Context) (int, error) { return 2, nil },
	}
	f := newSchedulerFixture(t, counts, time.Minute, time.Second)

	assert.NotPanics(t, func() {
		require.True(t, f.scheduler.RunOnce(context.Background()))
	})
	assert.Equal(t, 2, f.registry.Snapshot().TotalAnnouncements)
	assert.Len(t, f.metrics.IncCountQueryFailureCalls(), 1)
}

func TestAggregationScheduler_RunOnce_SweepsStaleInstances(t *testing.T) {
	f := newSchedulerFixture(t, fixedCounts(0, 0), time.Minute, time.Second)
	require.NoError(t, f.registry.ReportBotShard(shard(0, "a", registryStart)))

	f.clock.Advance(6 * time.Minute)
	require.True(t, f.scheduler.RunOnce(context.Background()))

	assert.Empty(t, f.registry.Snapshot().BotShards)
	require.Len(t, f.metrics.IncEvictedCalls(), 1)
	assert.Equal(t, domain.ClassBotShard, f.metrics.IncEvictedCalls()[0].Class)
}

func TestAggregationScheduler_RunOnce_SkipsWhenInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	counts := fixedCounts(1, 1)
	counts.CountCalendarsFunc = func(context.Context) (int, error) {
		close(entered)
		<-release
		return 1, nil
	}
	f := newSchedulerFixture(t, counts, time.Minute, time.Minute)

	first := make(chan bool)
	go func() { first <- f.scheduler.RunOnce(context.Background()) }()
	<-entered

	assert.False(t, f.scheduler.RunOnce(context.Background()))
	assert.Len(t, f.metrics.IncAggregationSkippedCalls(), 1)

	close(release)
	assert.True(t, <-first)
	assert.Len(t, f.counts.CountCalendarsCalls(), 1)
	assert.Len(t, f.counts.CountAnnouncementsCalls(), 1)
}

func TestAggregationScheduler_StartStop(t *testing.T) {
	f := newSchedulerFixture(t, fixedCounts(5, 6), 10*time.Millisecond, time.Second)

	f.scheduler.Start(context.Background())
	f.scheduler.Start(context.Background())
	assert.Eventually(t, func() bool {
		return len(f.counts.CountCalendarsCalls()) >= 2
	}, time.Second, 5*time.Millisecond)
	f.scheduler.Stop()

	calls := len(f.counts.CountCalendarsCalls())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, len(f.counts.CountCalendarsCalls()))
	assert.Equal(t, 5, f.registry.Snapshot().TotalCalendars)
}

func TestAggregationScheduler_Stop_WaitsForInFlightCycle(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	counts := fixedCounts(1, 1)
	counts.CountCalendarsFunc = func(ctx context.Context) (int, error) {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
		return 9, ctx.Err()
	}
	f := newSchedulerFixture(t, counts, 10*time.Millisecond, time.Minute)

	f.scheduler.Start(context.Background())
	<-entered

	stopped := make(chan struct{})
	go func() {
		f.scheduler.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a cycle was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the cycle finished")
	}
	assert.Equal(t, 9, f.registry.Snapshot().TotalCalendars)
}

func TestAggregationScheduler_Stop_WithoutStart(t *testing.T) {
	f := newSchedulerFixture(t, fixedCounts(0, 0), time.Minute, time.Second)
	assert.NotPanics(t, f.scheduler.Stop)
}
