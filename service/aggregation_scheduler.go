package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mysupervisor/helpers"
	"mysupervisor/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	eventAggregationSkipped = "aggregation_skipped"
	eventCountQueryFailed   = "count_query_failed"

	queryCalendars     = "calendars"
	queryAnnouncements = "announcements"
)

// AggregationScheduler periodically refreshes the fleet-wide counters, the supervisor's own record
// and runs the staleness sweep. At most one cycle is in flight; a tick that finds a cycle running is skipped.
type AggregationScheduler struct {
	registry     interfaces.FleetRegistry
	counts       interfaces.CountSource
	sweeper      *StalenessSweeper
	clock        interfaces.TimeProvider
	interval     time.Duration
	queryTimeout time.Duration
	metrics      interfaces.FleetMetrics
	logger       log.Logger

	inFlight atomic.Bool
	cycles   sync.WaitGroup

	mu       sync.Mutex
	cancel   context.CancelFunc
	loopDone chan struct{}
}

// NewAggregationScheduler creates a stopped scheduler. Panics on nil dependencies or non-positive durations.
func NewAggregationScheduler(
	registry interfaces.FleetRegistry,
	counts interfaces.CountSource,
	sweeper *StalenessSweeper,
	clock interfaces.TimeProvider,
	interval time.Duration,
	queryTimeout time.Duration,
	metrics interfaces.FleetMetrics,
	logger log.Logger,
) *AggregationScheduler {
	if interval <= 0 {
		panic("service.aggregation_scheduler.go: interval must be positive")
	}
	if queryTimeout <= 0 {
		panic("service.aggregation_scheduler.go: queryTimeout must be positive")
	}
	return &AggregationScheduler{
		registry:     helpers.NilPanic(registry, "service.aggregation_scheduler.go: registry is required"),
		counts:       helpers.NilPanic(counts, "service.aggregation_scheduler.go: counts is required"),
		sweeper:      helpers.NilPanic(sweeper, "service.aggregation_scheduler.go: sweeper is required"),
		clock:        helpers.NilPanic(clock, "service.aggregation_scheduler.go: clock is required"),
		interval:     interval,
		queryTimeout: queryTimeout,
		metrics:      helpers.NilPanic(metrics, "service.aggregation_scheduler.go: metrics is required"),
		logger:       log.With(helpers.NilPanic(logger, "service.aggregation_scheduler.go: logger is required"), "component", "AggregationScheduler"),
	}
}

// Start runs a cycle every interval until ctx is done or Stop is called. Calling Start twice is a no-op.
func (s *AggregationScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.loopDone = make(chan struct{})
	go s.loop(ctx, s.loopDone)

	_ = level.Info(s.logger).Log("msg", "Aggregation scheduler started", "interval", s.interval)
}

// Stop ends the ticker loop and waits for the in-flight cycle, if any. A running cycle is never cancelled.
func (s *AggregationScheduler) Stop() {
	s.mu.Lock()
	cancel, loopDone := s.cancel, s.loopDone
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-loopDone
	}
	s.cycles.Wait()

	_ = level.Info(s.logger).Log("msg", "Aggregation scheduler stopped")
}

// RunOnce runs one cycle synchronously. Returns false when a cycle was already in flight and this one was skipped.
func (s *AggregationScheduler) RunOnce(ctx context.Context) bool {
	if !s.acquire() {
		return false
	}
	defer s.inFlight.Store(false)

	s.cycle(ctx)
	return true
}

func (s *AggregationScheduler) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick launches a cycle in the background unless one is still running.
func (s *AggregationScheduler) tick(ctx context.Context) {
	if !s.acquire() {
		return
	}

	s.cycles.Add(1)
	go func() {
		defer s.cycles.Done()
		defer s.inFlight.Store(false)
		s.cycle(context.WithoutCancel(ctx))
	}()
}

func (s *AggregationScheduler) acquire() bool {
	if s.inFlight.CompareAndSwap(false, true) {
		return true
	}
	s.metrics.IncAggregationSkipped()
	_ = level.Debug(s.logger).Log("msg", "Previous aggregation cycle still running, tick skipped", "event", eventAggregationSkipped)
	return false
}

func (s *AggregationScheduler) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			_ = level.Error(s.logger).Log("msg", "Aggregation cycle panicked", "err", fmt.Sprint(r))
		}
	}()

	calendars, announcements := s.queryCounts(ctx)

	s.registry.UpdateSelf(s.clock.Now())
	if calendars != nil {
		s.registry.SetCalendarCount(*calendars)
	}
	if announcements != nil {
		s.registry.SetAnnouncementCount(*announcements)
	}

	s.sweeper.Sweep(ctx)
	s.metrics.ObserveStatus(s.registry.Snapshot())
}

// queryCounts runs both count queries concurrently. A nil result means the query failed and the last known value is kept.
func (s *AggregationScheduler) queryCounts(ctx context.Context) (*int, *int) {
	var calendars, announcements *int
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		calendars = s.query(ctx, queryCalendars, s.counts.CountCalendars)
	}()
	go func() {
		defer wg.Done()
		announcements = s.query(ctx, queryAnnouncements, s.counts.CountAnnouncements)
	}()
	wg.Wait()
	return calendars, announcements
}

func (s *AggregationScheduler) query(ctx context.Context, name string, count func(context.Context) (int, error)) (result *int) {
	defer func() {
		if r := recover(); r != nil {
			s.countFailed(name, fmt.Errorf("count query panicked: %v", r))
			result = nil
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	n, err := count(ctx)
	if err != nil {
		s.countFailed(name, err)
		return nil
	}
	return Ptr(n)
}

func (s *AggregationScheduler) countFailed(name string, err error) {
	s.metrics.IncCountQueryFailure(name)
	_ = level.Error(s.logger).Log(
		"msg", "Count query failed, keeping last known value",
		"event", eventCountQueryFailed,
		"query", name,
		"err", err,
	)
}
