package service

import (
	"context"
	"time"

	"mysupervisor/helpers"
	"mysupervisor/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const eventInstanceRestartFailed = "instance_restart_failed"

// StalenessSweeper finds bot shards and render workers that missed their heartbeats and hands them to the restart policy.
type StalenessSweeper struct {
	registry  interfaces.FleetRegistry
	policy    interfaces.RestartPolicy
	clock     interfaces.TimeProvider
	threshold time.Duration
	metrics   interfaces.FleetMetrics
	logger    log.Logger
}

// NewStalenessSweeper creates a sweeper. Panics on nil dependencies or a non-positive threshold.
func NewStalenessSweeper(
	registry interfaces.FleetRegistry,
	policy interfaces.RestartPolicy,
	clock interfaces.TimeProvider,
	threshold time.Duration,
	metrics interfaces.FleetMetrics,
	logger log.Logger,
) *StalenessSweeper {
	if threshold <= 0 {
		panic("service.staleness_sweeper.go: threshold must be positive")
	}
	return &StalenessSweeper{
		registry:  helpers.NilPanic(registry, "service.staleness_sweeper.go: registry is required"),
		policy:    helpers.NilPanic(policy, "service.staleness_sweeper.go: policy is required"),
		clock:     helpers.NilPanic(clock, "service.staleness_sweeper.go: clock is required"),
		threshold: threshold,
		metrics:   helpers.NilPanic(metrics, "service.staleness_sweeper.go: metrics is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.staleness_sweeper.go: logger is required"), "component", "StalenessSweeper"),
	}
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	// Stale is the number of candidates found by the scan.
	Stale int
	// Failed is the number of candidates the policy could not handle; they stay in the registry.
	Failed int
}

// Sweep scans the registry first and then applies the policy to every candidate.
// A policy failure is logged and counted; the candidate stays stale and is retried by the next sweep.
func (s *StalenessSweeper) Sweep(ctx context.Context) SweepResult {
	candidates := s.registry.StaleInstances(s.clock.Now(), s.threshold)

	result := SweepResult{Stale: len(candidates)}
	for _, candidate := range candidates {
		if err := s.policy.Apply(ctx, candidate); err != nil {
			result.Failed++
			s.metrics.IncRestartFailure(candidate.Record.Class)
			_ = level.Error(s.logger).Log(append([]any{
				"msg", "Failed to handle stale instance, will retry on next sweep",
				"event", eventInstanceRestartFailed,
				"policy", s.policy.Name(),
				"age", candidate.Age,
				"err", err,
			}, recordKeyvals(candidate.Record)...)...)
		}
	}

	if result.Stale > 0 {
		_ = level.Debug(s.logger).Log("msg", "Sweep finished", "stale", result.Stale, "failed", result.Failed)
	}
	return result
}
