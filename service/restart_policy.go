package service

import (
	"context"
	"fmt"

	"mysupervisor/domain"
	"mysupervisor/helpers"
	"mysupervisor/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	eventInstanceEvicted          = "instance_evicted"
	eventInstanceRestartRequested = "instance_restart_requested"

	reasonRestartServiceInactive = "restart service not active"
	reasonRestartedByService     = "restarted by restart service"
)

// NewRestartPolicy selects the restart policy once at startup.
// With useRestartService the stale instance is handed to restarter before eviction,
// otherwise it is evicted right away. restarter may be nil when useRestartService is false.
func NewRestartPolicy(
	useRestartService bool,
	restarter interfaces.RestartService,
	registry interfaces.FleetRegistry,
	metrics interfaces.FleetMetrics,
	logger log.Logger,
) interfaces.RestartPolicy {
	registry = helpers.NilPanic(registry, "service.restart_policy.go: registry is required")
	metrics = helpers.NilPanic(metrics, "service.restart_policy.go: metrics is required")
	logger = helpers.NilPanic(logger, "service.restart_policy.go: logger is required")

	if !useRestartService {
		return &disabledRestartPolicy{
			registry: registry,
			metrics:  metrics,
			logger:   log.With(logger, "component", "RestartPolicy", "policy", "disabled"),
		}
	}
	return &externalServiceRestartPolicy{
		restarter: helpers.NilPanic(restarter, "service.restart_policy.go: restarter is required"),
		registry:  registry,
		metrics:   metrics,
		logger:    log.With(logger, "component", "RestartPolicy", "policy", "external_service"),
	}
}

// disabledRestartPolicy evicts stale instances. They come back with their next heartbeat.
type disabledRestartPolicy struct {
	registry interfaces.FleetRegistry
	metrics  interfaces.FleetMetrics
	logger   log.Logger
}

func (p *disabledRestartPolicy) Name() string {
	return "disabled"
}

func (p *disabledRestartPolicy) Apply(_ context.Context, stale domain.StaleInstance) error {
	evict(p.registry, p.metrics, p.logger, stale, reasonRestartServiceInactive)
	return nil
}

// externalServiceRestartPolicy asks the restart service to restart the stale process and evicts the record on success.
type externalServiceRestartPolicy struct {
	restarter interfaces.RestartService
	registry  interfaces.FleetRegistry
	metrics   interfaces.FleetMetrics
	logger    log.Logger
}

func (p *externalServiceRestartPolicy) Name() string {
	return "external_service"
}

func (p *externalServiceRestartPolicy) Apply(ctx context.Context, stale domain.StaleInstance) error {
	_ = level.Info(p.logger).Log(append([]any{
		"msg", "Requesting instance restart",
		"event", eventInstanceRestartRequested,
		"age", stale.Age,
	}, recordKeyvals(stale.Record)...)...)

	outcome, err := p.restarter.Restart(ctx, stale.Record)
	if err != nil {
		return NewServiceUnavailableError("restart request failed", err)
	}
	if !outcome.Restarted {
		return NewServiceUnavailableError(fmt.Sprintf("restart declined: %s", outcome.Detail), nil)
	}

	evict(p.registry, p.metrics, p.logger, stale, reasonRestartedByService)
	return nil
}

// evict removes the candidate unless it was refreshed after the scan.
func evict(registry interfaces.FleetRegistry, metrics interfaces.FleetMetrics, logger log.Logger, stale domain.StaleInstance, reason string) {
	if !registry.EvictStale(stale) {
		_ = level.Debug(logger).Log(append([]any{
			"msg", "Stale instance refreshed before eviction, kept",
		}, recordKeyvals(stale.Record)...)...)
		return
	}

	metrics.IncEvicted(stale.Record.Class)
	_ = level.Warn(logger).Log(append([]any{
		"msg", "Instance disconnected from network",
		"event", eventInstanceEvicted,
		"reason", reason,
		"age", stale.Age,
		"last_heartbeat", stale.Record.LastHeartbeat,
	}, recordKeyvals(stale.Record)...)...)
}
