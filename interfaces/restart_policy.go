package interfaces

import (
	"context"

	"mysupervisor/domain"
)

// RestartPolicy decides what happens to a stale instance found by the staleness sweep.
// Selected once at startup; see service.NewRestartPolicy.
//
//go:generate moq -stub -out mock/restart_policy.go -pkg mock . RestartPolicy
type RestartPolicy interface {
	// Name is a short identifier used in logs.
	Name() string

	// Apply handles one stale candidate.
	// Returns nil when the candidate was handled (evicted, or kept because it was refreshed meanwhile)
	// and an error when it remains stale and must be retried by the next sweep.
	Apply(ctx context.Context, stale domain.StaleInstance) error
}
