package interfaces

import (
	"context"

	"mysupervisor/domain"
)

// RestartService is the external mechanism able to restart one remote instance.
// Implemented by adapters.RestartServiceHTTP. Called from the external-service restart policy for stale records.
//
//go:generate moq -stub -out mock/restart_service.go -pkg mock . RestartService
type RestartService interface {
	// Restart asks the mechanism to restart the process behind record.
	// Returns:
	// 1) (outcome, nil) when the request was answered; outcome.Restarted reports whether a restart was performed;
	// 2) (zero, error) on transport failure.
	Restart(ctx context.Context, record domain.InstanceRecord) (domain.RestartOutcome, error)
}
