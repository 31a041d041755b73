package service

import (
	"time"

	"mysupervisor/helpers"
	"mysupervisor/interfaces"
)

// timeProvider implements interfaces.TimeProvider on top of an injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider returns a TimeProvider backed by now. Panics on nil now.
// cmd/main passes time.Now().UTC; tests pass a controllable clock.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}
