package interfaces

import "time"

// TimeProvider supplies the current time to the registry, the scheduler and the sweep.
// Injected so tests can move a fixed clock instead of sleeping.
//
// Constructed in cmd/main as service.NewTimeProvider(func() time.Time { return time.Now().UTC() }).
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests a controlled value).
	Now() time.Time
}
