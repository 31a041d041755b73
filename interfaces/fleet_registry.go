package interfaces

import (
	"time"

	"mysupervisor/domain"
)

// HeartbeatReceiver accepts liveness reports from remote instances.
// Implemented by service.FleetRegistry. Called from handlers.HTTPServer.PostHeartbeat.
type HeartbeatReceiver interface {
	// ReportBotShard upserts the shard record by shard index.
	// Returns bad_parameter when the record is invalid (negative index, empty instance id).
	ReportBotShard(record domain.InstanceRecord) error

	// ReportRenderWorker upserts the render worker record by instance id.
	ReportRenderWorker(record domain.InstanceRecord) error

	// ReportWebsite replaces the website record.
	ReportWebsite(record domain.InstanceRecord) error
}

// StatusProvider exports immutable copies of the fleet status.
type StatusProvider interface {
	// Snapshot returns a deep copy of the current NetworkStatus.
	Snapshot() domain.NetworkStatus
}

// InstanceEvictor removes instances from the registry.
type InstanceEvictor interface {
	// Evict removes the record in slot key; absent keys and the self slot are a no-op.
	Evict(key domain.ClassKey)
}

// StatusBoard is what the HTTP transport needs from the registry.
//
//go:generate moq -stub -out mock/status_board.go -pkg mock . StatusBoard
type StatusBoard interface {
	HeartbeatReceiver
	StatusProvider
	InstanceEvictor
}

// FleetRegistry is the full registry surface used by the scheduler, the sweeper and restart policies.
type FleetRegistry interface {
	StatusBoard

	// StaleInstances returns every bot shard and render worker whose last heartbeat is older than threshold at now.
	StaleInstances(now time.Time, threshold time.Duration) []domain.StaleInstance

	// EvictStale evicts the candidate only if its slot was not refreshed since the candidate was captured.
	// Returns true when the record was removed.
	EvictStale(stale domain.StaleInstance) bool

	// UpdateSelf refreshes the supervisor's own record.
	UpdateSelf(now time.Time)

	// SetCalendarCount stores the fleet-wide calendar counter.
	SetCalendarCount(n int)

	// SetAnnouncementCount stores the fleet-wide announcement counter.
	SetAnnouncementCount(n int)
}
