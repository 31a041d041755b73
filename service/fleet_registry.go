package service

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"mysupervisor/domain"
	"mysupervisor/helpers"
	"mysupervisor/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	eventInstanceConnected = "instance_connected"
	eventInstanceIDChanged = "instance_id_changed"
	eventInstanceRefreshed = "instance_refreshed"
	eventInstanceRemoved   = "instance_removed"
)

// storedRecord is a registry slot. revision changes on every write to the slot,
// which lets EvictStale detect a refresh that happened after the sweep scanned the slot.
type storedRecord struct {
	record   domain.InstanceRecord
	revision uint64
}

// FleetRegistry is the in-memory NetworkStatus of the fleet. It implements interfaces.FleetRegistry.
// All reads and writes go through mu; readers only ever receive copies.
// Bot shards are kept sorted by shard index and render workers by instance id, so snapshots have a stable order.
type FleetRegistry struct {
	clock  interfaces.TimeProvider
	logger log.Logger

	mu                 sync.RWMutex
	revision           uint64
	self               domain.InstanceRecord
	shards             []storedRecord
	renderWorkers      []storedRecord
	website            *storedRecord
	totalCalendars     int
	totalAnnouncements int
}

var _ interfaces.FleetRegistry = (*FleetRegistry)(nil)

// NewFleetRegistry creates an empty registry whose Self record carries selfID and starts now. Panics on empty selfID, nil clock or nil logger.
func NewFleetRegistry(selfID string, clock interfaces.TimeProvider, logger log.Logger) *FleetRegistry {
	clock = helpers.NilPanic(clock, "service.fleet_registry.go: clock is required")
	now := clock.Now()
	return &FleetRegistry{
		clock:  clock,
		logger: log.With(helpers.NilPanic(logger, "service.fleet_registry.go: logger is required"), "component", "FleetRegistry"),
		self: domain.InstanceRecord{
			Class:         domain.ClassSelf,
			InstanceID:    helpers.StrPanic(selfID, "service.fleet_registry.go: selfID is required"),
			LastHeartbeat: now,
			StartedAt:     now,
		},
	}
}

// ReportBotShard upserts the record of shard record.ShardIndex.
// A first report logs instance_connected, a report with a new instance id logs instance_id_changed (the shard process restarted).
func (r *FleetRegistry) ReportBotShard(record domain.InstanceRecord) error {
	if record.ShardIndex < 0 {
		return NewBadParameterError("shard_index must not be negative", nil)
	}
	record.Class = domain.ClassBotShard
	record, err := r.normalize(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	previous, found := r.upsertLocked(&r.shards, record, compareShardIndex)
	r.mu.Unlock()

	r.logReport(record, previous, found)
	return nil
}

// ReportRenderWorker upserts the record of render worker record.InstanceID.
func (r *FleetRegistry) ReportRenderWorker(record domain.InstanceRecord) error {
	record.Class = domain.ClassRenderWorker
	record, err := r.normalize(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	previous, found := r.upsertLocked(&r.renderWorkers, record, compareInstanceID)
	r.mu.Unlock()

	r.logReport(record, previous, found)
	return nil
}

// ReportWebsite replaces the website record.
func (r *FleetRegistry) ReportWebsite(record domain.InstanceRecord) error {
	record.Class = domain.ClassWebsite
	record, err := r.normalize(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	var previous domain.InstanceRecord
	found := r.website != nil
	if found {
		previous = r.website.record
	}
	r.revision++
	r.website = &storedRecord{record: record, revision: r.revision}
	r.mu.Unlock()

	r.logReport(record, previous, found)
	return nil
}

// Evict removes the record in slot key. Evicting an absent key, or the Self slot, is a no-op.
func (r *FleetRegistry) Evict(key domain.ClassKey) {
	r.mu.Lock()
	removed, ok := r.removeLocked(key, nil)
	r.mu.Unlock()

	if ok {
		_ = level.Debug(r.logger).Log(append([]any{"msg", "Instance removed from network", "event", eventInstanceRemoved}, recordKeyvals(removed)...)...)
	}
}

// StaleInstances captures every bot shard and render worker whose last heartbeat is older than threshold at now.
// Website and Self are never reported.
func (r *FleetRegistry) StaleInstances(now time.Time, threshold time.Duration) []domain.StaleInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stale []domain.StaleInstance
	for _, list := range [][]storedRecord{r.shards, r.renderWorkers} {
		for _, slot := range list {
			age := now.Sub(slot.record.LastHeartbeat)
			if age > threshold {
				stale = append(stale, domain.StaleInstance{Record: slot.record, Revision: slot.revision, Age: age})
			}
		}
	}
	return stale
}

// EvictStale removes the candidate's slot only if it still holds the revision seen by the scan.
// Returns false when the slot is gone or was refreshed after the scan.
func (r *FleetRegistry) EvictStale(stale domain.StaleInstance) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	revision := stale.Revision
	_, ok := r.removeLocked(stale.Record.Key(), &revision)
	return ok
}

// UpdateSelf sets Self's last heartbeat to now and recomputes its uptime.
func (r *FleetRegistry) UpdateSelf(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.self.LastHeartbeat = now
	r.self.Uptime = now.Sub(r.self.StartedAt)
}

// SetCalendarCount stores the fleet-wide calendar count.
func (r *FleetRegistry) SetCalendarCount(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalCalendars = n
}

// SetAnnouncementCount stores the fleet-wide announcement count.
func (r *FleetRegistry) SetAnnouncementCount(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalAnnouncements = n
}

// Snapshot returns a deep copy of the current NetworkStatus. The copy shares nothing with the registry.
func (r *FleetRegistry) Snapshot() domain.NetworkStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := domain.NetworkStatus{
		Self:               r.self,
		BotShards:          records(r.shards),
		RenderWorkers:      records(r.renderWorkers),
		TotalCalendars:     r.totalCalendars,
		TotalAnnouncements: r.totalAnnouncements,
	}
	if r.website != nil {
		website := r.website.record
		status.Website = &website
	}
	return status
}

// normalize validates the report and fills derived fields. Reports without a timestamp are stamped with the registry clock.
func (r *FleetRegistry) normalize(record domain.InstanceRecord) (domain.InstanceRecord, error) {
	if record.InstanceID == "" {
		return record, NewBadParameterError("instance_id is required", nil)
	}
	if record.LastHeartbeat.IsZero() {
		record.LastHeartbeat = r.clock.Now()
	}
	record.Uptime = 0
	if !record.StartedAt.IsZero() && record.LastHeartbeat.After(record.StartedAt) {
		record.Uptime = record.LastHeartbeat.Sub(record.StartedAt)
	}
	return record, nil
}

// upsertLocked replaces or inserts record in the sorted list. Caller must hold r.mu for writing.
func (r *FleetRegistry) upsertLocked(list *[]storedRecord, record domain.InstanceRecord, compare func(storedRecord, domain.InstanceRecord) int) (domain.InstanceRecord, bool) {
	r.revision++
	slot := storedRecord{record: record, revision: r.revision}

	i, found := slices.BinarySearchFunc(*list, record, compare)
	if found {
		previous := (*list)[i].record
		(*list)[i] = slot
		return previous, true
	}
	*list = slices.Insert(*list, i, slot)
	return domain.InstanceRecord{}, false
}

// removeLocked removes the slot for key. With a non-nil revision the slot is removed only if its revision matches.
// Caller must hold r.mu for writing.
func (r *FleetRegistry) removeLocked(key domain.ClassKey, revision *uint64) (domain.InstanceRecord, bool) {
	var list *[]storedRecord
	var probe domain.InstanceRecord
	var compare func(storedRecord, domain.InstanceRecord) int
	switch key.Class {
	case domain.ClassBotShard:
		list, probe, compare = &r.shards, domain.InstanceRecord{ShardIndex: key.ShardIndex}, compareShardIndex
	case domain.ClassRenderWorker:
		list, probe, compare = &r.renderWorkers, domain.InstanceRecord{InstanceID: key.InstanceID}, compareInstanceID
	case domain.ClassWebsite:
		if r.website == nil || (revision != nil && r.website.revision != *revision) {
			return domain.InstanceRecord{}, false
		}
		removed := r.website.record
		r.website = nil
		return removed, true
	default:
		return domain.InstanceRecord{}, false
	}

	i, found := slices.BinarySearchFunc(*list, probe, compare)
	if !found {
		return domain.InstanceRecord{}, false
	}
	if revision != nil && (*list)[i].revision != *revision {
		return domain.InstanceRecord{}, false
	}
	removed := (*list)[i].record
	*list = slices.Delete(*list, i, i+1)
	return removed, true
}

func (r *FleetRegistry) logReport(record, previous domain.InstanceRecord, found bool) {
	keyvals := recordKeyvals(record)
	switch {
	case !found:
		_ = level.Info(r.logger).Log(append([]any{"msg", "Instance connected to network", "event", eventInstanceConnected}, keyvals...)...)
	case previous.InstanceID != record.InstanceID:
		_ = level.Info(r.logger).Log(append([]any{"msg", "Instance ID changed", "event", eventInstanceIDChanged, "previous_instance_id", previous.InstanceID}, keyvals...)...)
	default:
		_ = level.Debug(r.logger).Log(append([]any{"msg", "Instance heartbeat refreshed", "event", eventInstanceRefreshed}, keyvals...)...)
	}
}

// recordKeyvals returns the class and identity log fields of record.
func recordKeyvals(record domain.InstanceRecord) []any {
	keyvals := []any{"class", record.Class, "instance_id", record.InstanceID}
	if record.Class == domain.ClassBotShard {
		keyvals = append(keyvals, "shard_index", record.ShardIndex)
	}
	return keyvals
}

func compareShardIndex(slot storedRecord, record domain.InstanceRecord) int {
	return cmp.Compare(slot.record.ShardIndex, record.ShardIndex)
}

func compareInstanceID(slot storedRecord, record domain.InstanceRecord) int {
	return cmp.Compare(slot.record.InstanceID, record.InstanceID)
}

func records(slots []storedRecord) []domain.InstanceRecord {
	out := make([]domain.InstanceRecord, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.record)
	}
	return out
}
