package domain

import "time"

// InstanceClass is the kind of remote process tracked by the supervisor.
type InstanceClass string

const (
	// ClassBotShard is a chat bot worker serving one shard of the workload.
	ClassBotShard InstanceClass = "bot_shard"
	// ClassRenderWorker is an image/rendering worker from the worker pool.
	ClassRenderWorker InstanceClass = "render_worker"
	// ClassWebsite is the public website; at most one is tracked.
	ClassWebsite InstanceClass = "website"
	// ClassSelf is the supervisor process itself.
	ClassSelf InstanceClass = "self"
)

// InstanceRecord is the last known liveness of one instance.
// Fields: class, instance_id (regenerated on every process restart), shard_index/shard_count/guilds (bot shards only),
// last_heartbeat (timestamp of the most recently accepted report), started_at and uptime (reporting only).
type InstanceRecord struct {
	Class         InstanceClass
	InstanceID    string
	ShardIndex    int
	ShardCount    int
	Guilds        int
	LastHeartbeat time.Time
	StartedAt     time.Time
	Uptime        time.Duration
}

// ClassKey identifies the slot an InstanceRecord occupies in the registry.
// Bot shards are keyed by shard index, render workers by instance id; website and self are singletons.
type ClassKey struct {
	Class      InstanceClass
	ShardIndex int
	InstanceID string
}

// Key returns the registry slot of the record.
func (r InstanceRecord) Key() ClassKey {
	switch r.Class {
	case ClassBotShard:
		return BotShardKey(r.ShardIndex)
	case ClassRenderWorker:
		return RenderWorkerKey(r.InstanceID)
	default:
		return ClassKey{Class: r.Class}
	}
}

// BotShardKey returns the key of the bot shard with the given index.
func BotShardKey(shardIndex int) ClassKey {
	return ClassKey{Class: ClassBotShard, ShardIndex: shardIndex}
}

// RenderWorkerKey returns the key of the render worker with the given instance id.
func RenderWorkerKey(instanceID string) ClassKey {
	return ClassKey{Class: ClassRenderWorker, InstanceID: instanceID}
}

// WebsiteKey returns the key of the website singleton.
func WebsiteKey() ClassKey {
	return ClassKey{Class: ClassWebsite}
}

// StaleInstance is an eviction candidate captured while scanning the registry.
// Revision is the registry revision of Record at scan time; Age is now - LastHeartbeat.
type StaleInstance struct {
	Record   InstanceRecord
	Revision uint64
	Age      time.Duration
}

// RestartOutcome is the answer of an external restart mechanism.
type RestartOutcome struct {
	Restarted bool
	Detail    string
}
