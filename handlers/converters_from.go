package handlers

import (
	"strconv"

	"mysupervisor/domain"
	"mysupervisor/service"
)

// fromHeartbeatRequest converts HeartbeatRequest to a domain.InstanceRecord with its class set.
// Returns service.BadParameterError on validation failure.
func fromHeartbeatRequest(req HeartbeatRequest) (domain.InstanceRecord, error) {
	if req.InstanceId == "" {
		return domain.InstanceRecord{}, service.NewBadParameterError("instance_id is required", nil)
	}

	record := domain.InstanceRecord{
		InstanceID:    req.InstanceId,
		LastHeartbeat: service.Value(req.Timestamp),
		StartedAt:     service.Value(req.StartedAt),
	}

	switch req.Type {
	case Bot:
		if req.ShardIndex == nil {
			return domain.InstanceRecord{}, service.NewBadParameterError("shard_index is required for bot heartbeats", nil)
		}
		record.Class = domain.ClassBotShard
		record.ShardIndex = *req.ShardIndex
		record.ShardCount = service.Value(req.ShardCount)
		record.Guilds = service.Value(req.Guilds)
	case RenderWorker:
		record.Class = domain.ClassRenderWorker
	case Website:
		record.Class = domain.ClassWebsite
	default:
		return domain.InstanceRecord{}, service.NewBadParameterError("unknown heartbeat type '"+string(req.Type)+"'", nil)
	}
	return record, nil
}

// fromEvictParams converts the evict path parameters to a registry key.
// Returns service.BadParameterError for an unknown class or a non-numeric shard index.
func fromEvictParams(class EvictableClass, key string) (domain.ClassKey, error) {
	if key == "" {
		return domain.ClassKey{}, service.NewBadParameterError("key is required", nil)
	}
	switch class {
	case EvictableClassBotShard:
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 {
			return domain.ClassKey{}, service.NewBadParameterError("bot shard key must be a shard index", err)
		}
		return domain.BotShardKey(index), nil
	case EvictableClassRenderWorker:
		return domain.RenderWorkerKey(key), nil
	case EvictableClassWebsite:
		return domain.ClassKey{Class: domain.ClassWebsite, InstanceID: key}, nil
	default:
		return domain.ClassKey{}, service.NewBadParameterError("unknown instance class '"+string(class)+"'", nil)
	}
}
