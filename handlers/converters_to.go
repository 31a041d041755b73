package handlers

import (
	"time"

	"mysupervisor/domain"
	"mysupervisor/service"
)

// toStatusResponse converts a NetworkStatus snapshot to the API response.
func toStatusResponse(status domain.NetworkStatus) StatusResponse {
	out := StatusResponse{
		Self:               toInstanceInfo(status.Self),
		BotShards:          toInstanceInfos(status.BotShards),
		RenderWorkers:      toInstanceInfos(status.RenderWorkers),
		TotalCalendars:     status.TotalCalendars,
		TotalAnnouncements: status.TotalAnnouncements,
		TotalGuilds:        status.TotalGuilds(),
		ExpectedShards:     status.ExpectedShardCount(),
	}
	if status.Website != nil {
		out.Website = service.Ptr(toInstanceInfo(*status.Website))
	}
	return out
}

func toInstanceInfos(records []domain.InstanceRecord) []InstanceInfo {
	out := make([]InstanceInfo, 0, len(records))
	for _, r := range records {
		out = append(out, toInstanceInfo(r))
	}
	return out
}

func toInstanceInfo(r domain.InstanceRecord) InstanceInfo {
	info := InstanceInfo{
		Class:         string(r.Class),
		InstanceId:    r.InstanceID,
		LastHeartbeat: r.LastHeartbeat,
		UptimeSeconds: int64(r.Uptime / time.Second),
	}
	if !r.StartedAt.IsZero() {
		info.StartedAt = service.Ptr(r.StartedAt)
	}
	if r.Class == domain.ClassBotShard {
		info.ShardIndex = service.Ptr(r.ShardIndex)
		info.ShardCount = service.Ptr(r.ShardCount)
		info.Guilds = service.Ptr(r.Guilds)
	}
	return info
}
