package domain

// NetworkStatus is the fleet-wide aggregate exported by the supervisor.
// BotShards is ordered by shard index. Website is nil until the website reports for the first time.
type NetworkStatus struct {
	Self               InstanceRecord
	BotShards          []InstanceRecord
	RenderWorkers      []InstanceRecord
	Website            *InstanceRecord
	TotalCalendars     int
	TotalAnnouncements int
}

// Clone returns a deep copy that shares no slices or pointers with s.
func (s NetworkStatus) Clone() NetworkStatus {
	out := s
	out.BotShards = cloneRecords(s.BotShards)
	out.RenderWorkers = cloneRecords(s.RenderWorkers)
	if s.Website != nil {
		website := *s.Website
		out.Website = &website
	}
	return out
}

// TotalGuilds sums the guild counts reported by bot shards.
func (s NetworkStatus) TotalGuilds() int {
	total := 0
	for _, shard := range s.BotShards {
		total += shard.Guilds
	}
	return total
}

// ExpectedShardCount is the largest shard count announced by any connected shard.
func (s NetworkStatus) ExpectedShardCount() int {
	expected := 0
	for _, shard := range s.BotShards {
		if shard.ShardCount > expected {
			expected = shard.ShardCount
		}
	}
	return expected
}

func cloneRecords(in []InstanceRecord) []InstanceRecord {
	out := make([]InstanceRecord, len(in))
	copy(out, in)
	return out
}
