package observability

import (
	"strings"
	"testing"

	"mysupervisor/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromMetrics_ObserveStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPromMetrics(reg)

	m.ObserveStatus(domain.NetworkStatus{
		BotShards: []domain.InstanceRecord{
			{Class: domain.ClassBotShard, ShardIndex: 0, Guilds: 10},
			{Class: domain.ClassBotShard, ShardIndex: 1, Guilds: 15},
		},
		RenderWorkers:      []domain.InstanceRecord{{Class: domain.ClassRenderWorker, InstanceID: "cam-1"}},
		TotalCalendars:     40,
		TotalAnnouncements: 7,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fleetInstances.WithLabelValues("bot_shard")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fleetInstances.WithLabelValues("render_worker")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.fleetInstances.WithLabelValues("website")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.totalCalendars))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.totalAnnouncements))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.totalGuilds))

	m.ObserveStatus(domain.NetworkStatus{Website: &domain.InstanceRecord{Class: domain.ClassWebsite}})
	assert.Equal(t, 0.0, testutil.ToFloat64(m.fleetInstances.WithLabelValues("bot_shard")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fleetInstances.WithLabelValues("website")))
}

func TestPromMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPromMetrics(reg)

	m.IncEvicted(domain.ClassBotShard)
	m.IncEvicted(domain.ClassBotShard)
	m.IncEvicted(domain.ClassRenderWorker)
	m.IncRestartFailure(domain.ClassRenderWorker)
	m.IncAggregationSkipped()
	m.IncCountQueryFailure("calendars")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.evicted.WithLabelValues("bot_shard")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evicted.WithLabelValues("render_worker")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.restartFailures.WithLabelValues("render_worker")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aggregationSkipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queryFailures.WithLabelValues("calendars")))

	expected := `
# HELP supervisor_aggregation_skipped_total Aggregation ticks skipped because the previous cycle was still running.
# TYPE supervisor_aggregation_skipped_total counter
supervisor_aggregation_skipped_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "supervisor_aggregation_skipped_total"))
}

func TestNewPromMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPromMetrics(reg)
	assert.Panics(t, func() { NewPromMetrics(reg) })
}
