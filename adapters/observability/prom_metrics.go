package observability

import (
	"mysupervisor/domain"
	"mysupervisor/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// PromMetrics exports fleet observations as Prometheus metrics. Implements interfaces.FleetMetrics.
type PromMetrics struct {
	fleetInstances     *prometheus.GaugeVec
	totalCalendars     prometheus.Gauge
	totalAnnouncements prometheus.Gauge
	totalGuilds        prometheus.Gauge
	evicted            *prometheus.CounterVec
	restartFailures    *prometheus.CounterVec
	aggregationSkipped prometheus.Counter
	queryFailures      *prometheus.CounterVec
}

var _ interfaces.FleetMetrics = (*PromMetrics)(nil)

// NewPromMetrics creates the fleet metrics and registers them with reg.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	m := &PromMetrics{
		fleetInstances: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "supervisor_fleet_instances",
			Help: "Instances currently registered, by class.",
		}, []string{"class"}),
		totalCalendars: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "supervisor_total_calendars",
			Help: "Calendars across all tenants, as of the last successful count.",
		}),
		totalAnnouncements: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "supervisor_total_announcements",
			Help: "Announcements across all tenants, as of the last successful count.",
		}),
		totalGuilds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "supervisor_total_guilds",
			Help: "Guilds reported by all registered bot shards.",
		}),
		evicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supervisor_instances_evicted_total",
			Help: "Stale instances evicted from the registry, by class.",
		}, []string{"class"}),
		restartFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supervisor_restart_failures_total",
			Help: "Stale instances the restart policy failed to handle, by class.",
		}, []string{"class"}),
		aggregationSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "supervisor_aggregation_skipped_total",
			Help: "Aggregation ticks skipped because the previous cycle was still running.",
		}),
		queryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supervisor_count_query_failures_total",
			Help: "Failed data store count queries, by query.",
		}, []string{"query"}),
	}

	reg.MustRegister(
		m.fleetInstances,
		m.totalCalendars,
		m.totalAnnouncements,
		m.totalGuilds,
		m.evicted,
		m.restartFailures,
		m.aggregationSkipped,
		m.queryFailures,
	)
	return m
}

func (m *PromMetrics) ObserveStatus(status domain.NetworkStatus) {
	website := 0
	if status.Website != nil {
		website = 1
	}
	m.fleetInstances.WithLabelValues(string(domain.ClassBotShard)).Set(float64(len(status.BotShards)))
	m.fleetInstances.WithLabelValues(string(domain.ClassRenderWorker)).Set(float64(len(status.RenderWorkers)))
	m.fleetInstances.WithLabelValues(string(domain.ClassWebsite)).Set(float64(website))
	m.totalCalendars.Set(float64(status.TotalCalendars))
	m.totalAnnouncements.Set(float64(status.TotalAnnouncements))
	m.totalGuilds.Set(float64(status.TotalGuilds()))
}

func (m *PromMetrics) IncEvicted(class domain.InstanceClass) {
	m.evicted.WithLabelValues(string(class)).Inc()
}

func (m *PromMetrics) IncRestartFailure(class domain.InstanceClass) {
	m.restartFailures.WithLabelValues(string(class)).Inc()
}

func (m *PromMetrics) IncAggregationSkipped() {
	m.aggregationSkipped.Inc()
}

func (m *PromMetrics) IncCountQueryFailure(query string) {
	m.queryFailures.WithLabelValues(query).Inc()
}
