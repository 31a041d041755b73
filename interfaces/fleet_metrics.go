package interfaces

import "mysupervisor/domain"

// FleetMetrics receives fleet observations for export.
// Implemented by observability.PromMetrics.
//
//go:generate moq -stub -out mock/fleet_metrics.go -pkg mock . FleetMetrics
type FleetMetrics interface {
	// ObserveStatus publishes fleet sizes and counters from a snapshot.
	ObserveStatus(status domain.NetworkStatus)
	// IncEvicted counts one eviction of an instance of class.
	IncEvicted(class domain.InstanceClass)
	// IncRestartFailure counts one failed restart attempt of an instance of class.
	IncRestartFailure(class domain.InstanceClass)
	// IncAggregationSkipped counts one aggregation cycle skipped because the previous one was still running.
	IncAggregationSkipped()
	// IncCountQueryFailure counts one failed count query (query is "calendars" or "announcements").
	IncCountQueryFailure(query string)
}
