package interfaces

import "context"

// CountSource is the data-store collaborator queried by the aggregation cycle for fleet-wide counters.
//
//go:generate moq -stub -out mock/count_source.go -pkg mock . CountSource
type CountSource interface {
	// CountCalendars returns the number of calendars across all tenants.
	// Returns:
	// 1) (n, nil) on success;
	// 2) (0, internal_server_error) when the store query fails or times out.
	CountCalendars(ctx context.Context) (int, error)

	// CountAnnouncements returns the number of announcements across all tenants.
	// Returns:
	// 1) (n, nil) on success;
	// 2) (0, internal_server_error) when the store query fails or times out.
	CountAnnouncements(ctx context.Context) (int, error)
}
