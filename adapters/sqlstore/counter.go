package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"mysupervisor/helpers"
	"mysupervisor/interfaces"
	"mysupervisor/service"
)

const (
	countCalendarsQuery     = "SELECT COUNT(*) FROM calendars"
	countAnnouncementsQuery = "SELECT COUNT(*) FROM announcements"
)

type countSource struct {
	db *sql.DB
}

var _ interfaces.CountSource = (*countSource)(nil)

// NewCountSource creates a SQL implementation of interfaces.CountSource.
func NewCountSource(db *sql.DB) interfaces.CountSource {
	return &countSource{db: helpers.NilPanic(db, "sqlstore.counter.go: db is required")}
}

func (c *countSource) CountCalendars(ctx context.Context) (int, error) {
	return c.count(ctx, "calendars", countCalendarsQuery)
}

func (c *countSource) CountAnnouncements(ctx context.Context) (int, error) {
	return c.count(ctx, "announcements", countAnnouncementsQuery)
}

func (c *countSource) count(ctx context.Context, table, query string) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, service.NewInternalServerError("SQL count error", fmt.Errorf("can't count rows of %s, err: %w", table, err))
	}
	return n, nil
}
