package sqlstore

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"mysupervisor/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountSource_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "sqlstore.counter.go: db is required", func() {
		NewCountSource(nil)
	})
}

func TestCountSource_CountCalendars(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countCalendarsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := NewCountSource(db).CountCalendars(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSource_CountAnnouncements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countAnnouncementsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := NewCountSource(db).CountAnnouncements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSource_QueryError_ReturnsInternalServerError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countAnnouncementsQuery)).WillReturnError(assert.AnError)

	n, err := NewCountSource(db).CountAnnouncements(context.Background())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, service.IsInternalServerError(err))
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSource_CancelledContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countCalendarsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewCountSource(db).CountCalendars(ctx)
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "supervisor.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO calendars (guild_id, calendar_number, calendar_id) VALUES ('g1', 1, 'c1'), ('g1', 2, 'c2'), ('g2', 1, 'c3')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO announcements (announcement_id, guild_id) VALUES ('a1', 'g1')`)
	require.NoError(t, err)

	source := NewCountSource(db)
	calendars, err := source.CountCalendars(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, calendars)

	announcements, err := source.CountAnnouncements(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, announcements)
}

func TestOpen_Invalid(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Driver("mysql"), "dsn")
	assert.Error(t, err)

	_, err = Open(ctx, DriverPostgres, "")
	assert.Error(t, err)

	_, err = Open(ctx, DriverSQLite, "")
	assert.Error(t, err)
}
