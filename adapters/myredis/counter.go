package myredis

import (
	"context"
	"fmt"

	"mysupervisor/helpers"
	"mysupervisor/interfaces"
	"mysupervisor/service"

	"github.com/go-redis/redis/v8"
)

const (
	// CalendarPrefix is the key prefix of calendar entries (calendar:<guild>:<number>).
	CalendarPrefix = "calendar"
	// AnnouncementPrefix is the key prefix of announcement entries (announcement:<guild>:<id>).
	AnnouncementPrefix = "announcement"

	scanBatch = 1000
)

type keyCounter struct {
	client redis.UniversalClient
	prefix string
}

// newKeyCounter creates a counter of the keys under prefix.
func newKeyCounter(client redis.UniversalClient, prefix string) *keyCounter {
	return &keyCounter{client: client, prefix: prefix}
}

// Count walks the keyspace with SCAN and returns the number of matching keys.
func (k *keyCounter) Count(ctx context.Context) (int, error) {
	var cursor uint64
	total := 0
	for {
		keys, next, err := k.client.Scan(ctx, cursor, k.generatePattern(), scanBatch).Result()
		if err != nil {
			return 0, service.NewInternalServerError("Redis scan error", fmt.Errorf("can't scan keys (pattern='%s'), err: %w", k.generatePattern(), err))
		}
		total += len(keys)
		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}

func (k *keyCounter) generatePattern() string {
	return k.prefix + ":*"
}

type countSource struct {
	calendars     *keyCounter
	announcements *keyCounter
}

var _ interfaces.CountSource = (*countSource)(nil)

// NewCountSource creates a redis implementation of interfaces.CountSource counting calendar:* and announcement:* keys.
func NewCountSource(client redis.UniversalClient) interfaces.CountSource {
	client = helpers.NilPanic(client, "myredis.counter.go: client is required")
	return &countSource{
		calendars:     newKeyCounter(client, CalendarPrefix),
		announcements: newKeyCounter(client, AnnouncementPrefix),
	}
}

func (c *countSource) CountCalendars(ctx context.Context) (int, error) {
	return c.calendars.Count(ctx)
}

func (c *countSource) CountAnnouncements(ctx context.Context) (int, error) {
	return c.announcements.Count(ctx)
}
