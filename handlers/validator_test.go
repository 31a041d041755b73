package handlers

import (
	"net/http"
	"testing"
	"time"

	"mysupervisor/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatedServer(t *testing.T) (*echo.Echo, *service.FleetRegistry) {
	t.Helper()
	clock := service.NewTimeProvider(func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) })
	registry := service.NewFleetRegistry("api-1", clock, log.NewNopLogger())

	validator, err := NewRequestValidator()
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	e.GET("/metrics", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	registerHandlers(e, NewHTTPServer(registry, log.NewNopLogger()))
	return e, registry
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI()
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/v1/heartbeat"))
	assert.NotNil(t, doc.Paths.Find("/v1/status"))
	assert.NotNil(t, doc.Paths.Find("/v1/evict/{class}/{key}"))
}

func TestRequestValidator_Heartbeat(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "valid bot", body: `{"type":"bot","instance_id":"a","shard_index":0,"shard_count":1}`, expectedStatus: http.StatusOK},
		{name: "valid website", body: `{"type":"website","instance_id":"web-1","timestamp":"2026-10-19T11:59:00Z"}`, expectedStatus: http.StatusOK},
		{name: "unknown type", body: `{"type":"client","instance_id":"a"}`, expectedStatus: http.StatusBadRequest},
		{name: "missing instance id", body: `{"type":"website"}`, expectedStatus: http.StatusBadRequest},
		{name: "negative shard index", body: `{"type":"bot","instance_id":"a","shard_index":-1}`, expectedStatus: http.StatusBadRequest},
		{name: "bad timestamp", body: `{"type":"website","instance_id":"a","timestamp":"yesterday"}`, expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newValidatedServer(t)

			rec := serve(e, http.MethodPost, "/v1/heartbeat", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Equal(t, service.ErrBadParameter, decodeErr(t, rec).Error.Code)
			}
		})
	}
}

func TestRequestValidator_EvictUnknownClass(t *testing.T) {
	e, _ := newValidatedServer(t)

	rec := serve(e, http.MethodPost, "/v1/evict/self/api-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.ErrBadParameter, decodeErr(t, rec).Error.Code)
}

func TestRequestValidator_UndocumentedRoutePassesThrough(t *testing.T) {
	e, _ := newValidatedServer(t)

	rec := serve(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = serve(e, http.MethodGet, "/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestValidator_HeartbeatThenStatusThenEvict(t *testing.T) {
	e, registry := newValidatedServer(t)

	require.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/v1/heartbeat", `{"type":"bot","instance_id":"b","shard_index":1,"shard_count":2,"guilds":7}`).Code)
	require.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/v1/heartbeat", `{"type":"bot","instance_id":"a","shard_index":0,"shard_count":2,"guilds":3}`).Code)
	require.Len(t, registry.Snapshot().BotShards, 2)

	rec := serve(e, http.MethodGet, "/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_guilds":10`)
	assert.Contains(t, rec.Body.String(), `"expected_shards":2`)

	require.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/v1/evict/bot_shard/0", "").Code)
	shards := registry.Snapshot().BotShards
	require.Len(t, shards, 1)
	assert.Equal(t, 1, shards[0].ShardIndex)

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodPost, "/v1/evict/bot_shard/0", "").Code)
}
