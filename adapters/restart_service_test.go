package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mysupervisor/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestartServiceHTTP_Panics(t *testing.T) {
	t.Run("baseURL_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.restart_service.go: baseURL is required", func() {
			RestartServiceHTTP("", &http.Client{})
		})
	})
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.restart_service.go: http client is required", func() {
			RestartServiceHTTP("http://localhost:8080", nil)
		})
	})
}

func TestRestartServiceHTTP_Restart(t *testing.T) {
	tests := []struct {
		name        string
		record      domain.InstanceRecord
		statusCode  int
		body        string
		wantPath    string
		wantOutcome domain.RestartOutcome
		wantErr     bool
	}{
		{
			name:        "bot_shard_restarted",
			record:      domain.InstanceRecord{Class: domain.ClassBotShard, InstanceID: "a", ShardIndex: 3},
			statusCode:  http.StatusOK,
			body:        `{"detail":"pod recreated"}`,
			wantPath:    "/v1/restart/bot_shard/3",
			wantOutcome: domain.RestartOutcome{Restarted: true, Detail: "pod recreated"},
		},
		{
			name:        "render_worker_restarted_without_body",
			record:      domain.InstanceRecord{Class: domain.ClassRenderWorker, InstanceID: "cam 1"},
			statusCode:  http.StatusOK,
			wantPath:    "/v1/restart/render_worker/cam%201",
			wantOutcome: domain.RestartOutcome{Restarted: true},
		},
		{
			name:        "not_found_is_declined",
			record:      domain.InstanceRecord{Class: domain.ClassRenderWorker, InstanceID: "cam-2"},
			statusCode:  http.StatusNotFound,
			wantPath:    "/v1/restart/render_worker/cam-2",
			wantOutcome: domain.RestartOutcome{Restarted: false, Detail: "Not Found"},
		},
		{
			name:        "conflict_is_declined_with_detail",
			record:      domain.InstanceRecord{Class: domain.ClassBotShard, InstanceID: "a", ShardIndex: 0},
			statusCode:  http.StatusConflict,
			body:        `{"detail":"restart already in progress"}`,
			wantPath:    "/v1/restart/bot_shard/0",
			wantOutcome: domain.RestartOutcome{Restarted: false, Detail: "restart already in progress"},
		},
		{
			name:       "server_error",
			record:     domain.InstanceRecord{Class: domain.ClassBotShard, InstanceID: "a", ShardIndex: 1},
			statusCode: http.StatusInternalServerError,
			wantPath:   "/v1/restart/bot_shard/1",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotMethod string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				gotMethod = r.Method
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			outcome, err := RestartServiceHTTP(srv.URL, srv.Client()).Restart(context.Background(), tt.record)

			assert.Equal(t, http.MethodPost, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "500")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, outcome)
		})
	}
}

func TestRestartServiceHTTP_Restart_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := RestartServiceHTTP(srv.URL, srv.Client()).Restart(ctx, domain.InstanceRecord{Class: domain.ClassRenderWorker, InstanceID: "cam-1"})
	require.Error(t, err)
}

func TestRestartServiceHTTP_Restart_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := RestartServiceHTTP(url, &http.Client{Timeout: time.Second}).Restart(context.Background(), domain.InstanceRecord{Class: domain.ClassRenderWorker, InstanceID: "cam-1"})
	require.Error(t, err)
}
