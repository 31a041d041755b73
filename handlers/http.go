// Package handlers contains http handlers for mysupervisor.
//
//go:generate oapi-codegen -config openapi-api.config.yaml openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"mysupervisor/domain"
	"mysupervisor/helpers"
	"mysupervisor/interfaces"
	"mysupervisor/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	board  interfaces.StatusBoard
	logger log.Logger
}

var _ ServerInterface = (*HTTPServer)(nil)

// NewHTTPServer creates a new HTTPServer. Panics on nil board or logger.
func NewHTTPServer(board interfaces.StatusBoard, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		board:  helpers.NilPanic(board, "handlers.http.go: board is required"),
		logger: logger,
	}
}

// PostHeartbeat (POST /v1/heartbeat) records a liveness report. Returns 200 on success, 400 on parse/validation error.
func (h *HTTPServer) PostHeartbeat(ectx echo.Context) error {
	var req PostHeartbeatJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	record, err := fromHeartbeatRequest(req)
	if err != nil {
		return fmt.Errorf("postHeartbeat failed to convert request to record, err: %w", err)
	}

	switch record.Class {
	case domain.ClassBotShard:
		err = h.board.ReportBotShard(record)
	case domain.ClassRenderWorker:
		err = h.board.ReportRenderWorker(record)
	case domain.ClassWebsite:
		err = h.board.ReportWebsite(record)
	}
	if err != nil {
		return fmt.Errorf("postHeartbeat failed to report %s heartbeat, err: %w", record.Class, err)
	}

	return ectx.NoContent(http.StatusOK)
}

// GetStatus (GET /v1/status) returns a snapshot of the fleet.
func (h *HTTPServer) GetStatus(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toStatusResponse(h.board.Snapshot()))
}

// EvictInstance (POST /v1/evict/{class}/{key}) removes an instance. Returns 404 when no such instance is registered.
func (h *HTTPServer) EvictInstance(ectx echo.Context, class EvictableClass, key string) error {
	classKey, err := fromEvictParams(class, key)
	if err != nil {
		return fmt.Errorf("evictInstance failed to convert params to key, err: %w", err)
	}

	if !registered(h.board.Snapshot(), classKey) {
		return service.NewEntityNotFoundError(fmt.Sprintf("no %s instance with key '%s'", class, key), nil)
	}
	h.board.Evict(classKey)

	_ = level.Info(h.logger).Log("msg", "Instance evicted on request", "class", class, "key", key)
	return ectx.NoContent(http.StatusOK)
}

// registered reports whether status holds an instance in slot key. For the website the key must name the current instance.
func registered(status domain.NetworkStatus, key domain.ClassKey) bool {
	switch key.Class {
	case domain.ClassBotShard:
		for _, r := range status.BotShards {
			if r.ShardIndex == key.ShardIndex {
				return true
			}
		}
	case domain.ClassRenderWorker:
		for _, r := range status.RenderWorkers {
			if r.InstanceID == key.InstanceID {
				return true
			}
		}
	case domain.ClassWebsite:
		return status.Website != nil && status.Website.InstanceID == key.InstanceID
	}
	return false
}
