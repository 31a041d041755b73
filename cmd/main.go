package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mysupervisor/adapters"
	"mysupervisor/adapters/myredis"
	"mysupervisor/adapters/observability"
	"mysupervisor/adapters/sqlstore"
	"mysupervisor/handlers"
	"mysupervisor/interfaces"
	"mysupervisor/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MySupervisor service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"datastore", config.Datastore.Type,
		"aggregation_interval", config.Fleet.AggregationInterval,
		"stale_threshold", config.Fleet.StaleThreshold,
		"use_restart_service", config.Restart.Enabled,
	)

	clock := service.NewTimeProvider(func() time.Time {
		return time.Now().UTC()
	})

	// Count source
	var (
		counts    interfaces.CountSource
		closeData io.Closer
	)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		counts, closeData, err = newCountSource(ctx, config.Datastore)
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to open data store", "datastore", config.Datastore.Type, "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to data store", "datastore", config.Datastore.Type)
	}

	// Metrics
	var (
		registry *prometheus.Registry
		metrics  interfaces.FleetMetrics
	)
	{
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = observability.NewPromMetrics(registry)
	}

	// Fleet supervision
	var (
		fleet     *service.FleetRegistry
		scheduler *service.AggregationScheduler
	)
	{
		selfID := uuid.NewString()
		fleet = service.NewFleetRegistry(selfID, clock, logger)

		var restarter interfaces.RestartService
		if config.Restart.Enabled {
			restarter = adapters.RestartServiceHTTP(config.Restart.ServiceURL, &http.Client{Timeout: 10 * time.Second})
		}
		policy := service.NewRestartPolicy(config.Restart.Enabled, restarter, fleet, metrics, logger)

		sweeper := service.NewStalenessSweeper(
			fleet,
			policy,
			clock,
			config.Fleet.StaleThreshold,
			metrics,
			logger,
		)
		scheduler = service.NewAggregationScheduler(
			fleet,
			counts,
			sweeper,
			clock,
			config.Fleet.AggregationInterval,
			config.Fleet.QueryTimeout,
			metrics,
			logger,
		)
		level.Info(logger).Log("msg", "Fleet registry ready", "self_id", selfID, "restart_policy", policy.Name())
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewRequestValidator()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		e.Use(validator)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(fleet, logger))
	}

	// Optional gRPC health endpoint
	var (
		grpcServer   *grpc.Server
		healthServer *health.Server
		lis          net.Listener
	)
	if config.GRPCPort != 0 {
		lis, err = net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}
		grpcServer, healthServer = newHealthGRPCServer()
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First aggregation before serving so the status starts populated.
	scheduler.RunOnce(ctx)
	scheduler.Start(ctx)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	if grpcServer != nil {
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	if healthServer != nil {
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	scheduler.Stop()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	if err := closeData.Close(); err != nil {
		level.Error(logger).Log("msg", "Error closing data store", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// newCountSource opens the configured data store and returns the counter queries over it
// together with the handle to close on shutdown.
func newCountSource(ctx context.Context, cfg DatastoreConfig) (interfaces.CountSource, io.Closer, error) {
	switch cfg.Type {
	case datastoreRedis:
		client, err := myredis.NewRedisUniversalClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return myredis.NewCountSource(client), client, nil
	case datastorePostgres, datastoreSQLite:
		db, err := sqlstore.Open(ctx, sqlstore.Driver(cfg.Type), cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return sqlstore.NewCountSource(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported datastore %q", cfg.Type)
	}
}

func newHealthGRPCServer() (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	return grpcServer, healthServer
}
