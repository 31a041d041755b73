package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath          = "CONFIG_PATH"
	envHTTPPort            = "SERVICE_PORT_HTTP"
	envGRPCPort            = "SERVICE_PORT_GRPC"
	envDatastoreType       = "DATASTORE_TYPE"
	envDatastoreDSN        = "DATASTORE_DSN"
	envRedisAddr           = "REDIS_ADDR"
	envAggregationInterval = "AGGREGATION_INTERVAL"
	envStaleThreshold      = "STALE_THRESHOLD"
	envQueryTimeout        = "QUERY_TIMEOUT"
	envUseRestartService   = "USE_RESTART_SERVICE"
	envRestartServiceURL   = "RESTART_SERVICE_URL"
)

// Data store types.
const (
	datastorePostgres = "postgres"
	datastoreSQLite   = "sqlite"
	datastoreRedis    = "redis"
)

const defaultSQLitePath = "supervisor.db"

// Config holds the supervisor configuration loaded by LoadConfig.
type Config struct {
	HTTPPort  int
	GRPCPort  int
	Datastore DatastoreConfig
	Fleet     FleetConfig
	Restart   RestartConfig
}

// DatastoreConfig selects the source of the calendar and announcement counters.
type DatastoreConfig struct {
	Type      string
	DSN       string
	RedisAddr string
}

// FleetConfig holds the aggregation and staleness timings.
type FleetConfig struct {
	AggregationInterval time.Duration
	StaleThreshold      time.Duration
	QueryTimeout        time.Duration
}

// RestartConfig selects the restart policy.
type RestartConfig struct {
	Enabled    bool
	ServiceURL string
}

type yamlConfig struct {
	HTTPPort  int           `yaml:"http_port"`
	GRPCPort  int           `yaml:"grpc_port"`
	Datastore yamlDatastore `yaml:"datastore"`
	Fleet     yamlFleet     `yaml:"fleet"`
	Restart   yamlRestart   `yaml:"restart"`
}

type yamlDatastore struct {
	Type      string `yaml:"type"`
	DSN       string `yaml:"dsn"`
	RedisAddr string `yaml:"redis_addr"`
}

type yamlFleet struct {
	AggregationInterval string `yaml:"aggregation_interval"`
	StaleThreshold      string `yaml:"stale_threshold"`
	QueryTimeout        string `yaml:"query_timeout"`
}

type yamlRestart struct {
	Enabled    bool   `yaml:"enabled"`
	ServiceURL string `yaml:"service_url"`
}

func defaultConfig() *Config {
	return &Config{
		Datastore: DatastoreConfig{Type: datastoreSQLite},
		Fleet: FleetConfig{
			AggregationInterval: time.Minute,
			StaleThreshold:      5 * time.Minute,
			QueryTimeout:        10 * time.Second,
		},
	}
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the configuration from defaults, the optional YAML file at CONFIG_PATH and environment variables,
// in that order of precedence (environment wins).
//
// Returns: (*Config, nil) on success; (nil, error) naming the offending variable on an invalid or missing value.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return nil, err
		}
		raw, err := loadYAMLConfig(abs)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", abs, err)
		}
		if err := applyYAML(cfg, raw); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyYAML(cfg *Config, raw *yamlConfig) error {
	if raw.HTTPPort != 0 {
		cfg.HTTPPort = raw.HTTPPort
	}
	if raw.GRPCPort != 0 {
		cfg.GRPCPort = raw.GRPCPort
	}
	if raw.Datastore.Type != "" {
		cfg.Datastore.Type = raw.Datastore.Type
	}
	if raw.Datastore.DSN != "" {
		cfg.Datastore.DSN = raw.Datastore.DSN
	}
	if raw.Datastore.RedisAddr != "" {
		cfg.Datastore.RedisAddr = raw.Datastore.RedisAddr
	}

	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"fleet.aggregation_interval", raw.Fleet.AggregationInterval, &cfg.Fleet.AggregationInterval},
		{"fleet.stale_threshold", raw.Fleet.StaleThreshold, &cfg.Fleet.StaleThreshold},
		{"fleet.query_timeout", raw.Fleet.QueryTimeout, &cfg.Fleet.QueryTimeout},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		v, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = v
	}

	cfg.Restart.Enabled = raw.Restart.Enabled
	if raw.Restart.ServiceURL != "" {
		cfg.Restart.ServiceURL = raw.Restart.ServiceURL
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if err := envInt(envHTTPPort, &cfg.HTTPPort); err != nil {
		return err
	}
	if err := envInt(envGRPCPort, &cfg.GRPCPort); err != nil {
		return err
	}
	envString(envDatastoreType, &cfg.Datastore.Type)
	envString(envDatastoreDSN, &cfg.Datastore.DSN)
	envString(envRedisAddr, &cfg.Datastore.RedisAddr)
	if err := envDuration(envAggregationInterval, &cfg.Fleet.AggregationInterval); err != nil {
		return err
	}
	if err := envDuration(envStaleThreshold, &cfg.Fleet.StaleThreshold); err != nil {
		return err
	}
	if err := envDuration(envQueryTimeout, &cfg.Fleet.QueryTimeout); err != nil {
		return err
	}
	if v := strings.TrimSpace(os.Getenv(envUseRestartService)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envUseRestartService, err)
		}
		cfg.Restart.Enabled = enabled
	}
	envString(envRestartServiceURL, &cfg.Restart.ServiceURL)
	return nil
}

func validate(cfg *Config) error {
	if cfg.HTTPPort == 0 {
		return fmt.Errorf("%s is required", envHTTPPort)
	}
	if cfg.HTTPPort < 0 || cfg.HTTPPort > 65535 {
		return fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, cfg.HTTPPort)
	}
	if cfg.GRPCPort < 0 || cfg.GRPCPort > 65535 {
		return fmt.Errorf("%s must be 0-65535, got %d", envGRPCPort, cfg.GRPCPort)
	}

	cfg.Datastore.Type = strings.ToLower(cfg.Datastore.Type)
	switch cfg.Datastore.Type {
	case datastoreSQLite:
		if cfg.Datastore.DSN == "" {
			cfg.Datastore.DSN = defaultSQLitePath
		}
	case datastorePostgres:
		if cfg.Datastore.DSN == "" {
			return fmt.Errorf("%s is required for %s=%s", envDatastoreDSN, envDatastoreType, datastorePostgres)
		}
	case datastoreRedis:
		if cfg.Datastore.RedisAddr == "" {
			return fmt.Errorf("%s is required for %s=%s", envRedisAddr, envDatastoreType, datastoreRedis)
		}
	default:
		return fmt.Errorf("%s must be one of postgres, sqlite, redis, got %q", envDatastoreType, cfg.Datastore.Type)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{envAggregationInterval, cfg.Fleet.AggregationInterval},
		{envStaleThreshold, cfg.Fleet.StaleThreshold},
		{envQueryTimeout, cfg.Fleet.QueryTimeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", p.name, p.value)
		}
	}

	if cfg.Restart.Enabled && cfg.Restart.ServiceURL == "" {
		return fmt.Errorf("%s is required when %s is enabled", envRestartServiceURL, envUseRestartService)
	}
	cfg.Restart.ServiceURL = strings.TrimRight(cfg.Restart.ServiceURL, "/")
	return nil
}

func envString(name string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = n
	return nil
}

func envDuration(name string, dst *time.Duration) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d
	return nil
}
