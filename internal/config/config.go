// Package config holds the riftd configuration: listen addresses, logging,
// broker defaults, and observability settings. Precedence is config file,
// then environment, then command line flags.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// DaemonConfig holds daemon-specific settings.
type DaemonConfig struct {
	GRPCAddr  string `json:"grpc_addr"`  // Listen address for gRPC requests
	HTTPAddr  string `json:"http_addr"`  // Listen address for HTTP requests
	LogLevel  string `json:"log_level"`  // debug, info, warn, error
	LogFormat string `json:"log_format"` // text, json
}

// BrokerConfig holds the pub/sub substrate settings.
type BrokerConfig struct {
	LeaseTTL      time.Duration `json:"lease_ttl"`      // Lease TTL for delivered messages (default: 10s)
	SlotCapacity  int           `json:"slot_capacity"`  // Initial slot capacity per queue
	WakerCapacity int           `json:"waker_capacity"` // Initial waker capacity per queue
	MaxSlots      int           `json:"max_slots"`      // Bound per queue; 0 means unbounded
}

// TracingConfig holds OpenTelemetry tracing settings.
type TracingConfig struct {
	Enabled     bool    `json:"enabled"`      // Default: false
	Exporter    string  `json:"exporter"`     // otlp-http, stdout
	Endpoint    string  `json:"endpoint"`     // localhost:4318
	ServiceName string  `json:"service_name"` // rift
	SampleRate  float64 `json:"sample_rate"`  // 1.0
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`   // Default: true
	Namespace string `json:"namespace"` // rift
}

// ObservabilityConfig holds all observability-related settings.
type ObservabilityConfig struct {
	Tracing TracingConfig `json:"tracing"`
	Metrics MetricsConfig `json:"metrics"`
}

// Config is the central configuration struct embedding all component configs.
type Config struct {
	Daemon        DaemonConfig        `json:"daemon"`
	Broker        BrokerConfig        `json:"broker"`
	Observability ObservabilityConfig `json:"observability"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Daemon: DaemonConfig{
			GRPCAddr:  "[::]:8081",
			HTTPAddr:  "[::]:8080",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Broker: BrokerConfig{
			LeaseTTL: 10 * time.Second,
		},
		Observability: ObservabilityConfig{
			Tracing: TracingConfig{
				Enabled:     false,
				Exporter:    "otlp-http",
				Endpoint:    "localhost:4318",
				ServiceName: "rift",
				SampleRate:  1.0,
			},
			Metrics: MetricsConfig{
				Enabled:   true,
				Namespace: "rift",
			},
		},
	}
}

// LoadFromFile loads config from a JSON file, layered over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv applies environment variable overrides to the config.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("RIFT_GRPC_ADDR"); v != "" {
		cfg.Daemon.GRPCAddr = v
	}
	if v := os.Getenv("RIFT_HTTP_ADDR"); v != "" {
		cfg.Daemon.HTTPAddr = v
	}
	if v := os.Getenv("RIFT_LOG_LEVEL"); v != "" {
		cfg.Daemon.LogLevel = v
	}
	if v := os.Getenv("RIFT_LOG_FORMAT"); v != "" {
		cfg.Daemon.LogFormat = v
	}
	if v := os.Getenv("RIFT_LEASE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Broker.LeaseTTL = d
		}
	}
	if v := os.Getenv("RIFT_MAX_SLOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Broker.MaxSlots = n
		}
	}

	// Observability overrides
	if v := os.Getenv("RIFT_TRACING_ENABLED"); v != "" {
		cfg.Observability.Tracing.Enabled = parseBool(v)
	}
	if v := os.Getenv("RIFT_TRACING_EXPORTER"); v != "" {
		cfg.Observability.Tracing.Exporter = v
	}
	if v := os.Getenv("RIFT_TRACING_ENDPOINT"); v != "" {
		cfg.Observability.Tracing.Endpoint = v
	}
	if v := os.Getenv("RIFT_TRACING_SERVICE_NAME"); v != "" {
		cfg.Observability.Tracing.ServiceName = v
	}
	if v := os.Getenv("RIFT_TRACING_SAMPLE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Observability.Tracing.SampleRate = f
		}
	}
	if v := os.Getenv("RIFT_METRICS_ENABLED"); v != "" {
		cfg.Observability.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("RIFT_METRICS_NAMESPACE"); v != "" {
		cfg.Observability.Metrics.Namespace = v
	}
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
