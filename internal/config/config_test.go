package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Daemon.GRPCAddr != "[::]:8081" {
		t.Fatalf("expected default gRPC addr [::]:8081, got %q", cfg.Daemon.GRPCAddr)
	}
	if cfg.Daemon.HTTPAddr != "[::]:8080" {
		t.Fatalf("expected default HTTP addr [::]:8080, got %q", cfg.Daemon.HTTPAddr)
	}
	if cfg.Broker.LeaseTTL != 10*time.Second {
		t.Fatalf("expected default lease ttl 10s, got %v", cfg.Broker.LeaseTTL)
	}
	if !cfg.Observability.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
	if cfg.Observability.Tracing.Enabled {
		t.Fatal("expected tracing disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rift.json")
	body := `{"daemon":{"grpc_addr":"127.0.0.1:9999","log_format":"json"},"broker":{"max_slots":64}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Daemon.GRPCAddr != "127.0.0.1:9999" {
		t.Fatalf("expected file override for gRPC addr, got %q", cfg.Daemon.GRPCAddr)
	}
	if cfg.Daemon.LogFormat != "json" {
		t.Fatalf("expected file override for log format, got %q", cfg.Daemon.LogFormat)
	}
	if cfg.Broker.MaxSlots != 64 {
		t.Fatalf("expected file override for max slots, got %d", cfg.Broker.MaxSlots)
	}
	// Untouched keys keep their defaults.
	if cfg.Daemon.HTTPAddr != "[::]:8080" {
		t.Fatalf("expected default HTTP addr to survive, got %q", cfg.Daemon.HTTPAddr)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RIFT_GRPC_ADDR", "[::1]:7070")
	t.Setenv("RIFT_LOG_LEVEL", "debug")
	t.Setenv("RIFT_LEASE_TTL", "250ms")
	t.Setenv("RIFT_TRACING_ENABLED", "true")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)

	if cfg.Daemon.GRPCAddr != "[::1]:7070" {
		t.Fatalf("expected env override for gRPC addr, got %q", cfg.Daemon.GRPCAddr)
	}
	if cfg.Daemon.LogLevel != "debug" {
		t.Fatalf("expected env override for log level, got %q", cfg.Daemon.LogLevel)
	}
	if cfg.Broker.LeaseTTL != 250*time.Millisecond {
		t.Fatalf("expected env override for lease ttl, got %v", cfg.Broker.LeaseTTL)
	}
	if !cfg.Observability.Tracing.Enabled {
		t.Fatal("expected env override to enable tracing")
	}
}
