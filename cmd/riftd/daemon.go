package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/config"
	riftgrpc "github.com/csaide/riftdb/internal/grpc"
	"github.com/csaide/riftdb/internal/httpapi"
	"github.com/csaide/riftdb/internal/logging"
	"github.com/csaide/riftdb/internal/metrics"
	"github.com/csaide/riftdb/internal/observability"
	"github.com/csaide/riftdb/internal/pubsub"
	"github.com/csaide/riftdb/internal/store"
)

func rootCmd() *cobra.Command {
	var (
		configFile string
		grpcAddr   string
		httpAddr   string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "riftd",
		Short: "Run an instance of riftd",
		Long:  "riftd is an in-memory pub/sub broker with at-least-once delivery over gRPC",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configFile != "" {
				var err error
				cfg, err = config.LoadFromFile(configFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			config.LoadFromEnv(cfg)

			if cmd.Flags().Changed("grpc-addr") {
				cfg.Daemon.GRPCAddr = grpcAddr
			}
			if cmd.Flags().Changed("http-addr") {
				cfg.Daemon.HTTPAddr = httpAddr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Daemon.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Daemon.LogFormat = logFormat
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to config file (optional, flags override)")
	cmd.Flags().StringVarP(&grpcAddr, "grpc-addr", "g", "[::]:8081", "The address to listen on for incoming gRPC requests")
	cmd.Flags().StringVarP(&httpAddr, "http-addr", "a", "[::]:8080", "The address to listen on for incoming HTTP requests")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log output format (text, json)")

	return cmd
}

func run(cfg *config.Config) error {
	logging.InitStructured(cfg.Daemon.LogFormat, cfg.Daemon.LogLevel)

	if err := observability.Init(context.Background(), observability.Config{
		Enabled:     cfg.Observability.Tracing.Enabled,
		Exporter:    cfg.Observability.Tracing.Exporter,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		ServiceName: cfg.Observability.Tracing.ServiceName,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
	}); err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.Shutdown(context.Background())

	if cfg.Observability.Metrics.Enabled {
		metrics.Init(cfg.Observability.Metrics.Namespace)
		pubsub.SetMetrics(metrics.Broker())
	}

	registry := pubsub.NewRegistry[*riftpb.Message](pubsub.QueueConfig{
		SlotCapacity:  cfg.Broker.SlotCapacity,
		WakerCapacity: cfg.Broker.WakerCapacity,
		TTL:           cfg.Broker.LeaseTTL,
		MaxSlots:      cfg.Broker.MaxSlots,
	})

	grpcServer := riftgrpc.NewServer(&riftgrpc.Config{
		Registry: registry,
		Store:    store.NewHashStore(),
	})
	if err := grpcServer.Start(cfg.Daemon.GRPCAddr); err != nil {
		return fmt.Errorf("start gRPC server: %w", err)
	}

	httpServer := httpapi.StartServer(cfg.Daemon.HTTPAddr)

	logging.Op().Info("fully initialized and listening",
		"grpc_addr", cfg.Daemon.GRPCAddr,
		"http_addr", cfg.Daemon.HTTPAddr,
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	received := <-sig
	logging.Op().Info("shutting down", "signal", received.String())

	grpcServer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logging.Op().Warn("HTTP server shutdown", "error", err)
	}

	return nil
}
