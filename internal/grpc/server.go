package grpc

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/logging"
	"github.com/csaide/riftdb/internal/store"
)

// Config holds the dependencies for the unified gRPC server.
type Config struct {
	Registry *Registry
	Store    store.Store
}

// Server hosts the PubSub, Topics, Subscriptions, and KV services on one
// listener, together with grpc health and reflection.
type Server struct {
	pubSub        *PubSubServer
	topics        *TopicServer
	subscriptions *SubscriptionServer
	kv            *KVServer
	grpcServer    *grpc.Server
	listener      net.Listener
}

// NewServer creates the unified gRPC server with all services registered.
func NewServer(cfg *Config) *Server {
	pubSub := NewPubSubServer(cfg.Registry)
	topics := NewTopicServer(cfg.Registry)
	subscriptions := NewSubscriptionServer(cfg.Registry)
	kv := NewKVServer(cfg.Store)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(loggingInterceptor),
		grpc.ChainStreamInterceptor(streamLoggingInterceptor),
	)

	riftpb.RegisterPubSubServer(grpcServer, pubSub)
	riftpb.RegisterTopicsServer(grpcServer, topics)
	riftpb.RegisterSubscriptionsServer(grpcServer, subscriptions)
	riftpb.RegisterKVServer(grpcServer, kv)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, service := range []string{"rift.v1.PubSub", "rift.v1.Topics", "rift.v1.Subscriptions", "rift.v1.KV"} {
		healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	// Enable reflection for grpcurl and friends.
	reflection.Register(grpcServer)

	return &Server{
		pubSub:        pubSub,
		topics:        topics,
		subscriptions: subscriptions,
		kv:            kv,
		grpcServer:    grpcServer,
	}
}

// Start starts the gRPC server on the given address.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	s.listener = lis
	logging.Op().Info("gRPC server listening", "addr", addr)

	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			logging.Op().Error("gRPC server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	if s.grpcServer != nil {
		logging.Op().Info("stopping gRPC server")
		s.grpcServer.GracefulStop()
	}
}
