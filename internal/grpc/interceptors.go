package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/internal/logging"
	"github.com/csaide/riftdb/internal/metrics"
)

// requestID returns the client-supplied x-request-id, or mints a fresh one.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("x-request-id"); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.New().String()
}

// loggingInterceptor logs all unary gRPC requests and records the request
// counter and latency histogram.
func loggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	logger := logging.WithRequestID(requestID(ctx))

	logger.Debug("gRPC request started", "method", info.FullMethod)

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	code := status.Code(err)
	metrics.RecordRequest(info.FullMethod, code.String(), duration)

	if err != nil {
		logger.Error("gRPC request failed",
			"method", info.FullMethod,
			"duration", duration,
			"code", code.String(),
			"error", err,
		)
	} else {
		logger.Info("gRPC request completed",
			"method", info.FullMethod,
			"duration", duration,
		)
	}

	return resp, err
}

// streamLoggingInterceptor is the streaming counterpart of
// loggingInterceptor. Durations here cover the whole stream life, so the
// latency histogram only receives unary observations.
func streamLoggingInterceptor(
	srv interface{},
	ss grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {
	start := time.Now()
	logger := logging.WithRequestID(requestID(ss.Context()))

	logger.Info("gRPC stream opened", "method", info.FullMethod)

	err := handler(srv, ss)

	duration := time.Since(start)
	code := status.Code(err)
	metrics.RecordRequest(info.FullMethod, code.String(), 0)

	if err != nil {
		logger.Error("gRPC stream closed",
			"method", info.FullMethod,
			"duration", duration,
			"code", code.String(),
			"error", err,
		)
	} else {
		logger.Info("gRPC stream closed",
			"method", info.FullMethod,
			"duration", duration,
		)
	}

	return err
}
