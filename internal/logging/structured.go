package logging

import (
	"log/slog"
	"os"
)

// InitStructured reconfigures the operational logger based on format settings.
// format: "text" (default) or "json" (Loki/ELK compatible)
// level: "debug", "info", "warn", "error"
func InitStructured(format, level string) {
	SetLevelFromString(level)

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	opLogger.Store(slog.New(handler))
}

// WithRequestID returns the operational logger with the request id attached,
// for request-scoped logs inside gRPC handlers.
func WithRequestID(requestID string) *slog.Logger {
	if requestID == "" {
		return opLogger.Load()
	}
	return opLogger.Load().With("request_id", requestID)
}
