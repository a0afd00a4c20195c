// Package httpapi serves the observability HTTP surface of the daemon:
// Prometheus metrics plus liveness and readiness probes.
package httpapi

import (
	"net/http"

	"github.com/csaide/riftdb/internal/logging"
	"github.com/csaide/riftdb/internal/metrics"
	"github.com/csaide/riftdb/internal/observability"
)

// Router returns the handler for the observability endpoints: GET /metrics,
// GET /live, GET /ready. Any other path is a 404; another method on one of
// these paths is a 405.
func Router() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /live", noContent)
	mux.HandleFunc("GET /ready", noContent)
	return observability.HTTPMiddleware(mux)
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// StartServer creates and starts the HTTP server on addr. The caller owns
// shutdown.
func StartServer(addr string) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: Router(),
	}

	go func() {
		logging.Op().Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Op().Error("HTTP server error", "error", err)
		}
	}()

	return srv
}
