// Package healthserver provides a shared health/metrics server for Kubernetes probes.
package healthserver

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server is a health/metrics endpoint, separate from the main suggest API
// listener so that probes keep working even if the main mux is saturated.
type Server struct {
	logger *zap.Logger
	srv    *http.Server
}

// Start starts a health/metrics server on the specified port. This provides:
//   - /healthz - Kubernetes liveness probe (always returns 200 if process is alive)
//   - /readyz  - Kubernetes readiness probe (calls readyChecker to verify readiness)
//   - /metrics - Prometheus metrics endpoint
//
// The server runs in a goroutine and does not block. Call Shutdown to stop it.
func Start(logger *zap.Logger, addr string, readyChecker func() bool) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if readyChecker != nil && readyChecker() {
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("ready")); err != nil {
				logger.Error("failed to write ready response", zap.Error(err))
			}
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("not ready")); err != nil {
				logger.Error("failed to write not ready response", zap.Error(err))
			}
		}
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 40 * time.Second,
	}

	s := &Server{logger: logger, srv: srv}

	go func() {
		logger.Info("starting health/metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("health server error", zap.Error(err))
		}
	}()

	return s
}

// Shutdown gracefully stops the health/metrics server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
