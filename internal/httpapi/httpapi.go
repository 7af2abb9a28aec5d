// Package httpapi wires the search redirect, OpenSearch suggestions, and
// OpenSearch descriptor endpoints onto a stdlib ServeMux, with Prometheus
// request metrics and zap access logging.
package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	json "github.com/bangdash/bangsuggest/internal/jsonutil"
	"github.com/bangdash/bangsuggest/internal/opensearch"
	"github.com/bangdash/bangsuggest/internal/suggest"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bangsuggest_http_requests_total",
		Help: "Total HTTP requests by route and status class.",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bangsuggest_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// Server holds the dependencies the HTTP handlers need.
type Server struct {
	suggestSvc *suggest.Service
	logger     *zap.Logger
}

// New constructs an httpapi.Server.
func New(suggestSvc *suggest.Service, logger *zap.Logger) *Server {
	return &Server{suggestSvc: suggestSvc, logger: logger}
}

// Routes returns the configured ServeMux: GET /search, GET /api/suggest, and
// GET /opensearch.xml.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", s.instrument("search", s.handleSearch))
	mux.HandleFunc("GET /api/suggest", s.instrument("suggest", s.handleSuggest))
	mux.HandleFunc("GET /opensearch.xml", s.instrument("opensearch", s.handleOpenSearch))
	return mux
}

// instrument wraps a handler with a request-id (for correlated log lines)
// and Prometheus request metrics.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h(rec, r)

		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(route, statusClass(rec.status)).Inc()
		s.logger.Debug("request",
			zap.String("request_id", reqID),
			zap.String("route", route),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// handleSearch implements GET /search: 303 redirect to the
// bang-resolved URL. A missing or empty q redirects to the default engine's
// home page (bang.Resolve already degrades to that).
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	target := resolveSearch(q)
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleSuggest implements GET /api/suggest, writing the OpenSearch
// suggestions wire format: [query, [suggestions...]].
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/x-suggestions+json; charset=utf-8")

	if q == "" {
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode([]any{"", []string{}})
		return
	}

	echoed, results := s.suggestSvc.HandleSuggest(r.Context(), q, r.Header.Get("Accept-Language"))
	w.Header().Set("Cache-Control", "public, max-age=60, stale-while-revalidate=30")
	if err := json.NewEncoder(w).Encode([]any{echoed, results}); err != nil {
		s.logger.Warn("failed to encode suggest response", zap.Error(err))
	}
}

func (s *Server) handleOpenSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/opensearchdescription+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := opensearch.WriteDescriptor(w, requestOrigin(r)); err != nil {
		s.logger.Warn("failed to write opensearch descriptor", zap.Error(err))
	}
}

// requestOrigin derives the scheme://host the client used to reach this
// server from the inbound request, so the OpenSearch descriptor's URL
// templates resolve correctly behind any hostname the server is exposed
// under. A reverse proxy that terminates TLS is expected to set
// X-Forwarded-Proto; r.TLS is authoritative when this process terminates
// TLS itself.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	} else if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
