// Package server exposes the volume limit calculators over HTTP.
//
// The calculators themselves never log or format output; everything
// presentational lives here.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Options configures a Server.
type Options struct {
	// RateLimitRPS and RateLimitBurst bound each client's request
	// budget. A zero RPS disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server is the HTTP surface of the limits service.
type Server struct {
	logger   zerolog.Logger
	metrics  *Metrics
	limiter  *clientLimiter
	registry *prometheus.Registry
}

// New creates a Server with its own Prometheus registry.
func New(logger zerolog.Logger, opts Options) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		logger:   logger,
		metrics:  NewMetrics(registry),
		registry: registry,
	}
	if opts.RateLimitRPS > 0 {
		burst := opts.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = newClientLimiter(opts.RateLimitRPS, burst)
	}
	return s
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/limits/{type}", s.handleLimits)
	mux.HandleFunc("GET /v1/volume-types", s.handleVolumeTypes)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	var handler http.Handler = mux
	if s.limiter != nil {
		handler = rateLimit(s.limiter, s.metrics, handler)
	}
	handler = requestLogger(s.logger, handler)
	handler = requestID(handler)
	return handler
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok\n")); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write health response")
	}
}
