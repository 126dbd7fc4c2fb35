// Package server exposes the analyzer over HTTP: submit a survey record,
// get back the stored assessment with scores, diagnoses, recommendations
// and the 90-day plan.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/benchmark"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/engine"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/store"
)

// Options configures the HTTP server.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration // default 30s
}

// Server wires the analysis engine and the store behind the HTTP API.
type Server struct {
	analyzer   *engine.Analyzer
	benchmarks *benchmark.Table
	store      store.Store
	opts       Options
}

// New creates a Server. A nil benchmark table falls back to the built-in
// one, matching the engine's behavior.
func New(analyzer *engine.Analyzer, table *benchmark.Table, st store.Store, opts Options) *Server {
	if table == nil {
		table = benchmark.Default()
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Server{analyzer: analyzer, benchmarks: table, store: st, opts: opts}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyses", s.handleCreateAnalysis)
		r.Get("/analyses", s.handleListAnalyses)
		r.Get("/analyses/{id}", s.handleGetAnalysis)
		r.Get("/benchmarks/{sector}", s.handleGetBenchmark)
	})

	return r
}
