package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/docrtf/internal/config"
	"github.com/dgallion1/docrtf/internal/pipeline"
	"github.com/dgallion1/docrtf/internal/translator"
)

// Server is the HTTP API server for docrtf.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	catalog      *translator.Catalog
	metrics      http.Handler
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. metrics serves the
// Prometheus scrape endpoint; nil leaves /metrics unrouted.
func NewServer(orch *pipeline.Orchestrator, catalog *translator.Catalog, metrics http.Handler, log *slog.Logger, cfg config.Config) *Server {
	if catalog == nil {
		catalog = translator.Default()
	}
	s := &Server{
		orchestrator: orch,
		catalog:      catalog,
		metrics:      metrics,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocrtfAPIKey, s.log))

		r.Post("/api/render", s.handleRender)
		r.Post("/api/render/batch", s.handleBatchRender)
		r.Get("/api/render/{jobID}/status", s.handleRenderStatus)
		r.Get("/api/render/{jobID}/result", s.handleRenderResult)
		r.Get("/api/stats/render", s.handleRenderStats)

		r.Get("/api/locales", s.handleLocales)
		r.Post("/api/members/sections", s.handleMemberSections)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
