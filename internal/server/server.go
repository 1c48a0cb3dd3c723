package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/ironplan/internal/planner"
	"github.com/claude/ironplan/internal/prledger"
	"github.com/claude/ironplan/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	plans  *planner.Service
	ledger *prledger.Ledger
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, plans *planner.Service, ledger *prledger.Ledger, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		plans:  plans,
		ledger: ledger,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/plan/generate", s.handleGeneratePlan)
		r.Post("/api/v1/sets/complete", s.handleCompleteSet)
		r.Post("/api/v1/prs", s.handleManualPR)
	})

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/plan", s.handleGetPlan)
	s.router.Get("/api/v1/plan/days/{id}", s.handleGetDay)
	s.router.Get("/api/v1/prs", s.handlePRHistory)
	s.router.Get("/api/v1/prs/suggest", s.handleSuggestWeight)
	s.router.Get("/api/v1/catalog/exercises", s.handleListExercises)
	s.router.Get("/api/v1/benchmarks", s.handleListBenchmarks)
	s.router.Get("/api/v1/health", s.handleHealth)
}

// Mount attaches an extra handler subtree (the MCP endpoint).
func (s *Server) Mount(pattern string, h http.Handler) {
	s.router.Mount(pattern, h)
}
