// Package httpapi exposes the adaptation engine over JSON HTTP.
package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/attune/internal/service"
)

type Server struct {
	evaluation service.EvaluationService
	intake     service.IntakeService
	decisions  service.DecisionService
	db         *sql.DB
	logger     *slog.Logger
}

// NewServer builds the HTTP handler with all routes and middleware attached.
// db is only used for the health check ping; logger may be nil to disable
// access logs.
func NewServer(
	evaluation service.EvaluationService,
	intake service.IntakeService,
	decisions service.DecisionService,
	db *sql.DB,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		evaluation: evaluation,
		intake:     intake,
		decisions:  decisions,
		db:         db,
		logger:     logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/adaptation/evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /v1/moods", s.handleCreateMood)
	mux.HandleFunc("POST /v1/crisis-alerts", s.handleCreateAlert)
	mux.HandleFunc("POST /v1/technique-outcomes", s.handleCreateOutcome)
	mux.HandleFunc("GET /v1/decisions", s.handleListDecisions)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return chainMiddlewares(mux, s.withRequestLog, withCORS)
}
