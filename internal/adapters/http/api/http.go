// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/fairfound/internal/domain/types"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	LoadCategories(ctx context.Context) ([]string, error)
	LoadLeaderboards(ctx context.Context, category string) (types.Leaderboards, error)
	Compare(ctx context.Context, url1, url2 string) (types.Comparison, error)
}

// Server wires HTTP routes for the JSON API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	leaderboardHandler *LeaderboardHandler
	compareHandler     *CompareHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		leaderboardHandler: NewLeaderboardHandler(deps),
		compareHandler:     NewCompareHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/categories", MetricsMiddleware(s.leaderboardHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/api/leaderboards", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboards, "leaderboards"))
	mux.HandleFunc("/api/compare", MetricsMiddleware(s.compareHandler.HandlePostCompare, "compare"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
