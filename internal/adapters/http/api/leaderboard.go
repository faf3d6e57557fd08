// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/internal/view"
)

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	LoadCategories(ctx context.Context) ([]string, error)
	LoadLeaderboards(ctx context.Context, category string) (types.Leaderboards, error)
}

// LeaderboardHandler handles category and leaderboard requests.
type LeaderboardHandler struct {
	deps LeaderboardDependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

type leaderboardsResponse struct {
	Category    string     `json:"category"`
	Marketplace []view.Row `json:"marketplace"`
	FairFound   []view.Row `json:"fairfound"`
	Fallback    bool       `json:"fallback"`
}

// HandleGetCategories handles GET /api/categories requests.
func (h *LeaderboardHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cats, err := h.deps.LoadCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "load_failed", fmt.Errorf("%w: %w", ErrUpstream, err))
		return
	}
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// HandleGetLeaderboards handles GET /api/leaderboards?category=X requests.
func (h *LeaderboardHandler) HandleGetLeaderboards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	lb, err := h.deps.LoadLeaderboards(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "load_failed", fmt.Errorf("%w: %w", ErrUpstream, err))
		return
	}
	writeJSON(w, http.StatusOK, leaderboardsResponse{
		Category:    lb.Category,
		Marketplace: view.LeaderboardRows(lb.Marketplace),
		FairFound:   view.LeaderboardRows(lb.FairFound),
		Fallback:    lb.Fallback,
	})
}
