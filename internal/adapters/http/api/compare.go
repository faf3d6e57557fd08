// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/internal/view"
)

const maxCompareBody = 1 << 16

// CompareDependencies defines the interface for comparisons.
type CompareDependencies interface {
	Compare(ctx context.Context, url1, url2 string) (types.Comparison, error)
}

// CompareHandler handles comparison requests.
type CompareHandler struct {
	deps CompareDependencies
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// compareRequest mirrors the OpenAPI schema for POST /api/compare.
type compareRequest struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}

type sideResponse struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Avatar string `json:"avatar"`
}

type metricResponse struct {
	Label  string  `json:"label"`
	Value1 float64 `json:"value1"`
	Value2 float64 `json:"value2"`
	Suffix string  `json:"suffix,omitempty"`
	Text1  string  `json:"text1"`
	Text2  string  `json:"text2"`
	Bar1   float64 `json:"bar1"`
	Bar2   float64 `json:"bar2"`
}

type compareResponse struct {
	Freelancer1 sideResponse     `json:"freelancer1"`
	Freelancer2 sideResponse     `json:"freelancer2"`
	Metrics     []metricResponse `json:"metrics"`
	Winner      string           `json:"winner"`
	Summary     string           `json:"summary"`
	Fallback    bool             `json:"fallback"`
}

// HandlePostCompare handles POST /api/compare requests.
func (h *CompareHandler) HandlePostCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req compareRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCompareBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}

	c, err := h.deps.Compare(r.Context(), req.URL1, req.URL2)
	if err != nil {
		if ve, ok := compare.AsValidation(err); ok {
			writeError(w, http.StatusBadRequest, "invalid_input", ve)
			return
		}
		writeError(w, http.StatusBadGateway, "comparison_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toCompareResponse(c))
}

func toCompareResponse(c types.Comparison) compareResponse {
	v := view.BuildComparison(c)
	metrics := make([]metricResponse, len(c.Metrics))
	for i, m := range c.Metrics {
		metrics[i] = metricResponse{
			Label:  m.Label,
			Value1: m.Value1,
			Value2: m.Value2,
			Suffix: m.Suffix,
			Text1:  v.Metrics[i].Text1,
			Text2:  v.Metrics[i].Text2,
			Bar1:   v.Metrics[i].Width1,
			Bar2:   v.Metrics[i].Width2,
		}
	}
	return compareResponse{
		Freelancer1: sideResponse{Name: v.Freelancer1.Name, URL: v.Freelancer1.URL, Avatar: v.Freelancer1.Avatar},
		Freelancer2: sideResponse{Name: v.Freelancer2.Name, URL: v.Freelancer2.URL, Avatar: v.Freelancer2.Avatar},
		Metrics:     metrics,
		Winner:      c.Winner,
		Summary:     v.Summary,
		Fallback:    c.Fallback,
	}
}
