// Package stubapi is a development stand-in for the FairFound backend. It
// serves categories, both rankings and comparisons from a built-in dataset
// and can fail a share of requests to exercise client fallbacks.
package stubapi

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"sort"
	"strings"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/mockdata"
	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/pkg/logger"
)

// Prefix is the path the API is mounted under, matching the default
// client base URL http://localhost:8000/api.
const Prefix = "/api"

const randomDivisor = 1000000

// Server answers backend requests.
type Server struct {
	profiles []Profile
	failRate float64
	random   func() float64
	logger   logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithFailRate answers the given fraction of requests with HTTP 500.
// Values are clamped to [0, 1].
func WithFailRate(rate float64) Option {
	return func(s *Server) {
		s.failRate = max(0, min(rate, 1))
	}
}

// WithProfiles replaces the built-in dataset.
func WithProfiles(p []Profile) Option {
	return func(s *Server) {
		if p != nil {
			s.profiles = p
		}
	}
}

// WithRandom sets the source of values in [0, 1) used for failure injection.
func WithRandom(fn func() float64) Option {
	return func(s *Server) {
		if fn != nil {
			s.random = fn
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a stub backend.
func New(opts ...Option) *Server {
	s := &Server{
		profiles: Dataset(),
		random:   randomFloat,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("stub-backend")
	}
	return s
}

// randomFloat returns a value in [0, 1) using crypto/rand.
func randomFloat() float64 {
	n, err := rand.Int(rand.Reader, big.NewInt(randomDivisor))
	if err != nil {
		return 1
	}
	return float64(n.Int64()) / randomDivisor
}

// Handler returns the routes under Prefix.
//
//	GET  /api/leaderboard/categories/
//	GET  /api/leaderboard/marketplace/?category=X
//	GET  /api/leaderboard/fairfound/?category=X
//	POST /api/compare/
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+Prefix+"/leaderboard/categories/", s.guard(s.handleCategories))
	mux.HandleFunc("GET "+Prefix+"/leaderboard/marketplace/", s.guard(s.handleBoard(types.BoardMarketplace)))
	mux.HandleFunc("GET "+Prefix+"/leaderboard/fairfound/", s.guard(s.handleBoard(types.BoardFairFound)))
	mux.HandleFunc("POST "+Prefix+"/compare/", s.guard(s.handleCompare))
	return mux
}

// guard injects failures and logs each request.
func (s *Server) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("request_id", r.Header.Get("X-Request-ID")),
		}
		if s.failRate > 0 && s.random() < s.failRate {
			s.logger.Info(r.Context(), "injecting failure", fields...)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": ErrInjected.Error()})
			return
		}
		s.logger.Debug(r.Context(), "request", fields...)
		next(w, r)
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Categories())
}

func (s *Server) handleBoard(board types.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Ranking(board, r.URL.Query().Get("category")))
	}
}

type compareRequest struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ErrBadRequest.Error() + ": " + err.Error()})
		return
	}
	if _, _, err := compare.Validate(req.URL1, req.URL2); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.Compare(strings.TrimSpace(req.URL1), strings.TrimSpace(req.URL2)))
}

// Categories returns the distinct specialties in dataset order.
func (s *Server) Categories() []string {
	seen := make(map[string]bool, len(s.profiles))
	out := make([]string, 0, len(s.profiles))
	for _, p := range s.profiles {
		if !seen[p.Specialty] {
			seen[p.Specialty] = true
			out = append(out, p.Specialty)
		}
	}
	return out
}

// Ranking returns the board sorted by score, highest first, filtered to
// category unless it is empty or "all".
func (s *Server) Ranking(board types.Board, category string) []types.Entry {
	out := make([]types.Entry, 0, len(s.profiles))
	for _, p := range s.profiles {
		if category != "" && category != types.CategoryAll && p.Specialty != category {
			continue
		}
		score := p.Marketplace
		if board == types.BoardFairFound {
			score = p.FairFound
		}
		out = append(out, types.Entry{Name: p.Name, Specialty: p.Specialty, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Compare scores both profiles from the dataset when their URL names a
// known profile, and derives the rest from the URL.
func (s *Server) Compare(url1, url2 string) types.Comparison {
	c := mockdata.Comparison(url1, url2)
	c.Fallback = false

	p1, ok1 := s.lookup(url1)
	p2, ok2 := s.lookup(url2)
	if ok1 {
		c.Freelancer1.Name = p1.Name
	}
	if ok2 {
		c.Freelancer2.Name = p2.Name
	}
	for i := range c.Metrics {
		m := &c.Metrics[i]
		if ok1 {
			m.Value1 = p1.metric(m.Label, m.Value1)
		}
		if ok2 {
			m.Value2 = p2.metric(m.Label, m.Value2)
		}
	}
	last := c.Metrics[len(c.Metrics)-1]
	c.Winner = compare.Winner(c.Freelancer1.Name, c.Freelancer2.Name, last.Value1, last.Value2)
	return c
}

func (s *Server) lookup(rawURL string) (Profile, bool) {
	slug, ok := mockdata.ExtractUsername(rawURL)
	if !ok {
		return Profile{}, false
	}
	slug = strings.ToLower(slug)
	for _, p := range s.profiles {
		if p.Slug == slug {
			return p, true
		}
	}
	return Profile{}, false
}

// metric returns the profile's value for label, or fallback when the
// profile has none.
func (p Profile) metric(label string, fallback float64) float64 {
	switch label {
	case "Rating":
		return p.Rating
	case "Jobs Done":
		return p.JobsDone
	case "On-Time":
		return p.OnTime
	case "Response":
		return p.ResponseH
	case "Rehire Rate":
		return p.RehireRate
	case "FairFound Score":
		return p.FairFound
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
