package service

import (
	"context"
	"fmt"

	"github.com/okian/fairfound/internal/adapters/backend"
	"github.com/okian/fairfound/internal/config"
	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/mockdata"
	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/pkg/logger"
	"github.com/okian/fairfound/pkg/metrics"
)

// Source supplies popup data. Implementations decide what happens when the
// backend is unavailable.
type Source interface {
	Name() string
	Categories(ctx context.Context) ([]string, error)
	Leaderboards(ctx context.Context, category string) (types.Leaderboards, error)
	Compare(ctx context.Context, url1, url2 string) (types.Comparison, error)
}

// Backend is the subset of the API client used by LiveSource.
type Backend interface {
	Categories(ctx context.Context) ([]string, error)
	Leaderboards(ctx context.Context, category string) (types.Leaderboards, error)
	Compare(ctx context.Context, url1, url2 string) (types.Comparison, error)
}

// Fallback kinds recorded in metrics.
const (
	fallbackCategories   = "categories"
	fallbackLeaderboards = "leaderboards"
	fallbackComparison   = "comparison"
)

// LiveSource reads from the backend and substitutes mock data on any
// failure. It never returns an error.
type LiveSource struct {
	backend Backend
	logger  logger.Logger
}

// NewLiveSource wraps backend with mock fallbacks.
func NewLiveSource(backend Backend, l logger.Logger) *LiveSource {
	if l == nil {
		l = logger.Named("live-source")
	}
	return &LiveSource{backend: backend, logger: l}
}

// Name implements Source.
func (s *LiveSource) Name() string { return "live" }

// Categories implements Source.
func (s *LiveSource) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.backend.Categories(ctx)
	if err != nil {
		s.fallback(ctx, fallbackCategories, err)
		return mockdata.Categories(), nil
	}
	return cats, nil
}

// Leaderboards implements Source. Both rankings come from the backend or
// both come from mock data.
func (s *LiveSource) Leaderboards(ctx context.Context, category string) (types.Leaderboards, error) {
	lb, err := s.backend.Leaderboards(ctx, category)
	if err != nil {
		s.fallback(ctx, fallbackLeaderboards, err, logger.String("category", category))
		return mockdata.Leaderboards(category), nil
	}
	return lb, nil
}

// Compare implements Source. Payloads that cannot be rendered are treated
// like backend failures.
func (s *LiveSource) Compare(ctx context.Context, url1, url2 string) (types.Comparison, error) {
	c, err := s.backend.Compare(ctx, url1, url2)
	if err == nil {
		err = compare.CheckPayload(c)
	}
	if err != nil {
		s.fallback(ctx, fallbackComparison, err)
		return mockdata.Comparison(url1, url2), nil
	}
	return c, nil
}

func (s *LiveSource) fallback(ctx context.Context, kind string, err error, fields ...logger.Field) {
	metrics.RecordFallback(kind)
	fields = append(fields, logger.String("kind", kind), logger.Error(err))
	s.logger.Warn(ctx, "backend unavailable, using mock data", fields...)
}

// MockSource serves mock data only. Comparisons are synthesized after a
// simulated delay and any failure is returned to the caller.
type MockSource struct {
	synth *mockdata.Synthesizer
}

// NewMockSource creates a mock-only source.
func NewMockSource(synth *mockdata.Synthesizer) *MockSource {
	if synth == nil {
		synth = mockdata.NewSynthesizer()
	}
	return &MockSource{synth: synth}
}

// Name implements Source.
func (s *MockSource) Name() string { return "mock" }

// Categories implements Source.
func (s *MockSource) Categories(_ context.Context) ([]string, error) {
	return mockdata.Categories(), nil
}

// Leaderboards implements Source.
func (s *MockSource) Leaderboards(_ context.Context, category string) (types.Leaderboards, error) {
	return mockdata.Leaderboards(category), nil
}

// Compare implements Source.
func (s *MockSource) Compare(ctx context.Context, url1, url2 string) (types.Comparison, error) {
	c, err := s.synth.Compare(ctx, url1, url2)
	if err != nil {
		return types.Comparison{}, fmt.Errorf("mock compare: %w", err)
	}
	return c, nil
}

// SourceFor builds the strategy selected by cfg: mock-only, or the backend
// at cfg.APIBaseURL with mock fallbacks.
func SourceFor(cfg *config.Config) Source {
	if cfg.UseMock() {
		return NewMockSource(mockdata.NewSynthesizer(mockdata.WithDelay(cfg.MockDelay())))
	}
	client := backend.New(cfg.APIBaseURL, backend.WithTimeout(cfg.BackendTimeout()))
	return NewLiveSource(client, logger.Named("live-source"))
}
