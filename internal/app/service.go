// Package service provides the popup controller shared by the HTML, JSON and
// terminal surfaces.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/pkg/logger"
	"github.com/okian/fairfound/pkg/metrics"
)

// Panels that show a loading indicator.
const (
	PanelLeaderboard = "leaderboard"
	PanelCompare     = "compare"
)

// Winning sides recorded in metrics.
const (
	sideFreelancer1 = "freelancer1"
	sideFreelancer2 = "freelancer2"
)

// Service loads popup data through a Source chosen at construction time.
type Service struct {
	source Source
	logger logger.Logger

	leaderboardLoads atomic.Int64
	compareLoads     atomic.Int64

	leaderboardsServed atomic.Int64
	comparisonsServed  atomic.Int64
	fallbacksServed    atomic.Int64
	validationFailures atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the data-source strategy.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without WithSource it serves mock data only.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewMockSource(nil)
	}
	if s.logger == nil {
		s.logger = logger.Named("popup")
	}
	return s
}

// SourceName reports the configured strategy.
func (s *Service) SourceName() string {
	return s.source.Name()
}

// LoadCategories returns the category names for the filter.
func (s *Service) LoadCategories(ctx context.Context) ([]string, error) {
	cats, err := s.source.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCategories, err)
	}
	return cats, nil
}

// LoadLeaderboards returns both rankings for category. Empty means "all".
// The leaderboard panel counts as loading until the call returns.
func (s *Service) LoadLeaderboards(ctx context.Context, category string) (types.Leaderboards, error) {
	category = NormalizeCategory(category)

	done := s.begin(PanelLeaderboard, &s.leaderboardLoads)
	defer done()

	lb, err := s.source.Leaderboards(ctx, category)
	if err != nil {
		return types.Leaderboards{}, fmt.Errorf("%w: %w", ErrLoadLeaderboards, err)
	}
	s.leaderboardsServed.Add(1)
	if lb.Fallback {
		s.fallbacksServed.Add(1)
	}
	s.logger.Debug(ctx, "leaderboards loaded",
		logger.String("category", category),
		logger.Int("marketplace", len(lb.Marketplace)),
		logger.Int("fairfound", len(lb.FairFound)),
		logger.Bool("fallback", lb.Fallback),
	)
	return lb, nil
}

// Compare validates the two profile URLs and compares them. Invalid input
// yields a *compare.ValidationError and no source call.
func (s *Service) Compare(ctx context.Context, url1, url2 string) (types.Comparison, error) {
	url1, url2, err := compare.Validate(url1, url2)
	if err != nil {
		s.validationFailures.Add(1)
		if ve, ok := compare.AsValidation(err); ok {
			metrics.RecordValidationFailure(ve.Reason)
		}
		return types.Comparison{}, err
	}

	done := s.begin(PanelCompare, &s.compareLoads)
	defer done()

	c, err := s.source.Compare(ctx, url1, url2)
	if err != nil {
		s.logger.Error(ctx, "comparison failed", logger.String("source", s.source.Name()), logger.Error(err))
		return types.Comparison{}, fmt.Errorf("%w: %w", ErrCompare, err)
	}

	s.comparisonsServed.Add(1)
	if c.Fallback {
		s.fallbacksServed.Add(1)
	}
	side := sideFreelancer2
	if c.Winner == c.Freelancer1.Name {
		side = sideFreelancer1
	}
	metrics.RecordComparison(side)
	return c, nil
}

// Loading reports whether panel has a load in progress.
func (s *Service) Loading(panel string) bool {
	switch panel {
	case PanelLeaderboard:
		return s.leaderboardLoads.Load() > 0
	case PanelCompare:
		return s.compareLoads.Load() > 0
	}
	return false
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"source":             s.source.Name(),
		"leaderboardLoading": s.leaderboardLoads.Load(),
		"compareLoading":     s.compareLoads.Load(),
		"leaderboardsServed": s.leaderboardsServed.Load(),
		"comparisonsServed":  s.comparisonsServed.Load(),
		"fallbacksServed":    s.fallbacksServed.Load(),
		"validationFailures": s.validationFailures.Load(),
	}
}

// begin marks panel as loading and returns the matching cleanup.
func (s *Service) begin(panel string, counter *atomic.Int64) func() {
	counter.Add(1)
	metrics.LoadStarted(panel)
	return func() {
		counter.Add(-1)
		metrics.LoadFinished(panel)
	}
}

// NormalizeCategory maps an empty or blank selection to the "all" sentinel.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return types.CategoryAll
	}
	return category
}
