// Package smoke exercises a running popup service through its JSON API and
// checks the responses: ranks and tiers, comparison structure, validation
// and the determinism of synthesized comparisons.
package smoke

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/fairfound/pkg/logger"
)

// Run executes a complete smoke run.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Named("smoke")
	client := newHTTPClient(config.BaseURL, config.Timeout)

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("pairs", config.Pairs),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout))

	// Step 1: Check service health
	if err := client.getJSON(ctx, "/healthz", nil); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	// Step 2: Categories
	var cats []string
	if err := client.getJSON(ctx, "/api/categories", &cats); err != nil {
		return stats, fmt.Errorf("categories: %w", err)
	}
	stats.Categories = len(cats)

	// Step 3: Leaderboards for "all" and every category
	if err := checkLeaderboards(ctx, client, config, append([]string{"all"}, cats...), stats); err != nil {
		return stats, err
	}

	// Step 4: Validation
	if err := client.postJSON(ctx, "/api/compare", Pair{URL1: "not-a-url", URL2: "https://x.com/bob"}, http.StatusBadRequest, nil); err != nil {
		return stats, fmt.Errorf("validation: %w", err)
	}

	// Step 5: Comparisons
	if err := checkComparisons(ctx, client, config, generatePairs(config.Pairs), stats); err != nil {
		return stats, err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "final statistics",
		logger.Int("categories", stats.Categories),
		logger.Int("leaderboards", stats.Leaderboards),
		logger.Int("comparisons", stats.Comparisons),
		logger.Int("fallbacks", stats.Fallbacks),
		logger.Duration("duration", stats.Duration))
	return stats, nil
}

func checkLeaderboards(ctx context.Context, client *httpClient, config *Config, categories []string, stats *Stats) error {
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, config.Workers))
	for _, cat := range categories {
		g.Go(func() error {
			var lb Leaderboards
			if err := client.getJSON(gctx, "/api/leaderboards?category="+queryEscape(cat), &lb); err != nil {
				return fmt.Errorf("leaderboards %q: %w", cat, err)
			}
			if err := verifyRows("marketplace", lb.Marketplace); err != nil {
				return err
			}
			if err := verifyRows("fairfound", lb.FairFound); err != nil {
				return err
			}
			mu.Lock()
			stats.Leaderboards++
			if lb.Fallback {
				stats.Fallbacks++
			}
			mu.Unlock()
			if config.Verbose {
				logger.Get().Debug(gctx, "leaderboards ok",
					logger.String("category", cat),
					logger.Int("marketplace", len(lb.Marketplace)),
					logger.Bool("fallback", lb.Fallback))
			}
			return nil
		})
	}
	return g.Wait()
}

func checkComparisons(ctx context.Context, client *httpClient, config *Config, pairs []Pair, stats *Stats) error {
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, config.Workers))
	for _, p := range pairs {
		g.Go(func() error {
			var first, second Comparison
			if err := client.postJSON(gctx, "/api/compare", p, http.StatusOK, &first); err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			if err := verifyComparison(p, first); err != nil {
				return err
			}
			if first.Fallback {
				if err := client.postJSON(gctx, "/api/compare", p, http.StatusOK, &second); err != nil {
					return fmt.Errorf("compare again: %w", err)
				}
				if err := verifyDeterministic(first, second); err != nil {
					return err
				}
			}
			mu.Lock()
			stats.Comparisons++
			if first.Fallback {
				stats.Fallbacks++
			}
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
