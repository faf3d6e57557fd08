package mockdata

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/fairfound/internal/domain/types"
)

// Default synthesizer configuration constants.
const (
	defaultDelay = 600 * time.Millisecond
)

// Option applies a configuration option to the Synthesizer.
type Option func(*Synthesizer)

// WithDelay sets the simulated latency before a comparison is produced.
// Zero disables the wait.
func WithDelay(d time.Duration) Option {
	return func(s *Synthesizer) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// Synthesizer produces comparisons without a backend, simulating the
// latency of a real call.
type Synthesizer struct {
	delay time.Duration
}

// NewSynthesizer creates a synthesizer with configuration options.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{delay: defaultDelay}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the configured latency.
func (s *Synthesizer) Delay() time.Duration {
	return s.delay
}

// Compare waits for the configured delay and synthesizes a comparison.
func (s *Synthesizer) Compare(ctx context.Context, url1, url2 string) (types.Comparison, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return types.Comparison{}, fmt.Errorf("%w: %w", ErrSynthesis, ctx.Err())
		case <-timer.C:
		}
	}
	return Comparison(url1, url2), nil
}
