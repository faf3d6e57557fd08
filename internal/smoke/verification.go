package smoke

import (
	"fmt"
	"reflect"
)

var tiers = []string{"gold", "silver", "bronze"}

const defaultTier = "default"

// verifyRows checks that ranks are positional and tiers follow the rank.
func verifyRows(board string, rows []Row) error {
	for i, r := range rows {
		if r.Rank != i+1 {
			return fmt.Errorf("%w: %s row %d has rank %d", ErrCheck, board, i, r.Rank)
		}
		want := defaultTier
		if i < len(tiers) {
			want = tiers[i]
		}
		if r.Tier != want {
			return fmt.Errorf("%w: %s row %d has tier %q, want %q", ErrCheck, board, i, r.Tier, want)
		}
	}
	return nil
}

// verifyComparison checks the structure of a comparison result.
func verifyComparison(p Pair, c Comparison) error {
	switch {
	case len(c.Metrics) == 0:
		return fmt.Errorf("%w: %s vs %s: no metrics", ErrCheck, p.URL1, p.URL2)
	case c.Winner != c.Freelancer1.Name && c.Winner != c.Freelancer2.Name:
		return fmt.Errorf("%w: winner %q is neither side", ErrCheck, c.Winner)
	case c.Summary != c.Winner+" scores higher overall":
		return fmt.Errorf("%w: summary %q does not name the winner", ErrCheck, c.Summary)
	}
	for _, m := range c.Metrics {
		if m.Bar1 < 0 || m.Bar1 > 100 || m.Bar2 < 0 || m.Bar2 > 100 {
			return fmt.Errorf("%w: %s bars out of range: %v/%v", ErrCheck, m.Label, m.Bar1, m.Bar2)
		}
		if (m.Value1 > 0 || m.Value2 > 0) && m.Bar1 != 100 && m.Bar2 != 100 {
			return fmt.Errorf("%w: %s has no full bar", ErrCheck, m.Label)
		}
	}
	return nil
}

// verifyDeterministic checks that two synthesized results for the same
// pair are identical.
func verifyDeterministic(a, b Comparison) error {
	if !a.Fallback || !b.Fallback {
		return nil
	}
	if !reflect.DeepEqual(a, b) {
		return fmt.Errorf("%w: synthesized comparison differs between calls", ErrCheck)
	}
	return nil
}
