// Package types contains common types used across the application
package types

// CategoryAll is the category sentinel meaning "no filter".
const CategoryAll = "all"

// Board identifies one of the two ranking sources.
type Board string

// Known boards.
const (
	BoardMarketplace Board = "marketplace"
	BoardFairFound   Board = "fairfound"
)

// Boards lists the boards in display order.
func Boards() []Board {
	return []Board{BoardMarketplace, BoardFairFound}
}

// Valid reports whether b is a known board.
func (b Board) Valid() bool {
	return b == BoardMarketplace || b == BoardFairFound
}

// Entry represents a leaderboard entry. Rank is positional.
type Entry struct {
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Score     float64 `json:"score"`
}

// Leaderboards holds both rankings for a single category.
type Leaderboards struct {
	Category    string  `json:"category"`
	Marketplace []Entry `json:"marketplace"`
	FairFound   []Entry `json:"fairfound"`
	// Fallback is set when mock data replaced the backend response.
	Fallback bool `json:"fallback"`
}

// List returns the ranking for board b.
func (l Leaderboards) List(b Board) []Entry {
	if b == BoardFairFound {
		return l.FairFound
	}
	return l.Marketplace
}

// Freelancer is one side of a comparison.
type Freelancer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Metric is a single labelled pair of values. Suffix is display-only.
type Metric struct {
	Label  string  `json:"label"`
	Value1 float64 `json:"value1"`
	Value2 float64 `json:"value2"`
	Suffix string  `json:"suffix,omitempty"`
}

// Comparison is the paired evaluation of two profiles.
type Comparison struct {
	Freelancer1 Freelancer `json:"freelancer1"`
	Freelancer2 Freelancer `json:"freelancer2"`
	Metrics     []Metric   `json:"metrics"`
	Winner      string     `json:"winner"`

	// Fallback is set when the comparison was synthesized locally.
	Fallback bool `json:"-"`
}
