// Package view turns popup data into display models shared by the HTML
// page, the JSON API and the terminal client. It performs no I/O.
package view

import (
	"strconv"
	"unicode/utf8"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/types"
)

// Tab ids.
const (
	TabLeaderboard = "leaderboard"
	TabCompare     = "compare"
)

// Summary text shown under a comparison.
const (
	SummaryTitle  = "FairFound Recommendation"
	summarySuffix = " scores higher overall"
)

// Rank tiers by position.
const (
	TierGold    = "gold"
	TierSilver  = "silver"
	TierBronze  = "bronze"
	TierDefault = "default"
)

// AllCategoriesLabel labels the "all" option of the category filter.
const AllCategoriesLabel = "All Categories"

// Tab is one entry of the top-level tab bar.
type Tab struct {
	ID     string
	Label  string
	Active bool
}

// PanelID is the id of the content panel the tab controls.
func (t Tab) PanelID() string { return t.ID + "-tab" }

// ActivateTab returns the tab bar with exactly one active tab. Unknown ids
// activate the leaderboard tab.
func ActivateTab(id string) []Tab {
	if id != TabCompare {
		id = TabLeaderboard
	}
	return []Tab{
		{ID: TabLeaderboard, Label: "Leaderboards", Active: id == TabLeaderboard},
		{ID: TabCompare, Label: "Compare", Active: id == TabCompare},
	}
}

// BoardToggle is one button of the leaderboard toggle.
type BoardToggle struct {
	Board  types.Board
	Label  string
	Active bool
}

// PanelID is the id of the ranking section the toggle controls.
func (b BoardToggle) PanelID() string { return string(b.Board) + "-board" }

// ActivateBoard returns both toggles with exactly one active. Unknown ids
// activate the marketplace board.
func ActivateBoard(id string) []BoardToggle {
	active := types.Board(id)
	if !active.Valid() {
		active = types.BoardMarketplace
	}
	labels := map[types.Board]string{
		types.BoardMarketplace: "Marketplace",
		types.BoardFairFound:   "FairFound",
	}
	out := make([]BoardToggle, 0, len(labels))
	for _, b := range types.Boards() {
		out = append(out, BoardToggle{Board: b, Label: labels[b], Active: b == active})
	}
	return out
}

// Option is a category filter choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// CategoryOptions lists the filter options: "all" first, then one per
// category in order. An unknown selection selects "all".
func CategoryOptions(categories []string, selected string) []Option {
	out := make([]Option, 0, len(categories)+1)
	out = append(out, Option{Value: types.CategoryAll, Label: AllCategoriesLabel})
	found := false
	for _, c := range categories {
		sel := c == selected && !found
		found = found || sel
		out = append(out, Option{Value: c, Label: c, Selected: sel})
	}
	if !found {
		out[0].Selected = true
	}
	return out
}

// Row is a rendered leaderboard entry.
type Row struct {
	Rank      int     `json:"rank"`
	Tier      string  `json:"tier"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Score     float64 `json:"score"`
}

// ScoreText is the score in its shortest decimal form.
func (r Row) ScoreText() string { return FormatNumber(r.Score) }

// Tier returns the display tier for the entry at zero-based index.
func Tier(index int) string {
	switch index {
	case 0:
		return TierGold
	case 1:
		return TierSilver
	case 2:
		return TierBronze
	default:
		return TierDefault
	}
}

// LeaderboardRows renders entries in array order. Rank is positional.
func LeaderboardRows(entries []types.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Rank:      i + 1,
			Tier:      Tier(i),
			Name:      e.Name,
			Specialty: e.Specialty,
			Score:     e.Score,
		}
	}
	return rows
}

// Side is one column header of the comparison.
type Side struct {
	Name   string
	URL    string
	Avatar string
}

// MetricRow is a metric with its value text and bar widths.
type MetricRow struct {
	Label  string
	Text1  string
	Text2  string
	Width1 float64
	Width2 float64
}

// Bar1 is the first bar width as percentage text.
func (m MetricRow) Bar1() string { return FormatNumber(m.Width1) }

// Bar2 is the second bar width as percentage text.
func (m MetricRow) Bar2() string { return FormatNumber(m.Width2) }

// Comparison is the rendered side-by-side result.
type Comparison struct {
	Freelancer1 Side
	Freelancer2 Side
	Metrics     []MetricRow
	Title       string
	Summary     string
	Winner      string
	Fallback    bool
}

// BuildComparison renders c. Metrics keep their order.
func BuildComparison(c types.Comparison) Comparison {
	rows := make([]MetricRow, len(c.Metrics))
	for i, m := range c.Metrics {
		w1, w2 := compare.Bars(m)
		rows[i] = MetricRow{
			Label:  m.Label,
			Text1:  FormatNumber(m.Value1) + m.Suffix,
			Text2:  FormatNumber(m.Value2) + m.Suffix,
			Width1: w1,
			Width2: w2,
		}
	}
	return Comparison{
		Freelancer1: Side{Name: c.Freelancer1.Name, URL: c.Freelancer1.URL, Avatar: Avatar(c.Freelancer1.Name)},
		Freelancer2: Side{Name: c.Freelancer2.Name, URL: c.Freelancer2.URL, Avatar: Avatar(c.Freelancer2.Name)},
		Metrics:     rows,
		Title:       SummaryTitle,
		Summary:     c.Winner + summarySuffix,
		Winner:      c.Winner,
		Fallback:    c.Fallback,
	}
}

// Avatar returns the first character of name, or "" for an empty name.
func Avatar(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return name[:size]
}

// FormatNumber renders v in its shortest decimal form: 98, 4.7, 33.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
