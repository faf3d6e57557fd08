// Package terminal renders popup data as tables for the command line.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/internal/view"
)

// BarCells is the width of a comparison bar in characters.
const BarCells = 20

const (
	barFull  = "█"
	barEmpty = "░"
)

// Board selections accepted by Leaderboards in addition to the board ids.
const BoardBoth = "both"

// Renderer writes tables to an io.Writer.
type Renderer struct {
	w      io.Writer
	colors bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColors enables or disables ANSI colors.
func WithColors(on bool) Option {
	return func(r *Renderer) { r.colors = on }
}

// New creates a Renderer writing to w. Colors are on by default.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, colors: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) paint(attrs ...color.Attribute) func(...any) string {
	if !r.colors {
		return fmt.Sprint
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

// Categories writes the category filter options, "all" first.
func (r *Renderer) Categories(categories []string) error {
	table := tablewriter.NewWriter(r.w)
	table.Header([]string{"#", "Category"})

	data := make([][]string, 0, len(categories)+1)
	for i, opt := range view.CategoryOptions(categories, types.CategoryAll) {
		data = append(data, []string{strconv.Itoa(i), opt.Value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Leaderboards writes the selected board, or both for BoardBoth.
func (r *Renderer) Leaderboards(lb types.Leaderboards, board string) error {
	boards := types.Boards()
	if board != BoardBoth {
		boards = []types.Board{types.BoardMarketplace}
		for _, t := range view.ActivateBoard(board) {
			if t.Active {
				boards = []types.Board{t.Board}
			}
		}
	}
	yellow := r.paint(color.FgYellow)
	if lb.Fallback {
		if _, err := fmt.Fprintln(r.w, yellow("Showing sample rankings: backend unavailable")); err != nil {
			return err
		}
	}
	for _, b := range boards {
		title := fmt.Sprintf("%s (%s)", boardTitle(b), lb.Category)
		if err := r.Leaderboard(title, view.LeaderboardRows(lb.List(b))); err != nil {
			return err
		}
	}
	return nil
}

func boardTitle(b types.Board) string {
	for _, t := range view.ActivateBoard(string(b)) {
		if t.Board == b {
			return t.Label
		}
	}
	return string(b)
}

// Leaderboard writes one ranking under title.
func (r *Renderer) Leaderboard(title string, rows []view.Row) error {
	bold := r.paint(color.Bold)
	if _, err := fmt.Fprintln(r.w, bold(title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(r.w)
	table.Header([]string{"Rank", "Name", "Specialty", "Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignLeft, tw.AlignRight}
	})

	tiers := map[string]func(...any) string{
		view.TierGold:    r.paint(color.FgYellow, color.Bold),
		view.TierSilver:  r.paint(color.FgHiWhite, color.Bold),
		view.TierBronze:  r.paint(color.FgRed),
		view.TierDefault: fmt.Sprint,
	}
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		rank := tiers[row.Tier](strconv.Itoa(row.Rank))
		data = append(data, []string{rank, row.Name, row.Specialty, row.ScoreText()})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Comparison writes the metric table followed by the recommendation.
func (r *Renderer) Comparison(c view.Comparison) error {
	cyan := r.paint(color.FgCyan)
	green := r.paint(color.FgGreen)

	table := tablewriter.NewWriter(r.w)
	table.Header([]string{
		"Metric",
		fmt.Sprintf("[%s] %s", c.Freelancer1.Avatar, c.Freelancer1.Name),
		"",
		"",
		fmt.Sprintf("[%s] %s", c.Freelancer2.Avatar, c.Freelancer2.Name),
	})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft}
	})

	data := make([][]string, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		data = append(data, []string{
			m.Label,
			m.Text1,
			cyan(Bar(m.Width1, BarCells)),
			green(Bar(m.Width2, BarCells)),
			m.Text2,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	bold := r.paint(color.Bold)
	if _, err := fmt.Fprintf(r.w, "%s\n%s\n", bold(c.Title), green(c.Summary)); err != nil {
		return err
	}
	if c.Fallback {
		yellow := r.paint(color.FgYellow)
		if _, err := fmt.Fprintln(r.w, yellow("Estimated from profile URLs: backend unavailable")); err != nil {
			return err
		}
	}
	return nil
}

// Bar draws a bar of cells characters filled to width percent.
func Bar(width float64, cells int) string {
	if cells <= 0 {
		return ""
	}
	n := int(math.Round(width / 100 * float64(cells)))
	n = max(0, min(n, cells))
	return strings.Repeat(barFull, n) + strings.Repeat(barEmpty, cells-n)
}
