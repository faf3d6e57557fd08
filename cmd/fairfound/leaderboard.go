package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/okian/fairfound/internal/adapters/terminal"
	"github.com/okian/fairfound/internal/domain/types"
)

func newLeaderboardCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		board    string
	)
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the marketplace and FairFound rankings",
		Example: `  fairfound leaderboard
  fairfound leaderboard --category "Data Scientist" --board fairfound`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if board != terminal.BoardBoth && !types.Board(board).Valid() {
				return errors.Errorf("unknown board %q: want both, marketplace or fairfound", board)
			}
			lb, err := opts.svc.LoadLeaderboards(cmd.Context(), category)
			if err != nil {
				return errors.Wrap(err, "load leaderboards")
			}
			return errors.Wrap(opts.renderer(cmd).Leaderboards(lb, board), "render leaderboards")
		},
	}
	cmd.Flags().StringVar(&category, "category", types.CategoryAll, "Category filter")
	cmd.Flags().StringVar(&board, "board", terminal.BoardBoth, "Board to show: both, marketplace or fairfound")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List leaderboard categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := opts.svc.LoadCategories(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "load categories")
			}
			return errors.Wrap(opts.renderer(cmd).Categories(cats), "render categories")
		},
	}
}
