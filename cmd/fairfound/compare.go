package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/view"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "compare URL1 URL2",
		Short:   "Compare two freelancer profiles side by side",
		Example: `  fairfound compare https://fairfound.io/u/emily-davis https://fairfound.io/u/priya-patel`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.svc.Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				if ve, ok := compare.AsValidation(err); ok {
					return ve
				}
				return errors.Wrap(err, "Comparison failed")
			}
			return errors.Wrap(opts.renderer(cmd).Comparison(view.BuildComparison(c)), "render comparison")
		},
	}
}
