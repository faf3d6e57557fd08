package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/okian/fairfound/internal/adapters/terminal"
	service "github.com/okian/fairfound/internal/app"
	"github.com/okian/fairfound/internal/config"
	"github.com/okian/fairfound/pkg/logger"
)

// rootOptions holds the global flags.
type rootOptions struct {
	apiURL  string
	mock    bool
	noColor bool
	verbose bool

	svc *service.Service
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fairfound",
		Short: "Browse FairFound leaderboards and compare freelancers",
		Long: `fairfound shows the marketplace and FairFound rankings and compares two
freelancer profiles side by side. When the FairFound API cannot be reached,
sample data is shown instead.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api", "", "FairFound API base URL (default from FAIRFOUND_API_BASE_URL or config)")
	flags.BoolVar(&opts.mock, "mock", false, "Use sample data only, never call the API")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log backend requests to stderr")

	cmd.AddCommand(
		newLeaderboardCmd(opts),
		newCategoriesCmd(opts),
		newCompareCmd(opts),
	)
	return cmd
}

// setup initializes logging and the service from config and flags.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if err := logger.Init(logger.WithOutput(cmd.ErrOrStderr())); err != nil {
		return errors.Wrap(err, "init logging")
	}
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	_ = logger.SetLevelString(level)

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if o.apiURL != "" {
		cfg.APIBaseURL = strings.TrimRight(o.apiURL, "/")
	}
	if o.mock {
		cfg.DataSource = config.SourceMock
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	o.svc = service.New(
		service.WithSource(service.SourceFor(cfg)),
		service.WithLogger(logger.Named("cli")),
	)
	return nil
}

func (o *rootOptions) renderer(cmd *cobra.Command) *terminal.Renderer {
	return terminal.New(cmd.OutOrStdout(), terminal.WithColors(!o.noColor))
}
