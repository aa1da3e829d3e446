package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagenav"
	"github.com/Alp4ka/pagenav/internal/config"
)

// app is shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	settings   config.Settings
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pagenav",
		Short: "Compute pagination windows",
		Long: `pagenav computes the page links of a pagination bar.

Settings are read from --config (YAML), PAGENAV_* environment variables and
flags, in increasing priority.

Examples:
  pagenav window --collection-size 200 --page 7 --max-size 5 --rotate
  pagenav window --collection-size 200 --page 7 --json
  pagenav demo --collection-size 95`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	d := pagenav.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.Bool("disabled", d.Disabled, "Disable all links")
	flags.Bool("boundary-links", d.BoundaryLinks, "Show first and last links")
	flags.Bool("direction-links", d.DirectionLinks, "Show previous and next links")
	flags.Bool("ellipses", d.Ellipses, "Show ellipses around a truncated window")
	flags.Int("max-size", d.MaxSize, "Maximum number of page links, 0 for all")
	flags.Int("page-size", d.PageSize, "Number of items per page")
	flags.Bool("rotate", d.Rotate, "Keep the current page in the middle of the window")
	flags.String("size", string(d.Size), "Bar size: sm, lg or empty")

	cmd.AddCommand(newWindowCmd(a), newDemoCmd(a))

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	settings, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	// Validated by config.Load.
	level, _ := settings.Level()

	a.settings = settings
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("settings loaded",
		slog.String("config", a.configPath),
		slog.Int("page_size", settings.Pagination.PageSize),
		slog.Int("max_size", settings.Pagination.MaxSize),
	)

	return nil
}
