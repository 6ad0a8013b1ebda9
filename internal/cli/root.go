// Package cli implements engagectl, the operator CLI for the engagement store.
//
// Commands talk to the store directly through the same components the gRPC
// server uses, so a seed, a manual rotation or a backfilled completion behaves
// exactly like its RPC counterpart.
package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/colegottdank/debateai-engagement/internal/app"
	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/calendar"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/config"
	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	SQLite string // overrides the configured store with a SQLite file
	Today  string // pins the clock to a UTC date (YYYY-MM-DD)

	appCtx *app.AppContext
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for engagectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "engagectl",
		Short: "Operate the debate engagement store",
		Long: `engagectl manages the daily topic rotation, user streaks and leaderboards.

Configuration comes from the environment (and an optional .env file), the
same variables the server reads. --sqlite points every command at a local
SQLite file instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			if opts.Today != "" {
				if _, err := calendar.Parse(opts.Today); err != nil {
					return WrapExitError(ExitCommandError, "invalid --today", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.appCtx != nil && opts.appCtx.DB != nil {
				if sqlDB, err := opts.appCtx.DB.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.SQLite, "sqlite", "", "path to a SQLite database (overrides DB_DRIVER)")
	cmd.PersistentFlags().StringVar(&opts.Today, "today", "", "act as if today were this UTC date (YYYY-MM-DD)")

	// Add subcommands
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewTopicsCommand(opts))
	cmd.AddCommand(NewRotateCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))
	cmd.AddCommand(NewStreakCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewLeaderboardCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))

	return cmd
}

// open connects to the store once per invocation and wires the components.
func (o *RootOptions) open() (*app.AppContext, error) {
	if o.appCtx != nil {
		return o.appCtx, nil
	}

	cfg := config.New()
	if o.SQLite != "" {
		cfg.DB.Driver = "sqlite"
		cfg.DB.DSN = o.SQLite
	}
	logger.InitFromConfig(cfg)

	database, err := db.NewDB(cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	var clk clock.Clock = clock.System()
	if o.Today != "" {
		day, _ := calendar.Parse(o.Today)
		clk = clock.NewManual(day.Add(12 * time.Hour))
	}

	// one-shot commands gain nothing from a cache
	o.appCtx = app.New(cfg, database, cache.Noop{}, clk, logger.L())
	return o.appCtx, nil
}

func (o *RootOptions) printer(cmd *cobra.Command) printer {
	return printer{format: o.Format, w: cmd.OutOrStdout()}
}
