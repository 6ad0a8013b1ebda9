package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	File     string
	Profiles bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load topics into the rotation pool",
		Long: `Load topics from a YAML file (or the built-in starter set) into the pool.

Topics whose content already exists are skipped, so seeding is safe to repeat.

Examples:
  engagectl seed
  engagectl seed --file topics.yaml
  engagectl seed --profiles --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "topics YAML file (default: built-in set)")
	cmd.Flags().BoolVar(&opts.Profiles, "profiles", false, "also upsert the demo leaderboard profiles")

	return cmd
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	out := opts.printer(cmd)

	seeds, err := db.LoadTopicSeeds(opts.File)
	if err != nil {
		return out.fail(WrapExitError(ExitCommandError, "failed to load seeds", err))
	}

	appCtx, err := opts.open()
	if err != nil {
		return out.fail(err)
	}

	inserted, err := db.SeedTopics(appCtx.DB, seeds)
	if err != nil {
		return out.fail(WrapExitError(ExitCommandError, "seed failed", err))
	}
	if opts.Profiles {
		if err := db.SeedDevData(appCtx.DB); err != nil {
			return out.fail(WrapExitError(ExitCommandError, "profile seed failed", err))
		}
	}

	result := map[string]int{"read": len(seeds), "inserted": inserted}
	return out.emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "Seeded %d of %d topics (%d already present)\n", inserted, len(seeds), len(seeds)-inserted)
	})
}

// exitFor classifies an operation error: rejected input is a failure, anything
// else means the command could not run.
func exitFor(message string, err error) error {
	if svcErr.IsValidation(err) || errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, svcErr.ErrNoCandidates) {
		return WrapExitError(ExitFailure, message, err)
	}
	return WrapExitError(ExitCommandError, message, err)
}
