package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/leaderboard"
	"github.com/colegottdank/debateai-engagement/internal/streak"
)

// NewRotateCommand creates the rotate command.
func NewRotateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Pick (or show) today's topic",
		Long: `Run the daily selection now. If today already has a topic it is shown
unchanged; otherwise one is drawn and recorded.

Examples:
  engagectl rotate
  engagectl rotate --today 2025-06-02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			sel, err := appCtx.Rotation.SelectForToday(cmd.Context())
			if err != nil {
				return out.fail(exitFor("select today's topic", err))
			}
			return out.emit(sel, func(w io.Writer) {
				fmt.Fprintf(w, "%s  #%d  %s  (%s, %s)\n", sel.Date, sel.Topic.ID, sel.Topic.Content, sel.Topic.PresenterName, sel.Result)
			})
		},
	}
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently shown topics, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			entries, err := appCtx.Rotation.History().History(cmd.Context(), limit)
			if err != nil {
				return out.fail(exitFor("load history", err))
			}
			return out.emit(entries, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DATE\tID\tPRESENTER\tCONTENT")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", e.Date, e.Topic.ID, e.Topic.PresenterName, e.Topic.Content)
				}
				_ = tw.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 30, "number of days to show")
	return cmd
}

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "complete <user> <win|loss|draw> <score>",
		Short: "Record a scored debate for a user",
		Long: `Apply one scored debate to the user's streak, points and stats.

There is no idempotency key: running the same command twice counts twice.

Examples:
  engagectl complete user-42 win 87.5
  engagectl complete user-42 loss 40 --name "Ada L." --today 2025-06-03`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			score, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return out.fail(WrapExitError(ExitCommandError, "score must be a number", err))
			}
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			res, err := appCtx.Streaks.RecordCompletion(cmd.Context(), streak.Completion{
				UserID:      args[0],
				Outcome:     streak.Outcome(args[1]),
				Score:       score,
				DisplayName: name,
			})
			if err != nil {
				return out.fail(exitFor("record completion", err))
			}
			return out.emit(res, func(w io.Writer) {
				fmt.Fprintf(w, "+%d points (total %d), streak %d (best %d)\n",
					res.PointsEarned, res.TotalPoints, res.CurrentStreak, res.LongestStreak)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name to store for the user")
	return cmd
}

// NewStreakCommand creates the streak command.
func NewStreakCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak <user>",
		Short: "Show a user's streak and points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			st, err := appCtx.Streaks.GetStreak(cmd.Context(), args[0])
			if err != nil {
				return out.fail(exitFor("load streak", err))
			}
			return out.emit(st, func(w io.Writer) {
				last := st.LastActiveDate
				if last == "" {
					last = "never"
				}
				fmt.Fprintf(w, "%s: streak %d (best %d), %d points, last active %s\n",
					st.UserID, st.CurrentStreak, st.LongestStreak, st.TotalPoints, last)
			})
		},
	}
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user>",
		Short: "Show a user's lifetime and weekly debate counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			s, err := appCtx.Stats.Get(cmd.Context(), args[0])
			if err != nil {
				return out.fail(exitFor("load stats", err))
			}
			if s == nil {
				s = &db.UserStats{UserID: args[0]}
			}
			return out.emit(s, func(w io.Writer) {
				fmt.Fprintf(w, "%s\n  all time: %d debates, %d W / %d D / %d L, score %.1f\n  week of %s: %d debates, %d W / %d D / %d L, score %.1f\n",
					s.UserID,
					s.TotalDebates, s.TotalWins, s.TotalDraws, s.TotalLosses, s.TotalScore,
					s.WeekStart, s.WeekDebates, s.WeekWins, s.WeekDraws, s.WeekLosses, s.WeekScore)
			})
		},
	}
}

// NewLeaderboardCommand creates the leaderboard command.
func NewLeaderboardCommand(rootOpts *RootOptions) *cobra.Command {
	var period, sortBy string
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank users",
		Example: `  engagectl leaderboard
  engagectl leaderboard --period alltime --sort avg_score --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			p, err := leaderboard.ParsePeriod(period)
			if err != nil {
				return out.fail(WrapExitError(ExitCommandError, "invalid --period", err))
			}
			s, err := leaderboard.ParseSort(sortBy)
			if err != nil {
				return out.fail(WrapExitError(ExitCommandError, "invalid --sort", err))
			}
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			rows, err := appCtx.Leaderboard.GetLeaderboard(cmd.Context(), leaderboard.Query{Period: p, Sort: s, Limit: limit})
			if err != nil {
				return out.fail(exitFor("load leaderboard", err))
			}
			if rows == nil {
				rows = []leaderboard.Row{}
			}
			return out.emit(rows, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "RANK\tUSER\tNAME\tPOINTS\tSTREAK\tBEST\tDEBATES\tAVG")
				for _, r := range rows {
					name := r.DisplayName
					if r.Handle != "" {
						name = "@" + r.Handle
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%.1f\n",
						r.Rank, r.UserID, name, r.TotalPoints, r.CurrentStreak, r.LongestStreak, r.Debates, r.AvgScore)
				}
				_ = tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", "weekly", "weekly or alltime")
	cmd.Flags().StringVar(&sortBy, "sort", "points", "points, streak, debates or avg_score")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows (default from config)")
	return cmd
}
