package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/repository"
)

// NewTopicsCommand creates the topics command group.
func NewTopicsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Manage the rotation pool",
	}
	cmd.AddCommand(newTopicsAddCommand(rootOpts))
	cmd.AddCommand(newTopicsListCommand(rootOpts))
	cmd.AddCommand(newTopicsToggleCommand(rootOpts, "disable", "Take a topic out of rotation", false))
	cmd.AddCommand(newTopicsToggleCommand(rootOpts, "enable", "Put a disabled topic back into rotation", true))
	cmd.AddCommand(newTopicsCountCommand(rootOpts))
	return cmd
}

func newTopicsAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		topic       db.Topic
		presenterID string
		disabled    bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a topic to the pool",
		Example: `  engagectl topics add --content "Zoos should be abolished" --presenter "Jane Goodall" --weight 2
  engagectl topics add --content "Draft idea" --presenter Ada --disabled`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			topic.Enabled = !disabled
			if presenterID != "" {
				topic.PresenterID = &presenterID
			}
			if err := appCtx.Topics.Create(cmd.Context(), &topic); err != nil {
				return out.fail(exitFor("add topic", err))
			}
			return out.emit(topic, func(w io.Writer) {
				fmt.Fprintf(w, "Added topic %d: %s\n", topic.ID, topic.Content)
			})
		},
	}

	cmd.Flags().StringVar(&topic.Content, "content", "", "debate prompt (required)")
	cmd.Flags().StringVar(&topic.PresenterName, "presenter", "", "presenter display name (required)")
	cmd.Flags().StringVar(&presenterID, "presenter-id", "", "presenter id")
	cmd.Flags().StringVar(&topic.Category, "category", "", "category (default general)")
	cmd.Flags().Float64Var(&topic.Weight, "weight", 1, "relative selection weight, > 0")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "add without putting it into rotation")
	_ = cmd.MarkFlagRequired("content")
	_ = cmd.MarkFlagRequired("presenter")

	return cmd
}

func newTopicsListCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		filter repository.TopicFilter
		token  string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topics ordered by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			var tokenPtr *string
			if token != "" {
				tokenPtr = &token
			}
			list, next, err := appCtx.Topics.List(cmd.Context(), filter, tokenPtr, limit)
			if err != nil {
				return out.fail(exitFor("list topics", err))
			}

			data := map[string]any{"topics": list}
			if next != nil {
				data["next_pagination_token"] = *next
			}
			return out.emit(data, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tENABLED\tWEIGHT\tCATEGORY\tPRESENTER\tCONTENT")
				for _, t := range list {
					fmt.Fprintf(tw, "%d\t%t\t%g\t%s\t%s\t%s\n", t.ID, t.Enabled, t.Weight, t.Category, t.PresenterName, t.Content)
				}
				_ = tw.Flush()
				if next != nil {
					fmt.Fprintf(w, "\nMore: --token %s\n", *next)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&filter.EnabledOnly, "enabled-only", false, "only topics in rotation")
	cmd.Flags().StringVar(&filter.Category, "category", "", "only this category")
	cmd.Flags().StringVar(&token, "token", "", "pagination token from a previous page")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")

	return cmd
}

func newTopicsToggleCommand(rootOpts *RootOptions, verb, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return out.fail(WrapExitError(ExitCommandError, "topic id must be a positive integer", err))
			}
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			if err := appCtx.Topics.SetEnabled(cmd.Context(), id, enabled); err != nil {
				return out.fail(exitFor(verb+" topic", err))
			}
			return out.emit(map[string]any{"id": id, "enabled": enabled}, func(w io.Writer) {
				fmt.Fprintf(w, "Topic %d %sd\n", id, verb)
			})
		},
	}
}

func newTopicsCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count topics in the pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			total, enabled, err := appCtx.Topics.Count(cmd.Context())
			if err != nil {
				return out.fail(exitFor("count topics", err))
			}
			return out.emit(map[string]int64{"total": total, "enabled": enabled}, func(w io.Writer) {
				fmt.Fprintf(w, "%d topics, %d enabled\n", total, enabled)
			})
		},
	}
}
