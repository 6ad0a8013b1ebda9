package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/colegottdank/debateai-engagement/internal/db"
)

// NewProfileCommand creates the profile command.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	var p db.Profile

	cmd := &cobra.Command{
		Use:   "profile <user>",
		Short: "Set the public handle shown on leaderboards",
		Example: `  engagectl profile user-42 --handle ada
  engagectl profile user-42 --handle ada --avatar https://example.com/ada.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.printer(cmd)
			appCtx, err := rootOpts.open()
			if err != nil {
				return out.fail(err)
			}

			p.UserID = args[0]
			if err := appCtx.Profiles.Upsert(cmd.Context(), &p); err != nil {
				return out.fail(exitFor("save profile", err))
			}
			return out.emit(p, func(w io.Writer) {
				fmt.Fprintf(w, "%s is now @%s\n", p.UserID, p.Handle)
			})
		},
	}

	cmd.Flags().StringVar(&p.Handle, "handle", "", "unique public handle (required)")
	cmd.Flags().StringVar(&p.AvatarURL, "avatar", "", "avatar URL")
	_ = cmd.MarkFlagRequired("handle")
	return cmd
}
