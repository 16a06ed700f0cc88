package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a mission's done flag",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			before := store.Rank()
			m, err := store.Toggle(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if m == nil {
				fmt.Fprintln(out, ui.Muted.Render("No such mission."))
				return nil
			}
			if m.Done {
				fmt.Fprintf(out, "%s %s: +%d XP (total %d)\n", ui.IconDone, m.Title, engine.MissionXPBonus, store.XP())
				if after := store.Rank(); after.Level > before.Level {
					fmt.Fprintf(out, "%s %s you are now %s!\n", ui.IconRank, ui.BadgeRankUp, after.Name)
				}
			} else {
				fmt.Fprintf(out, "%s Reopened %q. XP stays at %d.\n", ui.IconOpen, m.Title, store.XP())
			}
			return nil
		},
	}
}
