package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drillcoach/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List missions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			missions := store.Missions()
			if len(missions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no missions yet, try: drill recommend)"))
				return nil
			}
			for _, m := range missions {
				line := fmt.Sprintf("%s %d  %s", ui.MissionIcon(m.Done), m.ID, m.Title)
				if m.Done {
					line = ui.Muted.Render(line)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
