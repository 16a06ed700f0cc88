package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Add missions suggested for your goal and time of day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, kv, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := engine.LoadProfile(ctx, kv)
			if err != nil {
				return err
			}

			added, err := store.Recommend(ctx, p.Goal, time.Now().Hour())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMission, fmt.Sprintf("%d new missions for goal %q", len(added), p.Goal)))
			for _, m := range added {
				fmt.Fprintf(out, "- %d  %s\n", m.ID, m.Title)
			}
			return nil
		},
	}
}
