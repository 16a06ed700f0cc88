package root

import (
	"context"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the mission dashboard (TUI)",
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

			return tui.RunBoard(ctx, store, p, cmd.OutOrStdout())
		},
	}
}
