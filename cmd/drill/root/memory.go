package root

import (
	"context"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/tui"
)

func newMemoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "memory",
		Short: "Play the memory-matching drill (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			kv, cleanup, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			vols, err := engine.LoadVolumes(ctx, kv)
			if err != nil {
				return err
			}
			return tui.RunMemory(cmd.OutOrStdout(), vols.Sfx)
		},
	}
}
