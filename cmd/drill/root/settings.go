package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var voice float64
	var sfx float64

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change audio preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			kv, cleanup, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			flags := cmd.Flags()
			if flags.Changed("voice") {
				if err := engine.SaveVoiceVolume(ctx, kv, voice); err != nil {
					return err
				}
			}
			if flags.Changed("sfx") {
				if err := engine.SaveSfxVolume(ctx, kv, sfx); err != nil {
					return err
				}
			}

			vols, err := engine.LoadVolumes(ctx, kv)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSound, "Audio settings"))
			fmt.Fprintln(out, ui.LabelValue("Voice volume", fmt.Sprintf("%.2f %s", vols.Voice, ui.ProgressBar(int(vols.Voice*100), 100, 10))))
			fmt.Fprintln(out, ui.LabelValue("SFX volume", fmt.Sprintf("%.2f %s", vols.Sfx, ui.ProgressBar(int(vols.Sfx*100), 100, 10))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&voice, "voice", engine.DefaultVolume, "Voice volume (0..1)")
	cmd.Flags().Float64Var(&sfx, "sfx", engine.DefaultVolume, "Sound-effect volume (0..1)")

	return cmd
}
