package root

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"drillcoach/internal/audio"
	"drillcoach/internal/clock"
	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newCoachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coach",
		Short: "Start the motivational speech loop (ctrl+c stops it)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			kv, cleanup, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := engine.LoadProfile(ctx, kv)
			if err != nil {
				return err
			}
			vols, err := engine.LoadVolumes(ctx, kv)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			speaker := audio.NewConsoleSpeaker(out, vols.Voice)
			motivator := engine.NewMotivator(speaker, clock.Real(), p.VoiceTone, p.LanguageTag)

			fmt.Fprintln(out, ui.Heading(ui.IconCoach, fmt.Sprintf("Coach on duty (%s voice), ctrl+c to dismiss", p.VoiceTone)))

			sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			motivator.Start()
			<-sigCtx.Done()
			motivator.Stop()

			fmt.Fprintln(out, ui.Muted.Render("Coach dismissed."))
			return nil
		},
	}
}
