package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show rank, XP and mission progress",
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

			xp := store.XP()
			rank := store.Rank()

			out := cmd.OutOrStdout()
			name := p.FirstName
			if name == "" {
				name = "recruit"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconCoach, "Status for "+name))
			fmt.Fprintln(out, ui.LabelValue("Rank", fmt.Sprintf("%s %s (level %d)", ui.IconRank, rank.Name, rank.Level)))

			if next, ok := engine.NextRankThreshold(xp); ok {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s next rank at %d", xp, ui.ProgressBar(xp, next, 24), next)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s", xp, ui.Gold.Render("(top rank)"))))
			}

			missions := store.Missions()
			done := 0
			for _, m := range missions {
				if m.Done {
					done++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Missions", fmt.Sprintf("%d done / %d total", done, len(missions))))

			if rep := engine.ComputeBMI(p.WeightKg, p.HeightCm); rep != nil {
				fmt.Fprintln(out, ui.LabelValue("BMI", fmt.Sprintf("%.1f (%s)", rep.Value, ui.BMIText(rep.Category))))
			} else {
				fmt.Fprintln(out, ui.LabelValue("BMI", ui.Muted.Render("undetermined, set weight/height")))
			}
			return nil
		},
	}
}
