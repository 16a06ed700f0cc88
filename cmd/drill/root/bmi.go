package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newBMICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmi",
		Short: "Show your body-mass index",
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

			out := cmd.OutOrStdout()
			rep := engine.ComputeBMI(p.WeightKg, p.HeightCm)
			if rep == nil {
				fmt.Fprintln(out, ui.Heading(ui.IconScale, "BMI: undetermined"))
				fmt.Fprintln(out, ui.Muted.Render("Set weight and height first: drill register -w 70 -t 175"))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconScale, fmt.Sprintf("BMI %.1f: %s", rep.Value, ui.BMIText(rep.Category))))
			fmt.Fprintln(out, bmiGauge(rep.Value))
			return nil
		},
	}
}

// bmiGauge marks the value on a 10..40 scale with the category boundaries.
func bmiGauge(v float64) string {
	const lo, hi = 10.0, 40.0
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	pos := int((v - lo) / (hi - lo) * 30)
	bar := ""
	for i := 0; i < 30; i++ {
		if i == pos {
			bar += "▲"
		} else {
			bar += "·"
		}
	}
	return ui.Muted.Render("10 ") + bar + ui.Muted.Render(" 40")
}
