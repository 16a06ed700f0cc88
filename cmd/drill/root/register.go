package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	var (
		firstName string
		lastName  string
		country   string
		birthYear string
		weight    string
		height    string
		goal      string
		intensity string
		voice     string
		language  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create or update your profile",
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

			// Only fields the user passed are touched.
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				p.FirstName = firstName
			}
			if flags.Changed("last-name") {
				p.LastName = lastName
			}
			if flags.Changed("country") {
				p.Country = country
			}
			if flags.Changed("birth-year") {
				p.BirthYear = birthYear
			}
			if flags.Changed("weight") {
				p.WeightKg = weight
			}
			if flags.Changed("height") {
				p.HeightCm = height
			}
			if flags.Changed("goal") {
				p.Goal = engine.ParseGoal(goal)
			}
			if flags.Changed("intensity") {
				p.Intensity = engine.ParseIntensity(intensity)
			}
			if flags.Changed("voice") {
				p.VoiceTone = engine.ParseVoiceTone(voice)
			}
			if flags.Changed("language") {
				p.LanguageTag = language
			}

			if err := p.Save(ctx, kv); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoach, "Profile saved"))
			fmt.Fprintln(out, ui.LabelValue("Name", p.FirstName+" "+p.LastName))
			fmt.Fprintln(out, ui.LabelValue("Goal", p.Goal))
			fmt.Fprintln(out, ui.LabelValue("Intensity", p.Intensity))
			fmt.Fprintln(out, ui.LabelValue("Voice", p.VoiceTone))
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&country, "country", "", "Country")
	cmd.Flags().StringVar(&birthYear, "birth-year", "", "Birth year")
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "Weight in kg")
	cmd.Flags().StringVarP(&height, "height", "t", "", "Height in cm")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Goal (reduce|muscle|body)")
	cmd.Flags().StringVar(&intensity, "intensity", "", "Intensity (moderate|firm|hard)")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice tone (soft|firm|military)")
	cmd.Flags().StringVar(&language, "language", "", "Speech language tag (e.g. en-US)")

	return cmd
}
