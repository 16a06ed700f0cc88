package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drillcoach/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "drill",
	Short:         "DrillCoach, a local-first fitness coach",
	Long:          "DrillCoach is a local-first CLI/TUI fitness coach with missions, ranks and training minigames.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(),
		newBMICmd(),
		newAddCmd(),
		newDoneCmd(),
		newListCmd(),
		newRecommendCmd(),
		newStatusCmd(),
		newBoardCmd(),
		newChatCmd(),
		newMemoryCmd(),
		newQuizCmd(),
		newSettingsCmd(),
		newCoachCmd(),
		newDBCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
