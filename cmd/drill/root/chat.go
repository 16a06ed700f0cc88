package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"drillcoach/internal/audio"
	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the coaching assistant",
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
			chat := engine.NewChat(p, speaker)

			fmt.Fprintln(out, ui.Heading(ui.IconChat, "Coach chat: type a message, or 'exit'"))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, ui.Key.Render("you> "))
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}
				reply := chat.Send(line)
				fmt.Fprintln(out, ui.H2.Render("coach>")+" "+reply)
			}
			return scanner.Err()
		},
	}
}
