package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/export"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/style"
	"github.com/lineup-cli/lineup/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(channelsCmd)

	channelsCmd.Flags().BoolP("json", "j", false, "Print the IPTV manager streams document")
	channelsCmd.SetOut(os.Stdout)
}

// channelsCmd lists the channels the session may watch.
var channelsCmd = &cobra.Command{
	Use:     "channels",
	Aliases: []string{"streams"},
	Short:   "List the channels available to the current session",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := firstSource()
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching channels from %s...", icon.Get(icon.Progress), src.Name()))
		channels, err := src.Channels(context.Background())
		erase()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(export.NewStreams(channels)))
			return
		}

		preset := style.Tag(color.White, color.Purple)
		for _, c := range channels {
			cmd.Printf("%s %s %s\n", preset(fmt.Sprintf("%3d", c.Preset)), style.Bold(c.Name), style.Faint(c.ID))
		}

		cmd.Printf("\n%s %s\n", icon.Get(icon.Channel), util.Quantify(len(channels), "channel", "channels"))
	},
}
