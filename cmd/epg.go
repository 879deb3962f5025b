package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/export"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/source"
	"github.com/lineup-cli/lineup/style"
	"github.com/lineup-cli/lineup/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

const descriptionIndent = 8

func init() {
	rootCmd.AddCommand(epgCmd)

	epgCmd.Flags().BoolP("json", "j", false, "Print the IPTV manager guide document")
	epgCmd.Flags().StringSliceP("channel", "c", []string{}, "Only show the given channel ids")
	epgCmd.Flags().BoolP("descriptions", "d", false, "Show program descriptions")
	epgCmd.SetOut(os.Stdout)
}

// epgCmd prints the program guide of the configured window.
var epgCmd = &cobra.Command{
	Use:     "epg",
	Aliases: []string{"guide"},
	Short:   "Print the program guide",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := firstSource()
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching the guide from %s...", icon.Get(icon.Progress), src.Name()))
		epg, err := src.EPG(context.Background())
		erase()
		handleErr(err)

		if channels := lo.Must(cmd.Flags().GetStringSlice("channel")); len(channels) > 0 {
			epg = lo.PickByKeys(epg, channels)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(export.NewGuide(epg)))
			return
		}

		width := util.TerminalWidth(80)
		descriptions := lo.Must(cmd.Flags().GetBool("descriptions"))

		ids := lo.Keys(epg)
		slices.Sort(ids)

		for i, id := range ids {
			cmd.Println(style.Title(fmt.Sprintf("%s %s", icon.Get(icon.Guide), id)))
			for _, p := range epg[id] {
				cmd.Println(formatProgram(p, width, descriptions))
			}

			if i < len(ids)-1 {
				cmd.Println()
			}
		}
	},
}

func formatProgram(p *source.Program, width int, descriptions bool) string {
	var b strings.Builder

	b.WriteString(style.Fg(color.Cyan)(fmt.Sprintf("%s-%s", p.Start.Format("Mon 15:04"), p.Stop.Format("15:04"))))
	b.WriteString(" ")
	b.WriteString(style.Bold(p.Title))

	if episode, ok := p.Episode.Get(); ok {
		b.WriteString(" " + style.Fg(color.Yellow)(episode))
	}
	if subtitle, ok := p.Subtitle.Get(); ok {
		b.WriteString(" " + style.Italic(subtitle))
	}
	if p.Genre != "" {
		b.WriteString(" " + style.Faint("["+p.Genre+"]"))
	}

	if descriptions && p.Description != "" {
		wrapped := wordwrap.String(p.Description, util.Max(width-descriptionIndent, 20))
		b.WriteString("\n")
		b.WriteString(style.Faint(indent.String(wrapped, descriptionIndent)))
	}

	return b.String()
}
