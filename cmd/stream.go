package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/style"
	"github.com/lineup-cli/lineup/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().BoolP("json", "j", false, "Print the stream info as JSON")
	streamCmd.SetOut(os.Stdout)
}

var streamInfoTemplate = lo.Must(template.New("stream").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"value": style.Fg(style.AccentColor),
}).Parse(`{{ faint "Manifest" }}      {{ value .Path }}
{{ faint "Mime type" }}     {{ bold .MimeType }}
{{ faint "Manifest type" }} {{ bold .ManifestType }}
{{ faint "DRM" }}           {{ bold .DRM }}
{{ faint "License type" }}  {{ bold .LicenseType }}
{{ faint "License key" }}   {{ value .LicenseKey }}
`))

// streamCmd resolves the playback parameters of a channel.
var streamCmd = &cobra.Command{
	Use:   "stream [channel id]",
	Short: "Resolve the manifest and license of a channel",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := firstSource()
		handleErr(err)

		result, err := src.StreamInfo(context.Background(), args[0])
		handleErr(err)

		info, ok := result.Info()
		if !ok {
			printDenied(args[0], src)
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		handleErr(streamInfoTemplate.Execute(cmd.OutOrStdout(), info))
	},
}

func printDenied(channelID string, src source.Source) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Access denied", icon.Get(icon.Denied)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("%s does not allow this session to watch channel %s.", src.Name(), channelID))
	hint := fmt.Sprintf("Store a session cookie with %s", style.New().Foreground(style.AccentColor).Bold(true).Render("lineup session set "+src.ID()))

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			hint,
		),
	))
}
