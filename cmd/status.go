package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/journal"
	"github.com/lineup-cli/lineup/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolP("json", "j", false, "Print the journal as JSON")
	statusCmd.SetOut(os.Stdout)
}

// statusCmd prints the latest export of every provider and document kind.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest exports",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := journal.Sorted()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No export recorded yet. Run \"lineup export\" first."))
			return
		}

		for _, r := range records {
			cmd.Printf("%s %s %s %s %s\n",
				icon.Get(icon.Success),
				style.Fg(color.Purple)(r.Provider),
				style.Bold(r.Kind),
				style.Fg(color.Yellow)(lo.Ternary(r.Path == "-", "stdout", r.Path)),
				style.Faint(r.String()+", took "+r.Duration.Round(time.Millisecond).String()),
			)
		}
	},
}
