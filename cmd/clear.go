package cmd

import (
	"fmt"

	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/journal"
	"github.com/lineup-cli/lineup/util"
	"github.com/lineup-cli/lineup/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearTarget defines an artifact eligible for cleanup.
type clearTarget struct {
	name    string
	argLong string
	clear   func() error
}

func removePath(location func() string) func() error {
	return func() error {
		return util.Delete(location())
	}
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"exported documents", "exports", removePath(where.Exports)},
	{"export journal", "journal", journal.Clear},
	{"logs", "logs", removePath(where.Logs)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().BoolP(target.argLong, target.argLong[:1], false, fmt.Sprintf("clear %s", target.name))
	}
}

// clearCmd manages the cleanup of generated application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear exported documents, the export journal and logs",
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range targets {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
