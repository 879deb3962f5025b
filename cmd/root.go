// Package cmd implements the command-line interface for lineup.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/constant"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/key"
	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/provider"
	"github.com/lineup-cli/lineup/style"
	"github.com/lineup-cli/lineup/telemetry"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runID identifies this invocation in logs, the export journal and error reports.
var runID = uuid.NewString()

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("provider", "p", []string{}, "Providers to use, by id or name")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("provider")))

	log.SetField("run", runID)
}

// rootCmd defines the entry point for the lineup application.
var rootCmd = &cobra.Command{
	Use:   constant.Lineup,
	Short: "Live TV channels and program guides from Orange for your media center",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.Orange).Render("    - Live TV channels and program guides from Orange for your media center"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := telemetry.Setup(viper.GetString(key.TelemetrySentryDSN)); err != nil {
			log.Warnf("error reporting disabled: %v", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	defer telemetry.Flush()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		telemetry.Flush()
		os.Exit(1)
	}
}

// handleErr is the single error sink of every command: the error is logged,
// reported and printed before the process exits with status 1.
func handleErr(err error) {
	if err != nil {
		log.Error(err)
		telemetry.CaptureError(err, map[string]string{
			"run":     runID,
			"command": strings.Join(os.Args[1:min(len(os.Args), 2)], " "),
		})
		telemetry.Flush()

		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
