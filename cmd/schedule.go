package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/key"
	"github.com/lineup-cli/lineup/schedule"
	"github.com/lineup-cli/lineup/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(scheduleCmd)
	registerExportFlags(scheduleCmd)

	scheduleCmd.Flags().StringP("cron", "C", "", "Cron expression overriding "+key.ScheduleCron)
	lo.Must0(viper.BindPFlag(key.ScheduleCron, scheduleCmd.Flags().Lookup("cron")))

	scheduleCmd.Flags().Bool("now", false, "Run one export before waiting for the first activation")
}

// scheduleCmd keeps exporting on a cron schedule until interrupted.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Export periodically on a cron schedule",
	Long: `Run the export on every activation of the schedule.cron expression until interrupted.
A run that is still going when the next activation fires makes that activation skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		spec := viper.GetString(key.ScheduleCron)
		targets := exportTargetsFromFlags(cmd)
		if targets.stdout {
			handleErr(fmt.Errorf("--stdout is not supported by schedule"))
		}

		next, err := schedule.Next(spec, time.Now(), 1)
		handleErr(err)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if lo.Must(cmd.Flags().GetBool("now")) {
			handleErr(runExport(ctx, targets))
		}

		fmt.Printf("%s next export at %s, press ctrl+c to stop\n",
			icon.Get(icon.Clock),
			style.Bold(next[0].Format(time.DateTime)),
		)

		handleErr(schedule.Run(ctx, spec, func(ctx context.Context) error {
			return runExport(ctx, targets)
		}))
	},
}
