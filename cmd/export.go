package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/export"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/journal"
	"github.com/lineup-cli/lineup/key"
	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/metrics"
	"github.com/lineup-cli/lineup/style"
	"github.com/lineup-cli/lineup/util"
	"github.com/lineup-cli/lineup/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportTargets describes where the documents of one run go.
type exportTargets struct {
	streams, epg bool
	dir          string
	stdout       bool
}

func (t exportTargets) path(providerID, kind string) string {
	switch {
	case kind == export.KindStreams && !t.streams, kind == export.KindEPG && !t.epg:
		return ""
	case t.stdout:
		return export.Stdout
	}

	return filepath.Join(t.dir, fmt.Sprintf("%s.%s.json", util.SanitizeFilename(providerID), kind))
}

func exportTargetsFromFlags(cmd *cobra.Command) exportTargets {
	targets := exportTargets{
		streams: lo.Must(cmd.Flags().GetBool("streams")),
		epg:     lo.Must(cmd.Flags().GetBool("epg")),
		dir:     lo.Must(cmd.Flags().GetString("output")),
		stdout:  lo.Must(cmd.Flags().GetBool("stdout")),
	}

	if !targets.streams && !targets.epg {
		targets.streams, targets.epg = true, true
	}
	if targets.dir == "" {
		targets.dir = where.Exports()
	}

	return targets
}

// runExport exports every selected provider, records the outcome and refreshes the metrics textfile.
func runExport(ctx context.Context, targets exportTargets) error {
	if targets.stdout && targets.streams && targets.epg {
		return errors.New("--stdout needs exactly one of --streams or --epg")
	}

	providers, err := selectedProviders()
	if err != nil {
		return err
	}

	for _, p := range providers {
		src, err := loadSource(p)
		if err != nil {
			return err
		}

		results, err := export.Run(ctx, &export.Options{
			Source:      src,
			StreamsPath: targets.path(p.ID, export.KindStreams),
			EPGPath:     targets.path(p.ID, export.KindEPG),
		})

		for _, r := range results {
			record := &journal.Record{
				RunID:    runID,
				Provider: p.ID,
				Kind:     r.Kind,
				Path:     r.Path,
				Count:    r.Count,
				At:       time.Now(),
				Duration: r.Duration,
			}
			if jerr := journal.Save(record); jerr != nil {
				log.Warnf("journal: %v", jerr)
			}

			if !targets.stdout {
				fmt.Fprintf(os.Stderr, "%s %s %s to %s\n",
					style.Fg(color.Green)(icon.Get(icon.Success)),
					style.Fg(color.Purple)(p.ID),
					util.Quantify(r.Count, r.Kind+" item", r.Kind+" items"),
					r.Path,
				)
			}
		}

		if err != nil {
			return err
		}
	}

	if path := viper.GetString(key.MetricsTextfile); path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics textfile: %w", err)
		}
	}

	return nil
}

func registerExportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("streams", "s", false, "Export the channel list")
	cmd.Flags().BoolP("epg", "e", false, "Export the program guide")
	cmd.Flags().StringP("output", "o", "", "Directory receiving the documents (defaults to the exports directory)")
	cmd.Flags().Bool("stdout", false, "Write the single requested document to stdout")
	cmd.MarkFlagsMutuallyExclusive("output", "stdout")
}

func init() {
	rootCmd.AddCommand(exportCmd)
	registerExportFlags(exportCmd)
	exportCmd.Flags().Bool("schema", false, "Print the JSON schemas of the documents and exit")
}

// exportCmd writes the IPTV manager documents of the selected providers.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export channels and program guides for the IPTV manager",
	Long: `Export the channel list and the program guide of the selected providers
as IPTV manager documents, one file per provider and document kind.`,
	Example: "  lineup export --epg --provider orange.re\n  lineup export --streams --stdout",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(export.Schema(&export.Streams{})))
			handleErr(encoder.Encode(export.Schema(&export.Guide{})))
			return
		}

		handleErr(runExport(cmd.Context(), exportTargetsFromFlags(cmd)))
	},
}
