package cmd

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"text/template"

	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/constant"
	"github.com/lineup-cli/lineup/provider"
	"github.com/lineup-cli/lineup/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"orange": style.Fg(color.Orange),
	"join":   strings.Join,
}).Parse(`{{ orange "▇▇▇" }} {{ orange .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Go" }}              {{ bold .Go }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Providers" }}       {{ bold (join .Providers ", ") }}
`))

// revision prefers the link-time revision and falls back to the VCS stamp of the build.
func revision() string {
	if constant.Revision != "unknown" {
		return constant.Revision
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return constant.Revision
	}

	setting, ok := lo.Find(info.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	})
	if !ok {
		return constant.Revision
	}
	return setting.Value
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display exhaustive version and build metadata",
	Long:  "Display the current application version, build revision, platform architecture, and bundled providers.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, Revision, BuiltAt, BuiltBy string
			Go, OS, Arch                             string
			Providers                                []string
		}{
			App:      constant.Lineup,
			Version:  constant.Version,
			Revision: revision(),
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Go:       runtime.Version(),
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Providers: lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
				return p.ID
			}),
		}))
	},
}
