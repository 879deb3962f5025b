package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/key"
	"github.com/lineup-cli/lineup/provider"
	"github.com/lineup-cli/lineup/source"
	"github.com/lineup-cli/lineup/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownProvider(name string) error {
	msg := fmt.Sprintf("unknown provider %s", style.Fg(color.Red)(name))
	if suggestions := provider.Suggest(name); len(suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(suggestions[0]))
	}

	return errors.New(msg)
}

// selectedProviders resolves the providers named by --provider or the sources.default setting.
func selectedProviders() ([]*provider.Provider, error) {
	names := viper.GetStringSlice(key.DefaultSources)
	if len(names) == 0 {
		return nil, fmt.Errorf("no provider selected, use --provider or set %s", key.DefaultSources)
	}

	providers := make([]*provider.Provider, 0, len(names))
	for _, name := range lo.Uniq(names) {
		p, ok := provider.Get(name)
		if !ok {
			return nil, errUnknownProvider(name)
		}
		providers = append(providers, p)
	}

	return providers, nil
}

func loadSource(p *provider.Provider) (source.Source, error) {
	env, err := provider.EnvFromConfig(p)
	if err != nil {
		return nil, err
	}

	return p.CreateSource(env), nil
}

// firstSource loads the first selected provider, for commands working on a single backend.
func firstSource() (source.Source, error) {
	providers, err := selectedProviders()
	if err != nil {
		return nil, err
	}

	return loadSource(providers[0])
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

// providersCmd provides a parent command for inspecting TV providers.
var providersCmd = &cobra.Command{
	Use:     "providers",
	Aliases: []string{"sources"},
	Short:   "Inspect the available TV providers",
}

func init() {
	providersCmd.AddCommand(providersListCmd)

	providersListCmd.Flags().BoolP("raw", "r", false, "Print provider ids only")
	providersListCmd.SetOut(os.Stdout)
}

// providersListCmd displays every built-in provider.
var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all available TV providers",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, p := range provider.Builtins() {
				cmd.Println(p.ID)
			}
			return
		}

		selected := lo.Map(viper.GetStringSlice(key.DefaultSources), func(name string, _ int) string {
			return strings.ToLower(name)
		})

		cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Builtin:"))
		for _, p := range provider.Builtins() {
			marker := " "
			if lo.Contains(selected, p.ID) || lo.Contains(selected, strings.ToLower(p.Name)) {
				marker = style.Fg(color.Green)("*")
			}

			cmd.Printf("%s %s %s %s\n", marker, style.Fg(color.Purple)(p.ID), p.Name, style.Faint("("+p.Country+")"))
		}
	},
}
