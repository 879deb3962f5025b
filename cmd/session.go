package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lineup-cli/lineup/auth"
	"github.com/lineup-cli/lineup/color"
	"github.com/lineup-cli/lineup/icon"
	"github.com/lineup-cli/lineup/provider"
	"github.com/lineup-cli/lineup/style"
	"github.com/spf13/cobra"
)

func sessionProvider(args []string) *provider.Provider {
	p, ok := provider.Get(args[0])
	if !ok {
		handleErr(errUnknownProvider(args[0]))
	}
	return p
}

func completionProviders(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var ids []string
	for _, p := range provider.Builtins() {
		ids = append(ids, p.ID)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

// sessionCmd manages provider session cookies stored in the system keyring.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage provider sessions",
	Long: `Manage the session cookies replayed to the providers.
Log in on the provider website with a browser, then copy the Cookie header of any request.`,
}

func init() {
	sessionCmd.AddCommand(sessionSetCmd)
	sessionSetCmd.Flags().StringP("cookie", "c", "", "Cookie header value, prompted for when omitted")
}

// sessionSetCmd stores the session cookie of a provider.
var sessionSetCmd = &cobra.Command{
	Use:               "set [provider]",
	Short:             "Store the session cookie of a provider",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProviders,
	Run: func(cmd *cobra.Command, args []string) {
		p := sessionProvider(args)

		cookie, _ := cmd.Flags().GetString("cookie")
		if cookie == "" {
			prompt := &survey.Password{
				Message: fmt.Sprintf("Cookie header for %s:", p.Name),
				Help:    "Copy the Cookie request header from the browser developer tools",
			}
			handleErr(survey.AskOne(prompt, &cookie, survey.WithValidator(survey.Required)))
		}

		cookie = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cookie), "Cookie:"))
		if cookie == "" {
			handleErr(errors.New("empty cookie"))
		}

		handleErr(auth.SetSession(p.ID, cookie))
		fmt.Printf("%s stored session for %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(p.ID))
	},
}

func init() {
	sessionCmd.AddCommand(sessionDeleteCmd)
}

// sessionDeleteCmd forgets the session cookie of a provider.
var sessionDeleteCmd = &cobra.Command{
	Use:               "delete [provider]",
	Aliases:           []string{"remove"},
	Short:             "Forget the session cookie of a provider",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProviders,
	Run: func(cmd *cobra.Command, args []string) {
		p := sessionProvider(args)

		handleErr(auth.DeleteSession(p.ID))
		fmt.Printf("%s deleted session for %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(p.ID))
	},
}
