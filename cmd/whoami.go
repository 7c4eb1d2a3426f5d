package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current session state.
// The backend has no account-introspection endpoint, so this reports purely
// local state: whether a stored credential exists.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current session state",
	Long: `The whoami command reports whether a session token is stored on this machine.
A present token does not guarantee the backend still accepts it; an expired
credential is only discovered when a request is rejected.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newClient()
		if err != nil {
			return err
		}

		if !cli.Session().IsAuthenticated() {
			notLoggedIn()
			return nil
		}

		fmt.Println("👤 Logged in — a session token is stored for this machine")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
