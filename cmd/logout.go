// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the stored bearer token from the OS keychain and resets the
// in-memory session. Logging out twice in a row is harmless.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session token",
	Long: `The logout command clears the local session. It removes the bearer token from
the OS keychain; subsequent commands that need authentication will ask you to
log in again. There is no server-side session to invalidate.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newClient()
		if err != nil {
			return err
		}

		cli.Logout()

		fmt.Println("✅ Session token removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
