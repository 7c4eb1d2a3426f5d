// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"auditoria/cli/internal/terminal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	registerFullName string
	registerEmail    string
)

// registerCmd represents the register command for creating a new account.
// It collects the full name, email and password and submits them to the
// backend. Registration does not log the user in; run 'auditoria login' after.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new AuditorIA account",
	Long: `The register command creates a new account on the AuditorIA backend. The
password is prompted interactively and never echoed. On success, log in with
'auditoria login'.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cli, err := newClient()
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)

		fullName := strings.TrimSpace(registerFullName)
		if fullName == "" {
			fmt.Print("Full name: ")
			line, _ := reader.ReadString('\n')
			fullName = strings.TrimSpace(line)
		}
		email := strings.TrimSpace(registerEmail)
		if email == "" {
			fmt.Print("Email: ")
			line, _ := reader.ReadString('\n')
			email = strings.TrimSpace(line)
		}
		if fullName == "" || email == "" {
			return fmt.Errorf("full name and email are required")
		}

		promptText := "Password: "
		fmt.Print(promptText)
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}
		terminal.ClearPreviousLines(len(promptText))

		if len(pwBytes) == 0 {
			return fmt.Errorf("password is required")
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Creating account")
		err = cli.Register(ctx, fullName, email, string(pwBytes))
		stopSpinner()
		if err != nil {
			return reportError(err, "registering")
		}

		fmt.Printf("✅ Account created for %s\n", email)
		fmt.Println("   Run 'auditoria login' to sign in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerFullName, "name", "", "Full name (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email (prompted when omitted)")
}
