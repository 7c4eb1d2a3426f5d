// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"auditoria/cli/internal/httperrors"
	"auditoria/cli/internal/terminal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail         string
	loginGoogleIDToken string
)

// loginCmd represents the login command for password or Google authentication.
// It prompts for credentials (or takes them from flags), exchanges them for a
// bearer token and stores the token securely for subsequent commands.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate and store the session token",
	Long: `The login command authenticates against the AuditorIA backend and stores the
resulting bearer token in the OS keychain. Later commands attach that token to
every request automatically.

Two flows are supported:
  - email/password: prompts for the password (never echoed)
  - Google sign-in: pass an ID token with --google-id-token

If already logged in, logging in again simply replaces the stored token.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cli, err := newClient()
		if err != nil {
			return err
		}

		// Google flow short-circuits the interactive prompts. The ID token
		// carries no display name, so the greeting has no identifier.
		if tok := strings.TrimSpace(loginGoogleIDToken); tok != "" {
			stopSpinner := startInlineSpinner(os.Stdout, "Signing in with Google")
			err := cli.LoginWithGoogle(ctx, tok)
			stopSpinner()
			return finishLogin(err, "")
		}

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			reader := bufio.NewReader(os.Stdin)
			fmt.Print("Email: ")
			line, _ := reader.ReadString('\n')
			email = strings.TrimSpace(line)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}

		promptText := "Password: "
		fmt.Print(promptText)
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}
		// Remove the prompt so the password line never lingers on screen
		terminal.ClearPreviousLines(len(promptText))

		password := string(pwBytes)
		if password == "" {
			return fmt.Errorf("password is required")
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in")
		err = cli.Login(ctx, email, password)
		stopSpinner()
		return finishLogin(err, email)
	},
}

// finishLogin maps login outcomes to user-facing messages. Both login flows
// end here so success and failure read the same regardless of provider.
func finishLogin(err error, identifier string) error {
	if err == nil {
		fmt.Println(loginSuccessMessage(identifier))
		return nil
	}
	if msg, handled := presentAPIError(err, "signing in"); handled {
		fmt.Println(msg)
		return err
	}
	return httperrors.FormatNetworkError(err, "signing in")
}

// loginSuccessMessage greets the user by identifier when one is known.
func loginSuccessMessage(identifier string) string {
	if identifier == "" {
		return "✅ Login successful!"
	}
	return getRandomLoginGreeting(identifier)
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginGoogleIDToken, "google-id-token", "", "Google ID token for Google sign-in")
}

// getRandomLoginGreeting returns a random greeting phrase with the user's identifier
func getRandomLoginGreeting(identifier string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"👋 Hello %s! Ready to audit?",
		"✅ Authentication complete! Hi %s!",
		"🔓 Access granted! Welcome %s!",
	}

	idx := rand.Intn(len(greetings))
	return fmt.Sprintf(greetings[idx], identifier)
}
