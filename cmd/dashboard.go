// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"auditoria/cli/internal/dashboard"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dashboardCmd represents the dashboard command for the account overview.
// It combines the file and audit listings into the stat cards the product
// shows on its landing screen.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show an overview of your files and audits",
	Long: `The dashboard command summarizes your account: how many files are uploaded
and active, how many audits reached a decision, and how many files still await
review.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cli, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Loading overview")
		files, err := cli.ListFiles(ctx)
		if err != nil {
			stopSpinner()
			return reportError(err, "loading the dashboard")
		}
		audits, err := cli.ListAudits(ctx)
		stopSpinner()
		if err != nil {
			return reportError(err, "loading the dashboard")
		}

		stats := dashboard.Compute(files, audits)

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Your Dashboard")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println("Welcome 👋")

		statCard("📄 Total files", stats.TotalFiles, pterm.FgCyan)
		statCard("✅ Completed audits", stats.CompletedAudits, pterm.FgGreen)
		statCard("⏳ Awaiting review", stats.AwaitingReview, pterm.FgYellow)

		pterm.Println()
		pterm.Printf("Active files: %d · Pending: %d · Approved: %d · Reviewed: %d\n",
			stats.ActiveFiles, stats.PendingAudits, stats.ApprovedAudits, stats.RejectedAudits)
		return nil
	},
}

// statCard prints one labeled counter line.
func statCard(label string, value int, color pterm.Color) {
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint(label+": ") +
		pterm.NewStyle(color, pterm.Bold).Sprintf("%d", value))
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
