// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// analysisCmd represents the analysis command for reading the AI analysis of
// a processed file.
var analysisCmd = &cobra.Command{
	Use:   "analysis <file-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Show the AI analysis for a file",
	Long: `The analysis command shows what the processing pipeline extracted from an
uploaded file: the AI-generated assessment and when the analysis ran. Files
are analyzed shortly after upload; a missing analysis usually means the
pipeline has not finished yet.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("file id must be a number: %q", args[0])
		}

		cli, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Fetching AI analysis")
		a, err := cli.GetAnalysis(ctx, id)
		stopSpinner()
		if err != nil {
			return reportError(err, fmt.Sprintf("fetching analysis for file %d", id))
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("📊 AI Analysis")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println(a.AIResponse)
		pterm.Printf("⏱  Analyzed %s · %d characters extracted\n", formatDate(a.AnalyzedAt), a.TextExtraction)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analysisCmd)
}
