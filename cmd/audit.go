// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"auditoria/cli/internal/backend"

	"github.com/spf13/cobra"
)

var (
	auditNotes  string
	auditStatus string
)

// auditCmd represents the audit command for recording a note and review
// status against a file. Notes must be non-empty; the status is one of
// pending, approved or rejected.
var auditCmd = &cobra.Command{
	Use:   "audit <file-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Record an audit note for a file",
	Long: `The audit command attaches a note and a review status to an uploaded file.

Example:
  auditoria audit 12 --notes "Numbers match the Q3 ledger" --status approved`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fileID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("file id must be a number: %q", args[0])
		}

		cli, err := newClient()
		if err != nil {
			return err
		}

		req := backend.AuditRequest{
			FileID: fileID,
			Notes:  auditNotes,
			Status: backend.AuditStatus(strings.ToLower(auditStatus)),
		}
		if err := cli.SubmitAudit(ctx, req); err != nil {
			return reportError(err, fmt.Sprintf("recording audit for file %d", fileID))
		}

		fmt.Printf("✅ Audit recorded for file %d (%s)\n", fileID, req.Status.DisplayName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().StringVar(&auditNotes, "notes", "", "Audit note text (required)")
	auditCmd.Flags().StringVar(&auditStatus, "status", "pending", "Review status: pending, approved or rejected")
	_ = auditCmd.MarkFlagRequired("notes")
}
