// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"auditoria/cli/internal/backend"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	auditsStatus string
)

// auditsCmd represents the audits command for listing audit records.
var auditsCmd = &cobra.Command{
	Use:   "audits",
	Short: "List your audit records",
	Long: `The audits command lists the audit notes you have recorded against uploaded
files, with their review status and timestamp. Filter by status with
--status (pending, approved, rejected).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cli, err := newClient()
		if err != nil {
			return err
		}

		records, err := cli.ListAudits(ctx)
		if err != nil {
			return reportError(err, "listing audit records")
		}

		filter := backend.AuditStatus(strings.ToLower(strings.TrimSpace(auditsStatus)))
		if auditsStatus != "" && !filter.Valid() {
			return fmt.Errorf("unknown status %q (want pending, approved or rejected)", auditsStatus)
		}

		data := pterm.TableData{{"ID", "File", "Status", "Audited at", "Notes"}}
		shown := 0
		for _, r := range records {
			if auditsStatus != "" && r.Status != filter {
				continue
			}
			shown++
			data = append(data, []string{
				fmt.Sprintf("%d", r.ID),
				fileIcon(r.File.Type) + " " + r.File.Filename,
				statusBadge(r.Status),
				formatDate(r.AuditedAt),
				truncateNotes(r.Notes, 48),
			})
		}

		if shown == 0 {
			pterm.Println("📋 No audit records yet.")
			return nil
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// statusBadge colors an audit status for terminal output.
func statusBadge(s backend.AuditStatus) string {
	switch s {
	case backend.StatusPending:
		return pterm.NewStyle(pterm.FgYellow).Sprint(s.DisplayName())
	case backend.StatusApproved:
		return pterm.NewStyle(pterm.FgGreen).Sprint(s.DisplayName())
	case backend.StatusRejected:
		return pterm.NewStyle(pterm.FgLightBlue).Sprint(s.DisplayName())
	}
	return string(s)
}

// truncateNotes shortens long note text for table cells.
// Truncation counts runes, not bytes: notes are frequently Spanish and a
// byte cut could split a multibyte character.
func truncateNotes(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

func init() {
	rootCmd.AddCommand(auditsCmd)
	auditsCmd.Flags().StringVar(&auditsStatus, "status", "", "Only show records with this status")
}
