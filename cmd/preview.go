// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"auditoria/cli/internal/preview"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	previewOut     string
	previewMaxRows int
)

// previewCmd represents the preview command for inspecting stored file content.
// CSV content renders as a grid, text is printed as-is, and binary content
// (PDF) is written to a local file for an external viewer.
var previewCmd = &cobra.Command{
	Use:   "preview <filename>",
	Args:  cobra.ExactArgs(1),
	Short: "Show the content of an uploaded file",
	Long: `The preview command fetches the raw content of an uploaded file by its stored
filename (shown in 'auditoria files') and renders it in the terminal. CSV and
spreadsheet exports become a table; PDFs are saved next to the current
directory (or to --out) since they cannot be shown inline.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		filename := args[0]

		cli, err := newClient()
		if err != nil {
			return err
		}

		data, contentType, err := cli.Preview(ctx, filename)
		if err != nil {
			return reportError(err, "fetching preview of "+filename)
		}

		switch preview.Classify(filename, contentType, data) {
		case preview.KindTable:
			rows, err := preview.Table(data)
			if err != nil || len(rows) == 0 {
				// Fall back to raw text when the CSV does not parse
				fmt.Println(string(data))
				return nil
			}
			if previewMaxRows > 0 && len(rows) > previewMaxRows {
				rows = rows[:previewMaxRows]
				defer pterm.Printf("… truncated; pass --rows 0 for the full file\n")
			}
			table := pterm.TableData{}
			for _, r := range rows {
				table = append(table, r)
			}
			return pterm.DefaultTable.WithHasHeader().WithData(table).Render()

		case preview.KindBinary:
			out := previewOut
			if out == "" {
				out = filepath.Base(filename)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("📄 Saved %d bytes to %s (binary content cannot be shown inline)\n", len(data), out)
			return nil

		default:
			fmt.Println(string(data))
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewOut, "out", "", "Write binary content to this path")
	previewCmd.Flags().IntVar(&previewMaxRows, "rows", 25, "Maximum table rows to show (0 = unlimited)")
}
