// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"auditoria/cli/internal/backend"
	"auditoria/cli/internal/events"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	uploadContract bool
)

// uploadCmd represents the upload command for feeding documents into the
// processing pipeline. Sales data goes to the data pipeline by default;
// --contract routes the file to the contract pipeline instead.
//
// After a successful upload the refreshed file listing is shown immediately:
// the list view subscribes to the upload event rather than requiring a
// manual re-run.
var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Args:  cobra.ExactArgs(1),
	Short: "Upload a file into the processing pipeline",
	Long: `The upload command sends a local file (csv, xlsx, pdf) to the AuditorIA
processing pipeline, which extracts its contents and produces AI analysis.
Large documents are given a two-minute transfer window.

Use --contract for contract documents; everything else is treated as sales
data.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}

		cli, err := newClient()
		if err != nil {
			return err
		}

		// The listing refreshes through the event bus, not a manual re-fetch.
		uploaded := make(chan struct{}, 1)
		cli.Events().Subscribe(func(ev events.Event) {
			if ev.Type == events.FileUploaded {
				select {
				case uploaded <- struct{}{}:
				default:
				}
			}
		})

		kind := backend.UploadData
		if uploadContract {
			kind = backend.UploadContract
		}

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, fmt.Sprintf("Uploading %s", filepath.Base(path)))
		err = cli.Upload(ctx, kind, path)
		stopSpinner()
		cursor.Show()
		if err != nil {
			return reportError(err, "uploading "+filepath.Base(path))
		}

		pterm.Printf("✅ Uploaded %s into the %s pipeline\n", filepath.Base(path), kind)

		select {
		case <-uploaded:
			files, err := cli.ListFiles(ctx)
			if err != nil {
				// The upload itself succeeded; a failed refresh is not fatal.
				pterm.Println("⚠️  Could not refresh the file list; run 'auditoria files'.")
				return nil
			}
			pterm.Println()
			renderFileTable(filterFiles(files, "", "", false))
		default:
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().BoolVar(&uploadContract, "contract", false, "Upload as a contract document")
}
