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
	filesType   string
	filesSearch string
	filesAll    bool
)

// filesCmd represents the files command for browsing uploaded documents.
// It lists the caller's files with optional type and name filters, mirroring
// the search and segmented type picker of the file browser.
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List your uploaded files",
	Long: `The files command lists the documents you have uploaded, newest first as
returned by the backend. Inactive files are hidden unless --all is given.

Filter by type (csv, xlsx, pdf) with --type and by filename substring with
--search.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cli, err := newClient()
		if err != nil {
			return err
		}

		files, err := cli.ListFiles(ctx)
		if err != nil {
			return reportError(err, "listing files")
		}

		shown := filterFiles(files, filesType, filesSearch, filesAll)
		if len(shown) == 0 {
			pterm.Println("📂 No files match.")
			return nil
		}

		renderFileTable(shown)
		return nil
	},
}

// filterFiles applies the type/search/active filters to a listing.
func filterFiles(files []backend.File, fileType, search string, includeInactive bool) []backend.File {
	fileType = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), "."))
	search = strings.ToLower(strings.TrimSpace(search))

	var out []backend.File
	for _, f := range files {
		if !includeInactive && !f.IsActive {
			continue
		}
		if fileType != "" && !strings.Contains(strings.ToLower(f.Type), fileType) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(f.Filename), search) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// renderFileTable prints a file listing as a table.
func renderFileTable(files []backend.File) {
	data := pterm.TableData{{"ID", "File", "Type", "Uploaded by", "Uploaded at"}}
	for _, f := range files {
		data = append(data, []string{
			fmt.Sprintf("%d", f.ID),
			fileIcon(f.Type) + " " + f.Filename,
			strings.ToUpper(strings.TrimPrefix(f.Type, ".")),
			f.User.FullName,
			formatDate(f.UploadedAt),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().StringVar(&filesType, "type", "", "Only show files of this type (csv, xlsx, pdf)")
	filesCmd.Flags().StringVar(&filesSearch, "search", "", "Only show files whose name contains this text")
	filesCmd.Flags().BoolVar(&filesAll, "all", false, "Include inactive files")
}
