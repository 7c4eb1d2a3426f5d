// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// rmCmd represents the rm command for deleting an uploaded file.
var rmCmd = &cobra.Command{
	Use:     "rm <file-id>",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	Short:   "Delete an uploaded file",
	Long: `The rm command deletes a file by its numeric id (shown in 'auditoria files').
Deletion also removes the derived analysis on the backend and cannot be undone.`,

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

		if err := cli.DeleteFile(ctx, id); err != nil {
			return reportError(err, fmt.Sprintf("deleting file %d", id))
		}

		fmt.Printf("🗑️  File %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
