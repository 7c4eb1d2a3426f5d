// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the AuditorIA CLI application.
// It implements subcommands for authentication, file management, audit records,
// AI analysis and sales forecasting using the Cobra CLI framework. The package
// handles command parsing, execution, and provides a rich terminal UI with
// spinners and tables.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the AuditorIA CLI application.
var rootCmd = &cobra.Command{
	Use:           "auditoria",
	Short:         "AuditorIA CLI for document auditing and sales forecasting",
	Long:          `AuditorIA is a command-line client for the AuditorIA document-auditing service: upload sales data and contracts, read AI analysis, record audit notes and request sales forecasts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("auditoria %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
