// Package main is the entry point for the AuditorIA CLI application.
// It provides document auditing and sales forecasting workflows against
// the AuditorIA backend service.
package main

import (
	"auditoria/cli/cmd"
)

// main is the entry point for the AuditorIA CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
