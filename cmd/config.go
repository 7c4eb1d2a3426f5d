// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"auditoria/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	configSetURL       string
	configForecastDays int
	configLogLevel     string
	configLogoutOn401  string
)

// configCmd represents the config command for viewing and changing
// non-secret CLI settings. Secrets never live in the config file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
	Long: `The config command shows the current CLI settings and, with flags, updates
them. Settings are stored in the XDG config directory; the session token is
not among them (it lives in the OS keychain).

AUDITORIA_API_URL overrides the configured base URL for a single invocation.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if u := strings.TrimSpace(configSetURL); u != "" {
			cfg.BaseURL = strings.TrimRight(u, "/")
			changed = true
		}
		if configForecastDays > 0 {
			cfg.ForecastDays = configForecastDays
			changed = true
		}
		if lvl := strings.ToLower(strings.TrimSpace(configLogLevel)); lvl != "" {
			switch lvl {
			case "trace", "debug", "info", "warn", "error":
				cfg.LogLevel = lvl
			default:
				return fmt.Errorf("--log-level wants trace, debug, info, warn or error, got %q", configLogLevel)
			}
			changed = true
		}
		if v := strings.ToLower(strings.TrimSpace(configLogoutOn401)); v != "" {
			switch v {
			case "true", "yes", "on":
				cfg.LogoutOn401 = true
			case "false", "no", "off":
				cfg.LogoutOn401 = false
			default:
				return fmt.Errorf("--logout-on-401 wants true or false, got %q", configLogoutOn401)
			}
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			config.ClearCache()
			pterm.Println("✅ Settings saved")
			pterm.Println()
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Settings")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println(fmt.Sprintf("Base URL: %s\nForecast days: %d\nLog level: %s\nLogout on rejected credential: %v",
				cfg.BaseURL, cfg.ForecastDays, cfg.LogLevel, cfg.LogoutOn401))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configSetURL, "set-url", "", "Set the backend base URL")
	configCmd.Flags().IntVar(&configForecastDays, "forecast-days", 0, "Set the default forecast horizon")
	configCmd.Flags().StringVar(&configLogLevel, "log-level", "", "Set the diagnostic log level (trace, debug, info, warn, error)")
	configCmd.Flags().StringVar(&configLogoutOn401, "logout-on-401", "", "Clear the session when the backend rejects the credential (true/false)")
}
