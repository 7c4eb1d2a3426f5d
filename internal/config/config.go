// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the bearer token goes to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"auditoria/cli/internal/xdg"
)

// DefaultBaseURL is used when no base URL has been configured.
const DefaultBaseURL = "http://localhost:3000"

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL      string `json:"base_url"`
	LogLevel     string `json:"log_level"`
	ForecastDays int    `json:"forecast_days"`
	// LogoutOn401 controls whether a rejected credential clears the local
	// session. The backend observed behavior is to keep the session and let
	// the user see an invalid-credentials message, so this defaults to false.
	LogoutOn401 bool `json:"logout_on_401"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// AUDITORIA_API_URL overrides the configured base URL when set.
func Load() (Config, error) {
	c := defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(c), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.ForecastDays <= 0 {
		c.ForecastDays = 7
	}
	return applyEnv(c), nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

func defaults() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		LogLevel:     "info",
		ForecastDays: 7,
	}
}

func applyEnv(c Config) Config {
	if env := strings.TrimSpace(os.Getenv("AUDITORIA_API_URL")); env != "" {
		c.BaseURL = strings.TrimRight(env, "/")
	}
	return c
}
