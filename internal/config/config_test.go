// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AUDITORIA_API_URL", "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 7, c.ForecastDays)
	assert.False(t, c.LogoutOn401)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AUDITORIA_API_URL", "")

	want := Config{
		BaseURL:      "https://audit.example.com",
		LogLevel:     "debug",
		ForecastDays: 14,
		LogoutOn401:  true,
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AUDITORIA_API_URL", "https://staging.example.com/")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", c.BaseURL)
}

func TestConfigFileHasPrivatePermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, Save(Config{BaseURL: "http://x"}))

	info, err := os.Stat(filepath.Join(dir, "auditoria", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
