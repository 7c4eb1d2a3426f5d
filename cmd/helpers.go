// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"
	"time"

	"auditoria/cli/internal/backend"
	"auditoria/cli/internal/client"
	"auditoria/cli/internal/config"
	"auditoria/cli/internal/events"
	"auditoria/cli/internal/keychain"
	"auditoria/cli/internal/logging"
	"auditoria/cli/internal/session"
)

// newClient wires the config, keychain-backed session, event bus and backend
// into the workflow client used by every command.
//
// A missing keychain is not fatal: the session then lives only in process
// memory, which still lets login-flow tests and exotic platforms work; the
// token just will not survive restart.
func newClient() (*client.Client, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, err
	}

	var secrets session.Secrets
	if km, err := keychain.GetManager(); err == nil {
		secrets = km
	} else {
		logging.Diag().Warn().Err(err).Msg("keychain unavailable; session will not persist")
	}

	store := session.NewStore(secrets)
	bus := events.NewBus()
	be := backend.New(cfg.BaseURL)
	return client.New(be, store, bus, cfg.LogoutOn401), nil
}

// formatDate renders an ISO timestamp the way the backend emits them into a
// human-friendly form; unparseable values pass through unchanged.
func formatDate(iso string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return iso
}

// fileIcon returns the marker used next to a filename in listings.
func fileIcon(fileType string) string {
	t := strings.ToLower(fileType)
	switch {
	case strings.Contains(t, "csv"), strings.Contains(t, "xlsx"):
		return "📊"
	case strings.Contains(t, "pdf"):
		return "📄"
	}
	return "📁"
}

// notLoggedIn prints the standard unauthenticated hint.
func notLoggedIn() {
	fmt.Println("🔒 You're not logged in yet!")
	fmt.Println("   Run 'auditoria login' to get started.")
}
