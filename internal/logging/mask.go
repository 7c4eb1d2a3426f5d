// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials and secrets.
//
// The package helps ensure that sensitive data like passwords and bearer tokens
// are not accidentally exposed in logs or error messages shown to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)("?password"?\s*[:=]\s*"?)([^\s;",}]+)`)
	reBearer   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken    = regexp.MustCompile(`(?i)("?(?:token|access_token|id_token|idToken)"?\s*[:=]\s*"?)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// Bearer credentials, token fields and passwords are masked whether they
// appear as query parameters, JSON fields or header values.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"AUDITORIA_TOKEN", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
