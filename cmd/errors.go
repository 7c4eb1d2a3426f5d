// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	stderrors "errors"
	"fmt"

	apperrors "auditoria/cli/internal/errors"
	"auditoria/cli/internal/httperrors"
)

// presentAPIError translates typed backend errors into user-facing lines.
// The second result is false for transport-level failures, which get the
// richer httperrors treatment instead.
func presentAPIError(err error, context string) (string, bool) {
	switch apperrors.KindOf(err) {
	case apperrors.Unauthenticated:
		return "🔒 You're not logged in yet!\n   Run 'auditoria login' to get started.", true
	case apperrors.InvalidCredentials:
		return "❌ Invalid credentials. Check your email and password and try again.", true
	case apperrors.Server:
		var e *apperrors.E
		if asE(err, &e) && e.Message != "" {
			return fmt.Sprintf("⚠️  Server error while %s (status %d): %s", context, e.Status, e.Message), true
		}
		return fmt.Sprintf("⚠️  Server error while %s", context), true
	case apperrors.Decode:
		return "❌ The server returned an unexpected response. Details were written to the diagnostic log.", true
	case apperrors.InvalidArgument, apperrors.InvalidURL:
		var e *apperrors.E
		if asE(err, &e) {
			return "❌ " + e.Message, true
		}
		return "❌ " + err.Error(), true
	}
	return "", false
}

// reportError prints err through presentAPIError or, failing that, the
// network-error formatter. It returns err unchanged for exit-code purposes.
func reportError(err error, context string) error {
	if err == nil {
		return nil
	}
	if msg, handled := presentAPIError(err, context); handled {
		fmt.Println(msg)
		return err
	}
	return httperrors.FormatNetworkError(err, context)
}

func asE(err error, target **apperrors.E) bool {
	return stderrors.As(err, target)
}
