// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"auditoria/cli/internal/config"
	"auditoria/cli/internal/xdg"
)

var (
	diagOnce   sync.Once
	diagLogger zerolog.Logger
)

// Diag returns the diagnostic logger, writing to auditoria.log in the XDG
// state dir. Raw server responses and decode failures go here; they are
// never shown to the user. Callers must mask secrets before logging
// free-form strings (use Mask).
func Diag() *zerolog.Logger {
	diagOnce.Do(func() {
		var w io.Writer = io.Discard
		if dir, err := xdg.StateDir(); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "auditoria.log"),
				os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
			}
		}
		diagLogger = zerolog.New(w).With().Timestamp().Logger().Level(diagLevel())
	})
	return &diagLogger
}

// diagLevel resolves the diagnostic log level: the configured log_level
// setting governs, with AUDITORIA_VERBOSE=1 as a debug override.
func diagLevel() zerolog.Level {
	if os.Getenv("AUDITORIA_VERBOSE") == "1" {
		return zerolog.DebugLevel
	}
	if cfg, err := config.Get(); err == nil {
		return parseLevel(cfg.LogLevel)
	}
	return zerolog.InfoLevel
}

// parseLevel maps a config log_level string onto a zerolog level.
// Unknown values fall back to info rather than silencing the log.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
