// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateNotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"short text untouched", "looks fine", 48, "looks fine"},
		{"newlines flattened", "line one\nline two", 48, "line one line two"},
		{"long ascii truncated", "aaaaaaaaaa", 4, "aaaa…"},
		{"accented text cut on rune boundary", "la revisión está pendiente", 10, "la revisió…"},
		{"cut right before accent", "está", 3, "est…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateNotes(tt.input, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
		})
	}
}
