// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package preview interprets raw file bytes fetched from the backend for
// terminal display. CSV and spreadsheet exports become a cell grid, PDFs and
// other binary types are written to disk, everything else is shown as text.
package preview

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Kind classifies how preview bytes should be presented.
type Kind int

const (
	// KindTable is CSV-like content rendered as a grid.
	KindTable Kind = iota
	// KindText is plain textual content.
	KindText
	// KindBinary is content that cannot be shown inline (PDF etc.).
	KindBinary
)

// Classify picks a presentation for a file based on its name, the reported
// content type and the payload itself.
func Classify(filename, contentType string, data []byte) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	ct := strings.ToLower(contentType)

	switch {
	case ext == "csv" || ext == "xlsx" || strings.Contains(ct, "csv"):
		return KindTable
	case ext == "pdf" || strings.Contains(ct, "pdf"):
		return KindBinary
	}
	if !utf8.Valid(data) {
		return KindBinary
	}
	return KindText
}

// Table parses CSV bytes into rows of cells. Ragged rows are tolerated:
// server exports are not always rectangular.
func Table(data []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}
