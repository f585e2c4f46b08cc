// Package utils provides small string helpers shared across the pipeline.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CleanCell trims a raw CSV cell and collapses internal whitespace runs.
func CleanCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeHeader converts a raw column header into the canonical lookup form:
// lower-cased, trimmed, spaces and hyphens replaced with underscores.
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// PadRight pads s with spaces to the given display width. Width is measured
// with runewidth so CJK organization and site names align in rendered tables.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Truncate shortens s to at most maxLength runes, appending an ellipsis.
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength]) + "..."
}
