package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens s to limit cells, adding an ellipsis when it is cut.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return s
	}
	return ansi.Truncate(s, limit, "…")
}

// truncateMiddle keeps both ends of s, which suits URLs and paths where the
// host and the final segment carry the meaning.
func truncateMiddle(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// wrap hard-wraps plain text to width cells, preserving paragraph breaks.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}
