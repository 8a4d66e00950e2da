package ui

import (
	"time"

	"github.com/five82/smsshield/internal/prefs"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the nav tabs collapse
	// into the menu toggle.
	LayoutCompactWidth = 80

	// ContentMaxWidth caps the width of the centered content column.
	ContentMaxWidth = 96

	// ContentMinWidth is the narrowest content column we lay out for.
	ContentMinWidth = 24
)

// DefaultUIInterval is how often the footer is redrawn to pick up health
// changes.
const DefaultUIInterval = time.Second

// healthTimeFormat renders the time of the last backend check in the footer.
const healthTimeFormat = "15:04:05"

// InputHeight is the visible height of the message box. The box scrolls
// and accepts input of any length.
const InputHeight = 5

// compact reports whether the compact navigation layout is active.
func (m Model) compact() bool {
	switch m.layout {
	case prefs.LayoutCompact:
		return true
	case prefs.LayoutWide:
		return false
	}
	return m.width < LayoutCompactWidth
}

// contentWidth returns the width of the centered content column.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w > ContentMaxWidth {
		w = ContentMaxWidth
	}
	if w < ContentMinWidth {
		w = ContentMinWidth
	}
	return w
}
