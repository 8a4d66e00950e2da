package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/smsshield/internal/state"
)

const (
	appTitle       = "SMS Shield"
	menuLabel      = "☰ Menu"
	menuCloseLabel = "✕ Close"
	cursorGlyph    = "›"
)

// renderHeader renders the navigation bar. Below LayoutCompactWidth the tabs
// collapse into a single menu toggle.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Spaces(1) + bg.Render("◆ "+appTitle, styles.Logo)

	var right string
	if m.compact() {
		label := menuLabel
		if m.nav.MenuOpen {
			label = menuCloseLabel
		}
		right = bg.Render(label, styles.AccentText) + bg.Spaces(1)
	} else {
		tabs := make([]string, 0, len(state.Views))
		for _, v := range state.Views {
			style := styles.InactiveTab
			if v == m.nav.Active {
				style = styles.ActiveTab
			}
			tabs = append(tabs, bg.Render(v.Title(), style))
		}
		right = bg.Join(tabs, "   ") + bg.Spaces(1)
	}

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return bg.FillLine(ansi.Truncate(left+bg.Spaces(1)+right, m.width, ""), m.width)
	}
	return bg.FillLine(left+bg.Spaces(gap)+right, m.width)
}

// renderMenu renders the open compact menu as a vertical list.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := make([]string, 0, len(state.Views)+1)
	for i, v := range state.Views {
		cursor := "  "
		if i == m.menuCursor {
			cursor = cursorGlyph + " "
		}
		style := styles.Text
		if v == m.nav.Active {
			style = styles.ActiveTab
		}
		line := bg.Render(" "+cursor, styles.AccentText) + bg.Render(v.Title(), style)
		lines = append(lines, bg.FillLine(line, m.width))
	}
	rule := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Border)).
		Render(strings.Repeat("─", max(m.width, 0)))
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}
