package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/smsshield/internal/classify"
	"github.com/five82/smsshield/internal/state"
)

// Result card copy. Verdict titles come from classify.Verdict.Label.
const (
	spamBody   = "This message appears to be spam"
	legitBody  = "This message appears to be legitimate"
	errorTitle = "Error"
	errorBody  = "There was an error processing your request. Please try again."
)

// ResultCopy maps a resolved outcome to its icon, title and body. Every
// failure shares one generic message.
func ResultCopy(o state.Outcome) (icon, title, body string) {
	label := classify.Verdict{IsSpam: o.IsSpam}.Label()
	switch {
	case o.Kind == state.OutcomeClassified && o.IsSpam:
		return "⚠", label, spamBody
	case o.Kind == state.OutcomeClassified:
		return "✓", label, legitBody
	default:
		return "!", errorTitle, errorBody
	}
}

// renderResult renders the result card, or nothing before the first
// attempt resolves.
func renderResult(theme Theme, o state.Outcome, width int) string {
	if !o.Resolved() {
		return ""
	}
	styles := theme.Styles()
	icon, title, body := ResultCopy(o)

	accent := theme.Muted
	titleStyle := styles.Text.Bold(true)
	switch {
	case o.Kind == state.OutcomeClassified && o.IsSpam:
		accent = theme.Danger
		titleStyle = styles.DangerText
	case o.Kind == state.OutcomeClassified:
		accent = theme.Success
		titleStyle = styles.SuccessText
	}

	iconStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true).
		PaddingRight(2)

	inner := max(width-6, 1)
	text := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		styles.MutedText.Width(max(inner-3, 1)).Render(body),
	)

	return styles.Card.
		BorderForeground(lipgloss.Color(accent)).
		Width(max(width-2, 1)).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, iconStyle.Render(icon), text))
}
