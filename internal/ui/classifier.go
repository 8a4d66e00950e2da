package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/smsshield/internal/state"
)

const (
	inputPlaceholder = "Paste your SMS message here..."
	buttonIdle       = "Check Message"
	buttonBusy       = "Analyzing..."
	emptyNoticeTitle = "Nothing to check"
	emptyNoticeBody  = "Please enter an SMS message"
)

// resolvedMsg carries the outcome of one classification back to Update.
type resolvedMsg struct {
	ticketID string
	outcome  state.Outcome
}

// classifyCmd completes the ticket off the event loop.
func classifyCmd(ctx context.Context, c *state.Controller, t state.Ticket) tea.Cmd {
	return func() tea.Msg {
		return resolvedMsg{ticketID: t.ID, outcome: c.Complete(ctx, t)}
	}
}

func newInput(keys keyMap) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(InputHeight)
	ta.KeyMap.InsertNewline = keys.Newline
	return ta
}

func newSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

// applyInputTheme restyles the textarea and spinner for the active theme.
func (m *Model) applyInputTheme() {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	placeholder := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))

	focused, blurred := textarea.DefaultStyles()
	focused.Base = lipgloss.NewStyle()
	focused.CursorLine = text
	focused.Text = text
	focused.Placeholder = placeholder
	blurred.Base = lipgloss.NewStyle()
	blurred.CursorLine = text
	blurred.Text = text
	blurred.Placeholder = placeholder
	m.input.FocusedStyle = focused
	m.input.BlurredStyle = blurred

	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
}

// typing reports whether keystrokes go to the input box.
func (m Model) typing() bool {
	return m.nav.Active == state.ViewClassifier && m.input.Focused()
}

// submit starts a classification of the current input. A press while a
// request is outstanding does nothing; blank input raises the notice.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.controller.Snapshot().CanSubmit() {
		return m, nil
	}

	ticket, err := m.controller.Begin(m.input.Value())
	switch {
	case errors.Is(err, state.ErrEmptyInput):
		m.modal = newNoticeModal(emptyNoticeTitle, emptyNoticeBody)
		return m, nil
	case err != nil:
		m.logger.Debug("submit rejected", "error", err)
		return m, nil
	}

	cmds := []tea.Cmd{classifyCmd(m.ctx, m.controller, ticket)}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// handleSpinnerTick advances the spinner while a request is outstanding and
// lets the tick chain lapse once it resolves.
func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.controller.Snapshot().InFlight() {
		m.spinning = false
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// resizeInput fits the textarea to the content column.
func (m *Model) resizeInput() {
	// card border and padding, then the input box border and padding
	m.input.SetWidth(max(m.contentWidth()-6-4, 1))
}

// renderClassifier renders the classifier view from one snapshot.
func (m Model) renderClassifier(snap state.Snapshot) string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	hero := []string{
		styles.Text.Bold(true).Render("Detect SMS Spam"),
		styles.AccentText.Bold(true).Render("with AI Precision"),
		styles.MutedText.Render(wrap("Our model helps you identify spam messages instantly.", width)),
	}

	border := m.theme.Border
	if m.input.Focused() {
		border = m.theme.BorderFocus
	}
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Render(m.input.View())

	button := styles.Button.Render(buttonIdle)
	if snap.InFlight() {
		button = styles.DisabledButton.Render(m.spinner.View() + " " + buttonBusy)
	}
	hint := "enter to check · alt+enter for a new line"
	if !m.input.Focused() {
		hint = "i to edit the message"
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", styles.FaintText.Render(hint))

	card := styles.Card.Width(max(width-2, 1)).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Bold(true).Render("Enter SMS Message"),
		"",
		inputBox,
		"",
		controls,
	))

	parts := []string{strings.Join(hero, "\n"), "", card}
	if result := renderResult(m.theme, snap.Outcome, width); result != "" {
		parts = append(parts, "", result)
	}
	return strings.Join(parts, "\n")
}
