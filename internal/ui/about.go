package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

type aboutBlock struct {
	heading string
	paras   []string
	bullets []string
	after   string
}

var aboutCopy = []aboutBlock{
	{
		paras: []string{
			"SMS Shield is a spam classification service that helps you identify and filter out unwanted text messages. " +
				"A machine learning model analyzes message content to decide whether a message is legitimate or spam.",
			"SMS scams and phishing attempts are everywhere, and a reliable check matters. " +
				"SMS Shield gives you an instant answer so you can stay clear of potential threats.",
		},
	},
	{
		heading: "How It Works",
		paras: []string{
			"The service runs a natural language processing model trained on thousands of legitimate and spam messages. " +
				"When you submit a message, the model looks at features such as:",
		},
		bullets: []string{
			"Text patterns and keywords commonly found in spam",
			"Message structure and formatting",
			"Presence of suspicious links or requests",
			"Urgency indicators and emotional manipulation tactics",
		},
		after: "The result is a classification that helps you make informed decisions about the messages you receive.",
	},
	{
		heading: "Privacy First",
		paras: []string{
			"Messages submitted to the service are processed securely and are not stored permanently. " +
				"Your data is never shared with third parties or used for advertising.",
		},
	},
}

// newAboutViewport builds the scrollable About page body.
func newAboutViewport() viewport.Model {
	vp := viewport.New(ContentMinWidth, 10)
	return vp
}

// renderAboutBody lays the About copy out for width columns.
func (m Model) renderAboutBody(width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	for i, block := range aboutCopy {
		if i > 0 {
			b.WriteString("\n")
		}
		if block.heading != "" {
			b.WriteString(styles.AccentText.Bold(true).Render(block.heading))
			b.WriteString("\n\n")
		}
		for _, p := range block.paras {
			b.WriteString(styles.Text.Render(wrap(p, width)))
			b.WriteString("\n\n")
		}
		for _, item := range block.bullets {
			lines := strings.Split(wrap(item, max(width-4, 1)), "\n")
			for j, line := range lines {
				prefix := "    "
				if j == 0 {
					prefix = "  • "
				}
				b.WriteString(styles.MutedText.Render(prefix + line))
				b.WriteString("\n")
			}
		}
		if block.after != "" {
			b.WriteString("\n")
			b.WriteString(styles.Text.Render(wrap(block.after, width)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderAbout renders the About view.
func (m Model) renderAbout() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	title := styles.Text.Bold(true).Render("About SMS Shield")
	subtitle := styles.MutedText.Render(wrap("Protecting you from unwanted and potentially harmful messages", width))

	return strings.Join([]string{title, subtitle, "", m.about.View()}, "\n")
}
