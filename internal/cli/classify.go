package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/smsshield/internal/app"
	"github.com/five82/smsshield/internal/state"
	"github.com/five82/smsshield/internal/ui"
)

// Exit codes for the classify command.
const (
	exitLegitimate = 0
	exitFailed     = 1
	exitSpam       = 2
)

func newClassifyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify one message",
		Long: `Classify one message and print the verdict.

The message is taken from the arguments, joined by spaces, or read from
stdin when no arguments are given.

Exit status is 0 for a legitimate message, 2 for spam, and 1 when the
message is empty or the request fails.`,
		Example: `  smsshield classify "Congratulations! You won a free cruise"
  pbpaste | smsshield classify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := messageText(cmd, args)
			if err != nil {
				return err
			}

			appOpts, closeLog, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			outcome, err := app.Classify(cmd.Context(), appOpts, text)
			if errors.Is(err, state.ErrEmptyInput) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Please enter an SMS message")
				return &ExitError{Code: exitFailed}
			}
			if err != nil {
				return err
			}

			printOutcome(cmd.OutOrStdout(), outcome)
			return exitFor(outcome)
		},
	}
}

// messageText joins args, or reads stdin when there are none. A single
// trailing line break from stdin is dropped; the rest is sent as is.
func messageText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func printOutcome(w io.Writer, outcome state.Outcome) {
	icon, title, body := ui.ResultCopy(outcome)

	color := lipgloss.Color("8")
	if outcome.Kind == state.OutcomeClassified {
		color = lipgloss.Color("2")
		if outcome.IsSpam {
			color = lipgloss.Color("1")
		}
	}
	heading := lipgloss.NewStyle().Foreground(color).Bold(true)

	fmt.Fprintln(w, heading.Render(icon+" "+title))
	fmt.Fprintln(w, body)
}

func exitFor(outcome state.Outcome) error {
	switch {
	case outcome.Kind == state.OutcomeClassified && outcome.IsSpam:
		return &ExitError{Code: exitSpam}
	case outcome.Kind == state.OutcomeClassified:
		return nil
	default:
		return &ExitError{Code: exitFailed}
	}
}
