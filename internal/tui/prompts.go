package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInteractiveDisabled is returned when a prompt is needed but cannot be shown
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (not a terminal or GITPRO_NON_INTERACTIVE is set)")

// ErrPromptCanceled is returned when the user interrupts a prompt
var ErrPromptCanceled = errors.New("prompt canceled")

// checkInteractiveAllowed returns an error if prompting is impossible or disabled
func checkInteractiveAllowed() error {
	if os.Getenv("GITPRO_NON_INTERACTIVE") != "" || !IsTTY() {
		return ErrInteractiveDisabled
	}
	return nil
}

// Confirmer asks the user to approve an action on a list of items
type Confirmer interface {
	Confirm(prompt string, items []string) (bool, error)
}

// SurveyConfirmer prompts on the terminal. The answer defaults to no.
type SurveyConfirmer struct {
	Out io.Writer
}

// NewSurveyConfirmer creates a confirmer that lists items on stdout before asking
func NewSurveyConfirmer() *SurveyConfirmer {
	return &SurveyConfirmer{Out: os.Stdout}
}

// Confirm prints the items and asks a yes/no question
func (c *SurveyConfirmer) Confirm(prompt string, items []string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	for _, item := range items {
		_, _ = fmt.Fprintf(out, "  %s\n", item)
	}

	confirmed := false
	q := &survey.Confirm{
		Message: prompt,
		Default: false,
	}
	if err := survey.AskOne(q, &confirmed); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, ErrPromptCanceled
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return confirmed, nil
}

// StaticConfirmer answers every prompt the same way and records what it was asked
type StaticConfirmer struct {
	Answer bool
	Err    error

	Prompts [][]string
}

// Confirm returns the fixed answer
func (c *StaticConfirmer) Confirm(prompt string, items []string) (bool, error) {
	c.Prompts = append(c.Prompts, append([]string{prompt}, items...))
	return c.Answer, c.Err
}
