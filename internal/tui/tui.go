package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTTY returns true if both stdin and stdout are attached to a terminal
func IsTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// IsOutputTTY returns true if stdout is attached to a terminal
func IsOutputTTY() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled selects the lipgloss colour profile for the process.
// When enabled, the profile is taken from the environment (COLORTERM, TERM),
// falling back to basic ANSI colours.
func SetColorEnabled(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.EnvColorProfile()
	if profile == termenv.Ascii {
		profile = termenv.ANSI
	}
	lipgloss.SetColorProfile(profile)
}
