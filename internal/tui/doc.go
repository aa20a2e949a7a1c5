// Package tui provides the terminal side of git-pro.
//
// It handles:
//   - Console and file logging (Splog)
//   - Yes/no confirmation prompts (using survey)
//   - Colour profile selection for styled output (using lipgloss and termenv)
package tui
