// Package style holds the lipgloss styles used in command output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	currentBranchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	hashStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	authorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ColorBranchName colors the checked-out branch; other names are left plain
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return currentBranchStyle.Render(branchName)
	}
	return branchName
}

// ColorHash colors an abbreviated commit hash
func ColorHash(hash string) string {
	return hashStyle.Render(hash)
}

// ColorAuthor colors a commit author
func ColorAuthor(author string) string {
	return authorStyle.Render(author)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}
