package tldr

import "github.com/charmbracelet/lipgloss"

// CLI-surface styles. Page markup has its own resolver in pkg/style; these
// only dress up the command output around it. lipgloss degrades to plain
// text on dumb terminals and pipes on its own.
var (
	// ErrorStyle renders fatal error lines on stderr
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	pageItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
