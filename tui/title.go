package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleLead   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	titleAccent = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#ff4d5a"))
)

// AdminTitle renders a two-tone heading: text1 in white, text2 underlined in
// the accent red.
func AdminTitle(text1, text2 string) string {
	return titleLead.Render(text1) + " " + titleAccent.Render(text2)
}
