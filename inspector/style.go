package inspector

import "github.com/charmbracelet/lipgloss"

// Style controls the inspector's rendering.
type Style struct {
	Label lipgloss.Style
	Text  lipgloss.Style
	Empty lipgloss.Style

	// Hex dump byte classes.
	ASCII lipgloss.Style
	Lead  lipgloss.Style
	Cont  lipgloss.Style

	Stats lipgloss.Style
}

// DefaultStyle returns a 256-color style set.
func DefaultStyle() Style {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Label: label,
		Text:  lipgloss.NewStyle(),
		Empty: label.Italic(true),
		ASCII: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Lead:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Cont:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Stats: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
