package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	// InsertCursor is used in Insert mode, where the cursor sits between
	// characters.
	InsertCursor lipgloss.Style

	Match        lipgloss.Style
	CurrentMatch lipgloss.Style

	Status lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		InsertCursor:  lipgloss.NewStyle().Underline(true),
		Match:         lipgloss.NewStyle().Background(lipgloss.Color("58")),
		CurrentMatch:  lipgloss.NewStyle().Background(lipgloss.Color("178")).Foreground(lipgloss.Color("0")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
