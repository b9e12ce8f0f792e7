package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Marker      lipgloss.Style
	Checkbox    lipgloss.Style
	Key         lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	// Inactive is applied to key and value of unchecked rows.
	Inactive lipgloss.Style
	Cursor   lipgloss.Style
	Delete   lipgloss.Style

	SuggestionItem     lipgloss.Style
	SuggestionSelected lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Marker:             lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Checkbox:           lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Key:                lipgloss.NewStyle().Bold(true),
		Value:              lipgloss.NewStyle(),
		Placeholder:        dim,
		Inactive:           dim.Strikethrough(true),
		Cursor:             lipgloss.NewStyle().Reverse(true),
		Delete:             lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		SuggestionItem:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		SuggestionSelected: lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
	}
}
