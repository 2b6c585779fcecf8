package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Cold    lipgloss.Color
	Warm    lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Cold:    lipgloss.Color("#74B9FF"), // Light blue
	Warm:    lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	TableCold  lipgloss.Style
	TableWarm  lipgloss.Style
	TableFrame lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),
		Result: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			MarginTop(1),
		TableCold: lipgloss.NewStyle().
			Foreground(Colors.Cold),
		TableWarm: lipgloss.NewStyle().
			Foreground(Colors.Warm),
		TableFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}
