package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Text colors
	TextNormal lipgloss.Color

	// Outcome colors
	Removed     lipgloss.Color
	NotFound    lipgloss.Color
	WouldRemove lipgloss.Color
	Failed      lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TextNormal: lipgloss.Color("#DFE6E9"), // Light gray

	Removed:     lipgloss.Color("#00B894"), // Green
	NotFound:    lipgloss.Color("#636E72"), // Gray
	WouldRemove: lipgloss.Color("#FDCB6E"), // Yellow
	Failed:      lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Target list
	TargetItem lipgloss.Style
	TargetName lipgloss.Style
	TargetPath lipgloss.Style

	// Outcome badges
	OutcomeRemoved     lipgloss.Style
	OutcomeNotFound    lipgloss.Style
	OutcomeWouldRemove lipgloss.Style
	OutcomeFailed      lipgloss.Style

	// Status text
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Loading lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		TargetItem: lipgloss.NewStyle().
			PaddingLeft(2),

		TargetName: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		TargetPath: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		OutcomeRemoved: lipgloss.NewStyle().
			Foreground(Colors.Removed),

		OutcomeNotFound: lipgloss.NewStyle().
			Foreground(Colors.NotFound),

		OutcomeWouldRemove: lipgloss.NewStyle().
			Foreground(Colors.WouldRemove),

		OutcomeFailed: lipgloss.NewStyle().
			Foreground(Colors.Failed),

		Label: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Value: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Loading: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
