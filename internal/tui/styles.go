package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorError     = lipgloss.Color("196") // Red
)

var (
	// FieldStyle renders column names in reports.
	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// BannerStyle renders the per-file "==> name <==" header.
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// OverflowStyle renders observed lengths that exceed the column.
	OverflowStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)
