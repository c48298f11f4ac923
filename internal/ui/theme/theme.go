package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colour palette. Warm for heat added, cool for heat removed.
var (
	Primary   = lipgloss.Color("#FF6D00") // Heating orange
	Secondary = lipgloss.Color("#1E88E5") // Cooling blue
	Accent    = lipgloss.Color("#E91E63") // Marker pink
	Highlight = lipgloss.Color("#FACC15") // Selection yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Hex turns a "#rrggbb" token from the thermo package into a colour,
// falling back to Text for an empty token.
func Hex(token string) color.Color {
	if token == "" {
		return Text
	}
	return lipgloss.Color(token)
}
