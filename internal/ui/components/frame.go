package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for framed screens.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double border, centred in the given area.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded border at content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}

// Button renders a fixed-width menu button.
func Button(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Highlight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Highlight).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// Toggle renders "[x] label" or "[ ] label".
func Toggle(label string, on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(theme.Success).Render("[x]") + " " + label
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("[ ]") + " " + label
}
