package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const titleText = "THERMO"

// renderTitle returns the block-letter title or a compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := components.BlockText(titleText)
	if compact || components.BlockTextWidth(titleText) > cw {
		text = "T · H · E · R · M · O · V · I · Z"
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, lipgloss.NewStyle().
				Width(buttonWidth).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Render(label))
			continue
		}
		buttons = append(buttons, components.Button(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for terminals where
// bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderKeyBanner warns that the tutor has no API key.
func renderKeyBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Add a Gemini API key in TUTOR SETTINGS to chat with Chevin")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available (thermoviz update)", latestVersion))
}

// renderMascotBox renders the mascot centred at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
