package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const (
	bannerText    = "THERMOVIZ"
	bannerCompact = "T H E R M O V I Z"
)

// RenderBanner returns the block-letter banner, or a spaced-out fallback
// when the terminal is too narrow for it.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < components.BlockTextWidth(bannerText)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(components.BlockText(bannerText))
}
