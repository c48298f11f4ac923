package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // Flask at rest
	MascotAlert                      // No tutor key yet
)

const mascotIdle = `  ┌─┐
  │ │  °
 ╱   ╲ o
╱ ≈≈≈ ╲
╰─────╯`

const mascotAlert = `  ┌─┐
  │ │   !
 ╱   ╲
╱ ≈≈≈ ╲
╰─────╯`

// RenderMascot returns the flask art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art, fg := mascotIdle, theme.Secondary
	if variant == MascotAlert {
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
