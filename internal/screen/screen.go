// Package screen defines what the router needs from a ThermoViz view:
// the enthalpy and Hess diagrams, the heating curve, practice and the tutor.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/thermoviz/internal/ui/layout"
)

// Screen is one page of the app. The app draws the header and footer;
// View fills the space between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the header and the breadcrumb.
	Title() string
}

// KeyHintProvider replaces the footer's default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens that keep ticks running, such as the
// heating curve's autoplay. The router calls Leave when the screen is
// popped or replaced so stale ticks are dropped.
type Leaver interface {
	Leave()
}
