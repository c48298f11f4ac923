// Package fundamentals shows the embedded lessons one section at a time.
package fundamentals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/content"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/thermo"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// Worked example for the specific-heat table: heat 100 g by 10 °C.
const (
	exampleMass   = 100.0
	exampleDeltaT = 10.0
)

// Screen pages through the fundamentals sections.
type Screen struct {
	doc       *content.Fundamentals
	err       error
	section   int
	offset    int
	system    thermo.SystemKind
	substance int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the fundamentals screen.
func New() *Screen {
	doc, err := content.Load()
	return &Screen{doc: doc, err: err, system: thermo.SystemClosed}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Fundamentals" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Section"},
		{Key: "↑↓", Description: "Scroll"},
	}
	switch s.current().ID {
	case "systems":
		hints = append(hints, layout.KeyHint{Key: "o/c/i", Description: "System"})
	case "specific-heat":
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Substance"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *Screen) current() content.Section {
	if s.doc == nil || len(s.doc.Sections) == 0 {
		return content.Section{}
	}
	return s.doc.Sections[s.section]
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.doc == nil {
		return s, nil
	}
	n := len(s.doc.Sections)

	switch key := kmsg.String(); key {
	case "right", "l", "tab":
		if n > 0 {
			s.section = (s.section + 1) % n
			s.offset = 0
		}
	case "left", "h", "shift+tab":
		if n > 0 {
			s.section = (s.section + n - 1) % n
			s.offset = 0
		}
	case "down", "j":
		s.offset++
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "o":
		s.system = thermo.SystemOpen
	case "c":
		s.system = thermo.SystemClosed
	case "i":
		s.system = thermo.SystemIsolated
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if i := int(key[0] - '1'); i < len(s.doc.SpecificHeats) {
			s.substance = i
		}
	}
	return s, nil
}

// body is the section text plus its interactive extra.
func (s *Screen) body() string {
	sec := s.current()
	text := sec.Text()

	switch sec.ID {
	case "systems":
		var kinds []string
		for _, k := range thermo.SystemKinds() {
			kinds = append(kinds, components.Toggle(string(k), k == s.system))
		}
		text += "\n\n" + strings.Join(kinds, "   ") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(thermo.SystemInfo(s.system))

	case "specific-heat":
		var rows []string
		for i, h := range s.doc.SpecificHeats {
			line := fmt.Sprintf("%d. %-10s %5.2f %s", i+1, h.Substance, h.Value, content.SpecificHeatUnit)
			if i == s.substance {
				line = theme.Selected.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			rows = append(rows, line)
		}
		if len(s.doc.SpecificHeats) > 0 {
			h := s.doc.SpecificHeats[s.substance]
			q := thermo.SensibleHeat(exampleMass, h.Value, exampleDeltaT)
			rows = append(rows, "", lipgloss.NewStyle().Foreground(theme.Primary).Render(
				fmt.Sprintf("Heating %g g of %s by %g °C takes Q = %g × %.2f × %g = %.0f J",
					exampleMass, strings.ToLower(h.Substance), exampleDeltaT,
					exampleMass, h.Value, exampleDeltaT, q)))
		}
		text += "\n\n" + strings.Join(rows, "\n")
	}
	return text
}

func (s *Screen) View(width, height int) string {
	if s.err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %v", s.err))
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.doc.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(s.doc.Tagline))
	b.WriteString("\n\n")

	// Section tabs.
	var tabs []string
	for i := range s.doc.Sections {
		label := fmt.Sprintf(" %d ", i+1)
		if i == s.section {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Highlight).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, " ")))
	b.WriteString("\n\n")

	sec := s.current()
	heading := theme.Heading.Render(sec.Title)

	wrapped := lipgloss.NewStyle().Width(cw - 4).Foreground(theme.Text).Render(s.body())
	lines := strings.Split(wrapped, "\n")

	// Rows left for the card: title block (5) + card border (2) + heading (2).
	visible := height - 9
	if visible < 3 {
		visible = 3
	}
	maxOffset := max(0, len(lines)-visible)
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := min(len(lines), s.offset+visible)
	window := strings.Join(lines[s.offset:end], "\n")

	card := components.Card(heading+"\n\n"+window, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}
