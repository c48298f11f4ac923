// Package hess is the Hess's Law walkthrough screen.
package hess

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/diagram"
	hesslaw "github.com/abhisek/thermoviz/internal/hess"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/thermo"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// Screen walks through one example at a time. Steps are revealed one by
// one; the cursor picks which step reverse and scale act on.
type Screen struct {
	examples     []hesslaw.Example
	current      int
	walk         *hesslaw.Walkthrough
	cursor       int
	showSolution bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New opens the first catalogued example.
func New() *Screen {
	examples := hesslaw.Examples()
	return &Screen{
		examples: examples,
		walk:     hesslaw.NewWalkthrough(examples[0]),
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Hess's Law" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Example"},
		{Key: "n/b", Description: "Next/Back"},
		{Key: "↑/↓", Description: "Step"},
		{Key: "r", Description: "Reverse"},
		{Key: "m", Description: "Scale"},
		{Key: "s", Description: "Solution"},
		{Key: "0", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

// Walkthrough exposes the state being edited.
func (s *Screen) Walkthrough() *hesslaw.Walkthrough { return s.walk }

func (s *Screen) selectExample(i int) {
	n := len(s.examples)
	s.current = (i + n) % n
	s.walk.Select(s.examples[s.current])
	s.cursor = 0
	s.showSolution = false
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	steps := len(s.walk.Example().Steps)

	switch kmsg.String() {
	case "tab", "right":
		s.selectExample(s.current + 1)
	case "shift+tab", "left":
		s.selectExample(s.current - 1)
	case "n", "space", " ", "enter":
		s.walk.Next()
	case "b", "backspace":
		s.walk.Back()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < steps-1 {
			s.cursor++
		}
	case "r":
		s.walk.ToggleReverse(s.cursor)
	case "m":
		s.walk.CycleScale(s.cursor)
	case "s":
		s.showSolution = !s.showSolution
	case "0":
		s.walk.Reset()
		s.cursor = 0
		s.showSolution = false
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	ex := s.walk.Example()
	steps := s.walk.Steps()
	active := s.walk.ActiveStep()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		theme.Heading.Render(ex.Title),
		theme.Hint.Render(fmt.Sprintf("(%d/%d)", s.current+1, len(s.examples)))))
	b.WriteString(fmt.Sprintf("  Target: %s   ΔH = %s kJ\n\n",
		theme.Body.Render(ex.TargetReaction), formatKJ(ex.TargetDeltaH)))

	for i, st := range steps {
		marker := "  "
		style := theme.Unselected
		if i == s.cursor {
			marker = theme.Selected.Render("▸ ")
			style = theme.Selected
		}
		line := fmt.Sprintf("%d. %s   ΔH = %s kJ", i+1, st.DisplayEquation(), formatKJ(st.Effective()))
		if i >= active {
			style = theme.Hint
		}
		b.WriteString("  " + marker + style.Render(line))
		if i < active && st.Description != "" {
			b.WriteString("  " + theme.Hint.Render(st.Description))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	combined := s.walk.Combined()
	status := theme.Incorrect.Render("does not match the target yet")
	if s.walk.Matches() {
		status = theme.Correct.Render("✓ matches the target")
	}
	b.WriteString(fmt.Sprintf("  Combined ΔH = %s kJ  %s\n", formatKJ(combined), status))

	if s.showSolution {
		b.WriteString("\n" + theme.Heading.Render("  Solution") + "\n")
		for _, line := range ex.Solution.Steps {
			b.WriteString("  " + theme.Body.Render(line) + "\n")
		}
		b.WriteString("  " + theme.Body.Render(ex.Solution.FinalEquation) + "   " +
			lipgloss.NewStyle().Foreground(theme.Primary).Render(ex.Solution.FinalDeltaH) + "\n")
	}

	if active == 0 {
		b.WriteString("\n" + theme.Hint.Render("  Press n to add the first step to the diagram."))
		return b.String()
	}

	used := lipgloss.Height(b.String())
	path := thermo.ComputeHessPath(steps[:active], 0)
	if chart := diagram.Hess(path, width-2, height-used); chart != nil {
		b.WriteString(chart.Render())
	} else {
		b.WriteString(theme.Hint.Render("  Enlarge the terminal to see the diagram."))
	}
	return b.String()
}

func formatKJ(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
