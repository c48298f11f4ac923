// Package enthalpy is the interactive reaction energy diagram.
package enthalpy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/diagram"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/thermo"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const (
	fieldReactant = iota
	fieldProduct
	fieldActivation
	fieldCount
)

var fieldLabels = [fieldCount]string{"Reactants", "Products", "Activation Energy"}

// Screen edits a DiagramConfig and draws its energy profile.
type Screen struct {
	inputs         [fieldCount]components.TextInput
	focus          int
	showActivation bool
	view           thermo.ViewKind
	sample         int // index into thermo.Samples(), -1 for none
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen with the exothermic preset.
func New() *Screen {
	s := &Screen{sample: -1}
	for i := range s.inputs {
		s.inputs[i] = components.NewTextInput("0", true, 10)
		s.inputs[i].Model.Blur()
	}
	s.load(thermo.DefaultDiagramConfig())
	s.inputs[s.focus].Model.Focus()
	return s
}

func (s *Screen) load(cfg thermo.DiagramConfig) {
	s.inputs[fieldReactant].SetValue(formatInput(cfg.ReactantEnergy))
	s.inputs[fieldProduct].SetValue(formatInput(cfg.ProductEnergy))
	s.inputs[fieldActivation].SetValue(formatInput(cfg.ActivationEnergy))
	s.showActivation = cfg.ShowActivation
	s.view = cfg.View
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Config is the diagram input as currently edited. Unparseable fields
// count as 0.
func (s *Screen) Config() thermo.DiagramConfig {
	return thermo.DiagramConfig{
		ReactantEnergy:   thermo.ParseEnergy(s.inputs[fieldReactant].Value()),
		ProductEnergy:    thermo.ParseEnergy(s.inputs[fieldProduct].Value()),
		ActivationEnergy: thermo.ParseEnergy(s.inputs[fieldActivation].Value()),
		ShowActivation:   s.showActivation,
		View:             s.view,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.inputs[s.focus].Init()
}

func (s *Screen) Title() string { return "Enthalpy Diagram" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Field"},
		{Key: "x/n", Description: "Exo/Endo"},
		{Key: "s", Description: "Sample"},
		{Key: "a", Description: "Activation"},
		{Key: "v", Description: "View"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Model.Blur()
	s.focus = (i + fieldCount) % fieldCount
	return s.inputs[s.focus].Model.Focus()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "a":
		s.showActivation = !s.showActivation
		return s, nil
	case "v":
		if s.view == thermo.ViewFreeEnergy {
			s.view = thermo.ViewEnthalpy
		} else {
			s.view = thermo.ViewFreeEnergy
		}
		return s, nil
	case "x":
		s.preset(thermo.DefaultExothermicDelta)
		return s, nil
	case "n":
		s.preset(thermo.DefaultEndothermicDelta)
		return s, nil
	case "s":
		samples := thermo.Samples()
		s.sample = (s.sample + 1) % len(samples)
		s.load(samples[s.sample].Apply(s.Config()))
		return s, nil
	}

	before := s.inputs[s.focus].Value()
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if s.inputs[s.focus].Value() != before {
		s.sample = -1
	}
	return s, cmd
}

// preset loads R = 0 and P = delta, keeping Ea and the toggles.
func (s *Screen) preset(delta float64) {
	cfg := s.Config()
	cfg.ReactantEnergy = thermo.DefaultReactantEnergy
	cfg.ProductEnergy = thermo.DefaultReactantEnergy + delta
	s.load(cfg)
	s.sample = -1
}

func (s *Screen) View(width, height int) string {
	cfg := s.Config()
	path := thermo.ComputeReactionPath(cfg)

	var b strings.Builder

	// Input row.
	var fields []string
	for i, label := range fieldLabels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.focus {
			style = theme.Selected
		}
		fields = append(fields, style.Render(label+":")+" "+s.inputs[i].View())
	}
	b.WriteString("  " + strings.Join(fields, "  "))
	b.WriteString("\n")

	toggles := "  " + components.Toggle("Show activation energy", s.showActivation) +
		"   " + components.Toggle("Free energy view", s.view == thermo.ViewFreeEnergy)
	if s.sample >= 0 {
		smp := thermo.Samples()[s.sample]
		toggles += "   " + lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("%s: %s", smp.Name, smp.Equation))
	}
	b.WriteString(toggles)
	b.WriteString("\n")

	// Summary line.
	kind, color := "Endothermic", thermo.ColorEndothermicDelta
	if path.IsExothermic {
		kind, color = "Exothermic", thermo.ColorExothermicDelta
	}
	summary := fmt.Sprintf("ΔH = %s kJ/mol (%s)", formatSigned(path.DeltaH), kind)
	if path.Activation != nil {
		summary += fmt.Sprintf("   Eₐ = %.1f kJ/mol   Transition state = %.1f kJ/mol",
			math.Abs(cfg.ActivationEnergy), path.TransitionState)
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Hex(color)).Bold(true).Render(summary))
	b.WriteString("\n")

	chartHeight := height - 4
	if chart := diagram.Reaction(path, width-2, chartHeight); chart != nil {
		b.WriteString(chart.Render())
	} else {
		b.WriteString(theme.Hint.Render("  Enlarge the terminal to see the diagram."))
	}
	return b.String()
}

func formatSigned(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
