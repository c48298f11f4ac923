package diagram

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/thermoviz/internal/hess"
	"github.com/abhisek/thermoviz/internal/thermo"
)

func TestReaction_Exothermic(t *testing.T) {
	path := thermo.ComputeReactionPath(thermo.DefaultDiagramConfig())
	ch := Reaction(path, 80, 24)
	if ch == nil {
		t.Fatal("expected chart")
	}
	out := ch.String()
	for _, want := range []string{
		"Exothermic Reaction Energy Diagram",
		"Reactants (0.0)",
		"Products (-100.0)",
		"Ea = 50 kJ/mol",
		"ΔH = -100.0 kJ/mol",
		"Enthalpy (kJ/mol)",
		"Reaction Progress",
		"▼",
		"▶",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestReaction_EndothermicWithoutActivation(t *testing.T) {
	cfg := thermo.DiagramConfig{ReactantEnergy: 0, ProductEnergy: 100, View: thermo.ViewFreeEnergy}
	ch := Reaction(thermo.ComputeReactionPath(cfg), 80, 24)
	out := ch.String()
	if strings.Contains(out, "Ea =") || strings.Contains(out, "Transition State") {
		t.Errorf("activation drawn while hidden:\n%s", out)
	}
	if !strings.Contains(out, "Free Energy (kJ/mol)") || !strings.Contains(out, "▲") {
		t.Errorf("expected free-energy axis and upward ΔH arrow:\n%s", out)
	}
}

func TestReaction_TooSmall(t *testing.T) {
	if Reaction(thermo.ComputeReactionPath(thermo.DefaultDiagramConfig()), 10, 5) != nil {
		t.Fatal("expected nil chart for tiny area")
	}
}

func TestHess_CO2(t *testing.T) {
	ex, ok := hess.Lookup("co2")
	if !ok {
		t.Fatal("co2 example missing")
	}
	path := thermo.ComputeHessPath(ex.Steps, 0)
	out := Hess(path, 80, 24).String()
	for _, want := range []string{
		"Hess's Law Energy Diagram",
		"Initial: 0.0 kJ",
		"Step 2: -393.5 kJ",
		"ΔH = -110.5 kJ",
		"ΔH = -283.0 kJ",
		"Enthalpy (kJ)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestHess_ZeroStepHasNoArrowLabel(t *testing.T) {
	steps := []hess.ReactionStep{{Equation: "A → B", DeltaH: 0}, {Equation: "B → C", DeltaH: 40}}
	out := Hess(thermo.ComputeHessPath(steps, 0), 80, 24).String()
	if strings.Contains(out, "ΔH = +0.0") {
		t.Errorf("zero step should not be annotated:\n%s", out)
	}
	if !strings.Contains(out, "ΔH = +40.0 kJ") {
		t.Errorf("missing absorbing step label:\n%s", out)
	}
}

func TestHeating_MarkerOnCurve(t *testing.T) {
	ch := Heating(50, false, 80, 24)
	out := ch.String()
	for _, want := range []string{"Heating Curve of Water", "Heat Added (kJ)", "Temperature (°C)", "Solid", "Gas"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	p := ch.Pt(thermo.MarkerX(50, false), 50)
	if ch.Get(p.X, p.Y) != '●' || ch.Color(p.X, p.Y) != thermo.ColorMarker {
		t.Errorf("marker missing at %+v:\n%s", p, out)
	}
}

func TestHeating_CoolingAndClamp(t *testing.T) {
	ch := Heating(500, true, 80, 24)
	out := ch.String()
	if !strings.Contains(out, "Cooling Curve of Water") || !strings.Contains(out, "Heat Removed (kJ)") {
		t.Errorf("cooling captions missing:\n%s", out)
	}
	p := ch.Pt(thermo.MarkerX(thermo.MaxTemp, true), thermo.MaxTemp)
	if ch.Get(p.X, p.Y) != '●' {
		t.Errorf("clamped marker missing at %+v:\n%s", p, out)
	}
}

func TestReaction_NonFiniteEnergiesStillRender(t *testing.T) {
	tests := []struct {
		name string
		cfg  thermo.DiagramConfig
	}{
		{"overflowing input", thermo.DiagramConfig{ReactantEnergy: thermo.ParseEnergy("1e400"), ProductEnergy: -100, ActivationEnergy: 50, ShowActivation: true}},
		{"transition state overflows", thermo.DiagramConfig{ReactantEnergy: 1e308, ProductEnergy: 0, ActivationEnergy: 1e308, ShowActivation: true}},
		{"nan reactant", thermo.DiagramConfig{ReactantEnergy: math.NaN(), ProductEnergy: -100, ActivationEnergy: 50, ShowActivation: true}},
		{"infinite product", thermo.DiagramConfig{ReactantEnergy: 0, ProductEnergy: math.Inf(-1), ActivationEnergy: 50}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			done := make(chan string, 1)
			go func() {
				ch := Reaction(thermo.ComputeReactionPath(tc.cfg), 80, 24)
				if ch == nil {
					done <- ""
					return
				}
				done <- ch.String()
			}()
			select {
			case out := <-done:
				if out == "" {
					t.Fatal("expected a chart")
				}
			case <-time.After(3 * time.Second):
				t.Fatal("render did not return")
			}
		})
	}
}
