package hess

import (
	"fmt"
	"strconv"
)

// ReactionStep is one equation in a Hess's Law combination.
type ReactionStep struct {
	// Equation is the reaction as written, e.g. "C(s) + O₂(g) → CO₂(g)".
	Equation string `json:"equation"`

	// DeltaH is the enthalpy change in kJ for the reaction as written.
	DeltaH float64 `json:"deltaH"`

	// Reversed flips the sign of DeltaH and swaps the equation sides.
	Reversed bool `json:"reversed"`

	// Scale multiplies the whole equation. Zero or negative means 1.
	Scale float64 `json:"scale,omitempty"`

	// Description is a short sentence shown next to the step.
	Description string `json:"description,omitempty"`
}

// Multiplier returns the effective coefficient multiplier for the step.
func (s ReactionStep) Multiplier() float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

// Effective returns the signed contribution of the step to the total.
func (s ReactionStep) Effective() float64 {
	dh := s.DeltaH
	if m := s.Multiplier(); m != 1 {
		dh *= m
	}
	if s.Reversed {
		return -dh
	}
	return dh
}

// DisplayEquation returns the equation as the learner currently has it:
// reversed when flagged, and prefixed with its multiplier when scaled.
func (s ReactionStep) DisplayEquation() string {
	eq := s.Equation
	if s.Reversed {
		eq = ReverseEquationText(eq)
	}
	if m := s.Multiplier(); m != 1 {
		return fmt.Sprintf("%s × [%s]", FormatCoefficient(m), eq)
	}
	return eq
}

// FormatCoefficient renders a multiplier the way chemists write it.
func FormatCoefficient(m float64) string {
	switch m {
	case 0.5:
		return "½"
	case 0.25:
		return "¼"
	}
	return strconv.FormatFloat(m, 'g', -1, 64)
}

// scaleCycle is the order the interactive views step through multipliers.
var scaleCycle = []float64{1, 2, 3, 4, 0.5}

// NextScale returns the multiplier that follows m in the interactive cycle.
func NextScale(m float64) float64 {
	if m <= 0 {
		m = 1
	}
	for i, v := range scaleCycle {
		if v == m {
			return scaleCycle[(i+1)%len(scaleCycle)]
		}
	}
	return 1
}
