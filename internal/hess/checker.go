package hess

import (
	"math"
	"strings"
)

// DefaultTolerance is the kJ window used when comparing against a target.
const DefaultTolerance = 0.1

// Arrow separates reactants from products in equation text.
const Arrow = "→"

// CombinedEnthalpy sums the effective contribution of every step, left to
// right, without rounding.
func CombinedEnthalpy(steps []ReactionStep) float64 {
	var total float64
	for _, s := range steps {
		total += s.Effective()
	}
	return total
}

// IsWithinTarget reports whether combined lies strictly inside tolerance of
// target. A difference exactly equal to tolerance does not match.
func IsWithinTarget(combined, target, tolerance float64) bool {
	return math.Abs(combined-target) < tolerance
}

// ReverseEquationText swaps the two sides of an equation around its arrow.
// Text with no arrow or more than one arrow is returned unchanged.
func ReverseEquationText(equation string) string {
	if strings.Count(equation, Arrow) != 1 {
		return equation
	}
	left, right, _ := strings.Cut(equation, Arrow)
	return strings.TrimSpace(right) + " " + Arrow + " " + strings.TrimSpace(left)
}
