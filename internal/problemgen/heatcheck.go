package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/thermoviz/internal/practice"
	"github.com/abhisek/thermoviz/internal/thermo"
)

// HeatCheckValidator recomputes Q = m·c·ΔT from the question text when it
// states a mass, a specific heat and a temperature change, and rejects
// answers that disagree. Anything else passes through silently.
type HeatCheckValidator struct{}

func (v *HeatCheckValidator) Name() string { return "heat-check" }

var (
	massRe         = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|grams?|g)\b`)
	tempRangeRe    = regexp.MustCompile(`(?i)from\s+(-?\d+(?:\.\d+)?)\s*°?\s*C\s+to\s+(-?\d+(?:\.\d+)?)\s*°?\s*C`)
	specificHeatRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*J\s*/\s*\(?\s*g`)
	phaseChangeRe  = regexp.MustCompile(`(?i)(melt|boil|vapori[sz]|condens|freez|steam|\bice\b|latent)`)
)

func (v *HeatCheckValidator) Validate(p *practice.Problem, _ GenerateInput) *ValidationError {
	joules, ok := sensibleHeatFromText(p.Question)
	if !ok {
		return nil
	}

	var expected float64
	switch strings.TrimSpace(p.Unit) {
	case "J":
		expected = joules
	case "kJ":
		expected = joules / 1000
	default:
		return nil
	}

	slack := math.Max(p.Tolerance, math.Abs(expected)*0.01)
	if math.Abs(expected-p.Answer) > slack {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %g %s but LLM claimed %g", expected, p.Unit, p.Answer),
			Retryable: true,
		}
	}
	return nil
}

// sensibleHeatFromText extracts m, c and ΔT from a single-phase heating
// problem and returns Q in joules.
func sensibleHeatFromText(text string) (float64, bool) {
	if phaseChangeRe.MatchString(text) {
		return 0, false
	}

	m := massRe.FindStringSubmatch(text)
	t := tempRangeRe.FindStringSubmatch(text)
	c := specificHeatRe.FindStringSubmatch(text)
	if m == nil || t == nil || c == nil {
		return 0, false
	}

	mass, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(m[2], "kg") {
		mass *= 1000
	}
	from, err1 := strconv.ParseFloat(t[1], 64)
	to, err2 := strconv.ParseFloat(t[2], 64)
	heat, err3 := strconv.ParseFloat(c[1], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	return thermo.SensibleHeat(mass, heat, to-from), true
}
