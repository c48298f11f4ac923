package problemgen

import (
	"math"
	"strings"
	"testing"

	"github.com/abhisek/thermoviz/internal/practice"
)

func validProblem() *practice.Problem {
	return &practice.Problem{
		Topic:       practice.TopicThermalEnergy,
		Difficulty:  practice.DifficultyMedium,
		Question:    "Heat 1.5 kg of water from 10°C to 50°C with c = 4.18 J/(g·°C). Q in kJ?",
		Answer:      250.8,
		Unit:        "kJ",
		Tolerance:   0.5,
		Formula:     "Q = m × c × ΔT",
		Explanation: "Q = 1500 × 4.18 × 40 = 250800 J = 250.8 kJ",
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "test-validator", Message: "something went wrong"}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "tolerance", "heat-check"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *practice.Problem)
		ok     bool
	}{
		{"valid", func(p *practice.Problem) {}, true},
		{"empty question", func(p *practice.Problem) { p.Question = "" }, false},
		{"long question", func(p *practice.Problem) { p.Question = strings.Repeat("q", 601) }, false},
		{"empty explanation", func(p *practice.Problem) { p.Explanation = "" }, false},
		{"long explanation", func(p *practice.Problem) { p.Explanation = strings.Repeat("e", 1501) }, false},
		{"empty formula", func(p *practice.Problem) { p.Formula = "" }, false},
		{"empty unit", func(p *practice.Problem) { p.Unit = "" }, false},
		{"bad difficulty", func(p *practice.Problem) { p.Difficulty = "extreme" }, false},
	}
	v := &StructuralValidator{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProblem()
			tc.mutate(p)
			err := v.Validate(p, GenerateInput{})
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestToleranceValidator(t *testing.T) {
	tests := []struct {
		answer, tolerance float64
		ok                bool
	}{
		{250.8, 0.5, true},
		{0, 0.1, true},
		{-890, 1, true},
		{250.8, 0, false},
		{250.8, -1, false},
		{100, 6, false},
		{math.NaN(), 0.1, false},
		{math.Inf(1), 0.1, false},
	}
	v := &ToleranceValidator{}
	for _, tc := range tests {
		p := validProblem()
		p.Answer, p.Tolerance = tc.answer, tc.tolerance
		err := v.Validate(p, GenerateInput{})
		if (err == nil) != tc.ok {
			t.Errorf("answer %g tolerance %g: got %v, want ok=%t", tc.answer, tc.tolerance, err, tc.ok)
		}
	}
}

func TestHeatCheckValidator(t *testing.T) {
	v := &HeatCheckValidator{}

	p := validProblem()
	if err := v.Validate(p, GenerateInput{}); err != nil {
		t.Fatalf("correct kJ answer rejected: %v", err)
	}

	p.Answer = 25.08
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected mismatch to be rejected")
	}

	// Phase changes are not recomputed.
	p.Question = "Melt 10 g of ice at 0°C, then heat from 0°C to 20°C with c = 4.18 J/(g·°C)."
	if err := v.Validate(p, GenerateInput{}); err != nil {
		t.Fatalf("phase-change problem should pass through: %v", err)
	}

	// Unknown units pass through.
	p = validProblem()
	p.Unit, p.Answer = "cal", 1
	if err := v.Validate(p, GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSensibleHeatFromText(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"Raise 500g of water from 25°C to 85°C, c = 4.18 J/(g·°C).", 125400, true},
		{"A 2 kg block of aluminum cools from 80 °C to 30 °C; c = 0.90 J/g°C.", -90000, true},
		{"Heat 50 grams of iron from 20°C to 120°C (c = 0.45 J/(g·°C)).", 2250, true},
		{"What is the enthalpy of combustion of methane?", 0, false},
		{"Heat 50 g of gold from 20°C to 40°C.", 0, false},
	}
	for _, tc := range tests {
		got, ok := sensibleHeatFromText(tc.text)
		if ok != tc.ok {
			t.Errorf("%q: ok = %t, want %t", tc.text, ok, tc.ok)
			continue
		}
		if ok && math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("%q: got %g, want %g", tc.text, got, tc.want)
		}
	}
}
