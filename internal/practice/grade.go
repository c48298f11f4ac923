package practice

import (
	"math"

	"github.com/abhisek/thermoviz/internal/thermo"
)

// Result of grading an answer.
type Result int

const (
	Incorrect Result = iota
	Correct
)

func (r Result) String() string {
	if r == Correct {
		return "correct"
	}
	return "incorrect"
}

// MarshalText encodes the result as its name.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Grade parses the leading number in text and compares it with correct.
// The tolerance boundary is inclusive. Text without a number is Incorrect.
func Grade(text string, correct, tolerance float64) Result {
	v, ok := thermo.ParseNumber(text)
	if !ok || math.IsNaN(v) {
		return Incorrect
	}
	if math.Abs(v-correct) <= tolerance {
		return Correct
	}
	return Incorrect
}
