package problemgen

import (
	"fmt"
	"math"

	"github.com/abhisek/thermoviz/internal/practice"
)

// maxRelativeTolerance bounds the tolerance to a share of |answer| so a
// generated problem cannot accept almost any number.
const maxRelativeTolerance = 0.05

// ToleranceValidator checks that the answer is finite and the tolerance
// is positive and tight relative to the answer.
type ToleranceValidator struct{}

func (v *ToleranceValidator) Name() string { return "tolerance" }

func (v *ToleranceValidator) Validate(p *practice.Problem, _ GenerateInput) *ValidationError {
	if math.IsNaN(p.Answer) || math.IsInf(p.Answer, 0) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is not a finite number",
			Retryable: true,
		}
	}
	if !(p.Tolerance > 0) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("tolerance %g must be positive", p.Tolerance),
			Retryable: true,
		}
	}
	if p.Answer != 0 && p.Tolerance > math.Abs(p.Answer)*maxRelativeTolerance {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("tolerance %g is too loose for answer %g", p.Tolerance, p.Answer),
			Retryable: true,
		}
	}
	return nil
}
