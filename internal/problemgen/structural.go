package problemgen

import (
	"github.com/abhisek/thermoviz/internal/practice"
)

const (
	maxQuestionLen    = 600
	maxExplanationLen = 1500
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *practice.Problem, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	switch {
	case p.Question == "":
		return fail("question_text is empty")
	case len(p.Question) > maxQuestionLen:
		return fail("question_text exceeds 600 characters")
	case p.Explanation == "":
		return fail("explanation is empty")
	case len(p.Explanation) > maxExplanationLen:
		return fail("explanation exceeds 1500 characters")
	case p.Formula == "":
		return fail("formula is empty")
	case p.Unit == "":
		return fail("unit is empty")
	}

	switch p.Difficulty {
	case practice.DifficultyEasy, practice.DifficultyMedium, practice.DifficultyHard:
	default:
		return fail("difficulty must be \"easy\", \"medium\" or \"hard\"")
	}
	return nil
}
