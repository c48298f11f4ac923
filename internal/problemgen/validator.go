package problemgen

import (
	"fmt"

	"github.com/abhisek/thermoviz/internal/practice"
)

// Validator checks a generated problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the problem passes.
	Validate(p *practice.Problem, input GenerateInput) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
