package problemgen

import (
	"context"

	"github.com/abhisek/thermoviz/internal/practice"
)

// Generator produces practice problems.
type Generator interface {
	// Generate produces a single problem for the given input context.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*practice.Problem, error)
}
