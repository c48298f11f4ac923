package problemgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated problem; the first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many prior questions go into the prompt.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ToleranceValidator{},
			&HeatCheckValidator{},
		},
		MaxTokens:         768,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
	}
}
