// Package problemgen asks an LLM for new practice problems and checks them
// before they reach the learner.
package problemgen

import "github.com/abhisek/thermoviz/internal/practice"

// GenerateInput holds all context needed to generate a problem.
type GenerateInput struct {
	// Topic the problem must exercise. TopicAll lets the model choose.
	Topic practice.Topic

	// Difficulty requested. Empty means medium.
	Difficulty practice.Difficulty

	// PriorQuestions are question texts already shown in this session,
	// oldest first. Used for deduplication in the prompt.
	PriorQuestions []string
}

// problemOutput is the raw LLM response before validation.
type problemOutput struct {
	QuestionText string  `json:"question_text"`
	Answer       float64 `json:"answer"`
	Unit         string  `json:"unit"`
	Tolerance    float64 `json:"tolerance"`
	Formula      string  `json:"formula"`
	Hint         string  `json:"hint"`
	Explanation  string  `json:"explanation"`
	Difficulty   string  `json:"difficulty"`
}
