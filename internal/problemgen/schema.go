package problemgen

import "github.com/abhisek/thermoviz/internal/llm"

// ProblemSchema defines the JSON schema for generated practice problems.
var ProblemSchema = &llm.Schema{
	Name:        "thermo-problem",
	Description: "A single numeric thermodynamics practice problem with answer, tolerance and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The problem statement, self-contained, giving every constant the learner needs",
			},
			"answer": map[string]any{
				"type":        "number",
				"description": "The correct numeric answer expressed in unit",
			},
			"unit": map[string]any{
				"type":        "string",
				"description": "Unit of the answer, e.g. J, kJ, kJ/mol",
			},
			"tolerance": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Largest accepted absolute difference from answer",
			},
			"formula": map[string]any{
				"type":        "string",
				"description": "The key formula, e.g. Q = m × c × ΔT",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short nudge that does not give the answer away",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
		},
		"required":             []any{"question_text", "answer", "unit", "tolerance", "formula", "hint", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}
