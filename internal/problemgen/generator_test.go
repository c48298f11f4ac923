package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/practice"
)

func heatProblemJSON(answer, unit, tolerance string) json.RawMessage {
	return json.RawMessage(`{
		"question_text": "How much heat is needed to warm 200 g of water from 20°C to 30°C? The specific heat of water is 4.18 J/(g·°C).",
		"answer": ` + answer + `,
		"unit": "` + unit + `",
		"tolerance": ` + tolerance + `,
		"formula": "Q = m × c × ΔT",
		"hint": "Find ΔT first.",
		"explanation": "ΔT = 10°C, so Q = 200 × 4.18 × 10 = 8360 J.",
		"difficulty": "easy"
	}`)
}

func TestGenerate_HeatProblem(t *testing.T) {
	mock := llm.NewMockProvider().
		Script(llm.PurposeTutor, llm.MockResponse{Text: "not for the generator"}).
		Script(llm.PurposeProblemGen, llm.MockResponse{Content: heatProblemJSON("8360", "J", "5")})
	gen := New(mock, DefaultConfig())

	p, err := gen.Generate(context.Background(), GenerateInput{Topic: practice.TopicThermalEnergy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(p.ID, "gen-") {
		t.Errorf("unexpected id %q", p.ID)
	}
	if p.Topic != practice.TopicThermalEnergy || p.Difficulty != practice.DifficultyEasy {
		t.Errorf("unexpected topic/difficulty: %s/%s", p.Topic, p.Difficulty)
	}
	if p.CorrectAnswer() != "8360" {
		t.Errorf("unexpected display %q", p.CorrectAnswer())
	}
	if p.Grade("8362") != practice.Correct {
		t.Error("answer within tolerance should grade correct")
	}
	if p.Grade("8300") != practice.Incorrect {
		t.Error("answer outside tolerance should grade incorrect")
	}

	if got := mock.Purposes(); len(got) != 1 || got[0] != llm.PurposeProblemGen {
		t.Errorf("expected one problem-gen request, got %v", got)
	}
	req := mock.Calls[0]
	if req.Schema != ProblemSchema {
		t.Error("expected problem schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: Thermal Energy") {
		t.Errorf("prompt missing topic: %q", req.Messages[0].Content)
	}
}

func TestGenerate_KilojouleAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: heatProblemJSON("8.36", "kJ", "0.01")})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		content   json.RawMessage
		validator string
	}{
		{"wrong heat", heatProblemJSON("836", "J", "1"), "heat-check"},
		{"loose tolerance", heatProblemJSON("8360", "J", "1000"), "tolerance"},
		{"missing unit", heatProblemJSON("8360", "", "1"), "structural"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: tc.content})
			_, err := New(mock, DefaultConfig()).Generate(context.Background(), GenerateInput{})
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if valErr.Validator != tc.validator {
				t.Errorf("expected %s validator, got %q", tc.validator, valErr.Validator)
			}
		})
	}
}

func TestGenerate_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text": "What is ΔH?", "answer": "lots"}`),
	})
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), GenerateInput{})
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *llm.ErrInvalidResponse, got %v", err)
	}
	if llm.Classify(err) != llm.KindMalformed {
		t.Errorf("expected malformed, got %s", llm.Classify(err))
	}
}

func TestGenerate_TextReplyIsMalformed(t *testing.T) {
	mock := llm.NewMockProvider().Script(llm.PurposeProblemGen, llm.MockResponse{
		Text: "Sure! Here is a problem about specific heat.",
	})
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), GenerateInput{})
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected llm.ErrUnavailable, got %v", err)
	}
	if llm.Classify(err) != llm.KindMalformed {
		t.Errorf("expected malformed, got %s", llm.Classify(err))
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), GenerateInput{})
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected wrapped *llm.ErrProviderUnavailable, got %v", err)
	}
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected llm.ErrUnavailable, got %v", err)
	}
}

// maxDifficultyValidator rejects anything above medium.
type maxDifficultyValidator struct{}

func (v *maxDifficultyValidator) Name() string { return "max-difficulty" }

func (v *maxDifficultyValidator) Validate(p *practice.Problem, _ GenerateInput) *ValidationError {
	if p.Difficulty == practice.DifficultyHard {
		return &ValidationError{Validator: v.Name(), Message: "too hard"}
	}
	return nil
}

func TestGenerate_CustomValidator(t *testing.T) {
	raw := strings.Replace(string(heatProblemJSON("8360", "J", "5")), `"easy"`, `"hard"`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	cfg := DefaultConfig()
	cfg.Validators = append(cfg.Validators, &maxDifficultyValidator{})

	_, err := New(mock, cfg).Generate(context.Background(), GenerateInput{})
	var valErr *ValidationError
	if !errors.As(err, &valErr) || valErr.Validator != "max-difficulty" {
		t.Fatalf("expected custom validator rejection, got %v", err)
	}
}
