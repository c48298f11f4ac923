package problemgen

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/practice"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single problem for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*practice.Problem, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeProblemGen)
	log := logger.FromContext(ctx).WithPrefix("problemgen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		log.Warn("generation failed (%s): %v", llm.Classify(err), err)
		return nil, llm.Fail(err)
	}

	var raw problemOutput
	if err := llm.Decode(ProblemSchema, resp.Content, &raw); err != nil {
		log.Warn("unusable problem from %s: %v", g.provider.ModelID(), err)
		return nil, llm.Fail(err)
	}

	topic := input.Topic
	if topic == "" {
		topic = practice.TopicAll
	}
	p := &practice.Problem{
		ID:          "gen-" + uuid.NewString()[:8],
		Topic:       topic,
		Difficulty:  practice.Difficulty(raw.Difficulty),
		Question:    raw.QuestionText,
		Answer:      raw.Answer,
		Display:     strconv.FormatFloat(raw.Answer, 'g', -1, 64),
		Unit:        raw.Unit,
		Tolerance:   raw.Tolerance,
		Explanation: raw.Explanation,
		Formula:     raw.Formula,
		Hint:        raw.Hint,
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(p, input); verr != nil {
			log.Warn("rejected by %s: %s", verr.Validator, verr.Message)
			return nil, verr
		}
	}

	log.Debug("generated %s (%s, %s)", p.ID, p.Topic, p.Difficulty)
	return p, nil
}
