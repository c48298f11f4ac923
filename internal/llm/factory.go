package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/store"
)

// NewProvider creates a Provider from configuration.
// The base provider is wrapped with event logging when eventRepo is set,
// and with retries unless cfg.Retry.MaxAttempts is 1 or less.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logger.FromContext(ctx).WithPrefix("llm").Debug("using %s provider, model %s", cfg.Provider, base.ModelID())

	// Wrap with middleware: caller → retry → logging → base
	p := base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}
