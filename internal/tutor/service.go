package tutor

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/store"
)

var (
	// ErrEmptyQuestion is returned for blank questions; no request is made.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNoCredential means no API key is configured for the provider.
	ErrNoCredential = errors.New("no API key configured")

	// ErrUnavailable matches every failure past the credential check.
	// Callers show FailureMessage rather than the wrapped detail.
	ErrUnavailable = llm.ErrUnavailable
)

// DefaultModel is the Gemini model the tutor asks.
const DefaultModel = "gemini-2.0-flash"

// EnvAPIKey is consulted when the store holds no key.
const EnvAPIKey = "GEMINI_API_KEY"

// ProviderFactory builds a provider for one request.
type ProviderFactory func(ctx context.Context, cfg llm.Config, events store.EventRepo) (llm.Provider, error)

// Service answers student questions through an LLM provider.
type Service struct {
	cfg      llm.Config
	settings store.SettingsRepo
	events   store.EventRepo
	factory  ProviderFactory
}

// Option configures a Service.
type Option func(*Service)

// WithSettings reads the API key from the settings store.
func WithSettings(repo store.SettingsRepo) Option {
	return func(s *Service) { s.settings = repo }
}

// WithEvents records every request in the event log.
func WithEvents(repo store.EventRepo) Option {
	return func(s *Service) { s.events = repo }
}

// WithProviderFactory replaces llm.NewProvider, mainly for tests.
func WithProviderFactory(f ProviderFactory) Option {
	return func(s *Service) { s.factory = f }
}

// NewService creates a tutor. cfg selects the provider; the Gemini model
// defaults to DefaultModel.
func NewService(cfg llm.Config, opts ...Option) *Service {
	if cfg.Provider == "gemini" && (cfg.Gemini.Model == "" || cfg.Gemini.Model == llm.DefaultConfig().Gemini.Model) {
		cfg.Gemini.Model = DefaultModel
	}
	s := &Service{cfg: cfg, factory: llm.NewProvider}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Configured reports whether Ask can reach a provider. The UI shows the
// key settings when it returns false.
func (s *Service) Configured(ctx context.Context) bool {
	cfg, err := s.resolve(ctx)
	return err == nil && cfg.HasCredential()
}

// Ask sends one question and returns the tutor's reply. Failures are never
// retried.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	log := logger.FromContext(ctx).WithPrefix("tutor")

	cfg, err := s.resolve(ctx)
	if err != nil {
		log.Error("reading credential: %v", err)
		return "", llm.Fail(err)
	}
	if !cfg.HasCredential() {
		return "", ErrNoCredential
	}

	provider, err := s.factory(ctx, cfg.WithoutRetry(), s.events)
	if err != nil {
		log.Error("creating provider: %v", err)
		return "", llm.Fail(err)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeTutor)
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	resp, err := provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: Prompt(question)}},
	})
	if err != nil {
		log.Warn("ask failed (%s): %v", llm.Classify(err), err)
		return "", llm.Fail(err)
	}

	reply := resp.Text()
	if reply == "" {
		log.Warn("empty reply from %s", provider.ModelID())
		return "", llm.Fail(&llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty reply")})
	}
	log.Debug("answered with %s (%d chars)", provider.ModelID(), len(reply))
	return reply, nil
}

// resolve fills in the Gemini key: stored key first, then the configured
// key, then GEMINI_API_KEY.
func (s *Service) resolve(ctx context.Context) (llm.Config, error) {
	cfg := s.cfg
	if cfg.Provider != "gemini" {
		return cfg, nil
	}
	if s.settings != nil {
		key, ok, err := s.settings.Get(ctx, store.CredentialKey)
		if err != nil {
			return cfg, err
		}
		if ok && strings.TrimSpace(key) != "" {
			cfg.Gemini.APIKey = strings.TrimSpace(key)
			return cfg, nil
		}
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv(EnvAPIKey)
	}
	return cfg, nil
}

// SaveKey stores a trimmed, non-empty API key.
func SaveKey(ctx context.Context, repo store.SettingsRepo, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrNoCredential
	}
	return repo.Set(ctx, store.CredentialKey, key)
}

// MaskKey hides all but the last four characters.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("•", len(key))
	}
	return strings.Repeat("•", len(key)-4) + key[len(key)-4:]
}
