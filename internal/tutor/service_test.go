package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/store"
)

type memSettings struct {
	values map[string]string
	err    error
}

func (m *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// fakeFactory hands out mock and remembers the config it was given.
type fakeFactory struct {
	mock  *llm.MockProvider
	cfg   llm.Config
	calls int
	err   error
}

func (f *fakeFactory) build(_ context.Context, cfg llm.Config, _ store.EventRepo) (llm.Provider, error) {
	f.calls++
	f.cfg = cfg
	if f.err != nil {
		return nil, f.err
	}
	return f.mock, nil
}

func geminiConfig() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Provider = "gemini"
	return cfg
}

func TestAsk_UsesStoredKeyAndPrompt(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	f := &fakeFactory{mock: llm.NewMockProvider().Script(llm.PurposeTutor, llm.MockResponse{
		Text: "Think about which bonds break and which form.",
	})}
	settings := &memSettings{values: map[string]string{store.CredentialKey: " AIza-stored "}}
	svc := NewService(geminiConfig(), WithSettings(settings), WithProviderFactory(f.build))

	reply, err := svc.Ask(context.Background(), "  Why is combustion exothermic? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Think about which bonds break and which form." {
		t.Fatalf("unexpected reply %q", reply)
	}
	if f.cfg.Gemini.APIKey != "AIza-stored" {
		t.Fatalf("expected stored key, got %q", f.cfg.Gemini.APIKey)
	}
	if f.cfg.Gemini.Model != DefaultModel {
		t.Fatalf("expected model %s, got %q", DefaultModel, f.cfg.Gemini.Model)
	}
	if f.cfg.Retry.MaxAttempts > 1 {
		t.Fatalf("tutor requests must not retry, got %d attempts", f.cfg.Retry.MaxAttempts)
	}

	if got := f.mock.Purposes(); len(got) != 1 || got[0] != llm.PurposeTutor {
		t.Fatalf("expected one tutor request, got %v", got)
	}
	req := f.mock.Calls[0]
	if req.Schema != nil {
		t.Fatal("tutor requests are schema-less")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "STUDENT QUESTION: Why is combustion exothermic?\n") {
		t.Fatalf("prompt missing question: %q", req.Messages[0].Content)
	}
}

func TestAsk_EnvFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "AIza-env")
	f := &fakeFactory{mock: llm.NewMockProvider(llm.MockResponse{Text: "ok"})}
	svc := NewService(geminiConfig(), WithSettings(&memSettings{}), WithProviderFactory(f.build))

	if _, err := svc.Ask(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.cfg.Gemini.APIKey != "AIza-env" {
		t.Fatalf("expected env key, got %q", f.cfg.Gemini.APIKey)
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	f := &fakeFactory{mock: llm.NewMockProvider()}
	svc := NewService(geminiConfig(), WithProviderFactory(f.build))

	for _, q := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Ask(context.Background(), q); !errors.Is(err, ErrEmptyQuestion) {
			t.Errorf("Ask(%q) error = %v, want ErrEmptyQuestion", q, err)
		}
	}
	if f.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", f.calls)
	}
}

func TestAsk_NoCredential(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	f := &fakeFactory{mock: llm.NewMockProvider()}
	svc := NewService(geminiConfig(), WithSettings(&memSettings{}), WithProviderFactory(f.build))

	if svc.Configured(context.Background()) {
		t.Fatal("expected service to be unconfigured")
	}
	if _, err := svc.Ask(context.Background(), "What is heat?"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if f.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", f.calls)
	}
}

func TestAsk_ProviderFailureIsGeneric(t *testing.T) {
	t.Setenv(EnvAPIKey, "AIza-env")
	f := &fakeFactory{mock: llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("503")},
	})}
	svc := NewService(geminiConfig(), WithProviderFactory(f.build))

	_, err := svc.Ask(context.Background(), "What is enthalpy?")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if f.mock.CallCount() != 1 {
		t.Fatalf("expected exactly one attempt, got %d", f.mock.CallCount())
	}
}

func TestAsk_FailureKindsShareOneError(t *testing.T) {
	t.Setenv(EnvAPIKey, "AIza-env")

	tests := []struct {
		name string
		err  error
		kind llm.FailureKind
	}{
		{"unreachable", &llm.ErrProviderUnavailable{Err: errors.New("dial tcp")}, llm.KindTransient},
		{"rate limited", &llm.ErrRateLimit{Err: errors.New("429")}, llm.KindRateLimited},
		{"schema mismatch", &llm.ErrInvalidResponse{Err: errors.New("bad")}, llm.KindMalformed},
		{"truncated", &llm.ErrMaxTokensExceeded{}, llm.KindTruncated},
		{"deadline", context.DeadlineExceeded, llm.KindCanceled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider().Script(llm.PurposeTutor, llm.MockResponse{Err: tc.err})
			svc := NewService(geminiConfig(), WithProviderFactory((&fakeFactory{mock: mock}).build))

			_, err := svc.Ask(context.Background(), "Is melting endothermic?")
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("expected ErrUnavailable, got %v", err)
			}
			var failure *llm.Failure
			if !errors.As(err, &failure) || failure.Kind != tc.kind {
				t.Fatalf("expected %s failure, got %v", tc.kind, err)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("cause lost: %v", err)
			}
		})
	}
}

func TestAsk_IgnoresProblemGenScript(t *testing.T) {
	t.Setenv(EnvAPIKey, "AIza-env")
	mock := llm.NewMockProvider().Script(llm.PurposeProblemGen, llm.MockResponse{Content: []byte(`{}`)})
	svc := NewService(geminiConfig(), WithProviderFactory((&fakeFactory{mock: mock}).build))

	if _, err := svc.Ask(context.Background(), "What is ΔH?"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAsk_EmptyReplyIsFailure(t *testing.T) {
	t.Setenv(EnvAPIKey, "AIza-env")
	f := &fakeFactory{mock: llm.NewMockProvider(llm.MockResponse{Text: "  "})}
	svc := NewService(geminiConfig(), WithProviderFactory(f.build))

	if _, err := svc.Ask(context.Background(), "?"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAsk_FactoryAndStoreErrors(t *testing.T) {
	t.Setenv(EnvAPIKey, "AIza-env")
	f := &fakeFactory{err: errors.New("bad base url")}
	svc := NewService(geminiConfig(), WithProviderFactory(f.build))
	if _, err := svc.Ask(context.Background(), "q"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	svc = NewService(geminiConfig(), WithSettings(&memSettings{err: errors.New("locked")}))
	if _, err := svc.Ask(context.Background(), "q"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAsk_MockProviderNeedsNoKey(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"
	f := &fakeFactory{mock: llm.NewMockProvider(llm.MockResponse{Content: llm.TextContent("hello")})}
	svc := NewService(cfg, WithProviderFactory(f.build))

	if !svc.Configured(context.Background()) {
		t.Fatal("mock provider should count as configured")
	}
	reply, err := svc.Ask(context.Background(), "hi")
	if err != nil || reply != "hello" {
		t.Fatalf("got (%q, %v)", reply, err)
	}
}

func TestSaveKeyAndMask(t *testing.T) {
	settings := &memSettings{}
	if err := SaveKey(context.Background(), settings, "   "); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential for blank key, got %v", err)
	}
	if err := SaveKey(context.Background(), settings, " AIzaSy1234 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.values[store.CredentialKey] != "AIzaSy1234" {
		t.Fatalf("unexpected stored key %q", settings.values[store.CredentialKey])
	}
	if got := MaskKey("AIzaSy1234"); got != "••••••1234" {
		t.Fatalf("MaskKey = %q", got)
	}
	if got := MaskKey("abc"); got != "•••" {
		t.Fatalf("MaskKey short = %q", got)
	}
}
