package llm

import (
	"context"
	"testing"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock model, got %q", p.ModelID())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_Wrapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry wrapper, got %T", p)
	}

	p, err = NewProvider(context.Background(), cfg.WithoutRetry(), &recordingRepo{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Fatalf("expected logging wrapper without retry, got %T", p)
	}

	p, err = NewProvider(context.Background(), cfg.WithoutRetry(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*OpenAIProvider); !ok {
		t.Fatalf("expected bare provider, got %T", p)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("THERMOVIZ_LLM_PROVIDER", "gemini")
	t.Setenv("THERMOVIZ_GEMINI_API_KEY", "g-key")
	t.Setenv("THERMOVIZ_GEMINI_MODEL", "gemini-pro")
	t.Setenv("THERMOVIZ_GEMINI_BASE_URL", "http://127.0.0.1:9999")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Gemini.Model != "gemini-pro" || cfg.Gemini.BaseURL != "http://127.0.0.1:9999" {
		t.Fatalf("unexpected gemini config: %+v", cfg.Gemini)
	}
	if !cfg.HasCredential() {
		t.Fatal("expected credential to be present")
	}
	if cfg.WithoutRetry().Retry.MaxAttempts != 1 {
		t.Fatal("expected retries disabled")
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatal("WithoutRetry must not modify the receiver")
	}
}

func TestConfig_DefaultsToGeminiWithoutKey(t *testing.T) {
	t.Setenv("THERMOVIZ_LLM_PROVIDER", "")
	t.Setenv("THERMOVIZ_GEMINI_API_KEY", "")
	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini default, got %q", cfg.Provider)
	}
	if cfg.HasCredential() {
		t.Fatal("expected no credential")
	}
}

func TestResponseText(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{`"  Heat flows hot to cold.\n"`, "Heat flows hot to cold."},
		{`{"answer":8360}`, `{"answer":8360}`},
	}
	for _, tc := range cases {
		r := &Response{Content: []byte(tc.content)}
		if got := r.Text(); got != tc.want {
			t.Errorf("Text(%s) = %q, want %q", tc.content, got, tc.want)
		}
	}
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Fatal("nil response should yield empty text")
	}
	if string(TextContent(`say "hi"`)) != `"say \"hi\""` {
		t.Fatalf("unexpected encoding %s", TextContent(`say "hi"`))
	}
}
