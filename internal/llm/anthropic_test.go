package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(stop string, texts ...string) map[string]any {
	blocks := make([]map[string]any, len(texts))
	for i, text := range texts {
		blocks[i] = map[string]any{"type": "text", "text": text}
	}
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     blocks,
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_TutorReplyJoinsTextBlocks(t *testing.T) {
	var sent map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		replyJSON(anthropicMessage("end_turn", "Ice absorbs heat while melting, ", "so ΔH is positive."))(w, r)
	})

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Is melting endothermic?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.Text(); got != "Ice absorbs heat while melting, so ΔH is positive." {
		t.Fatalf("Text() = %q", got)
	}
	if sent["max_tokens"] != float64(defaultAnthropicMaxTokens) {
		t.Fatalf("max_tokens = %v, want default %d", sent["max_tokens"], defaultAnthropicMaxTokens)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Fatalf("expected 80 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestAnthropicProvider_StructuredReply(t *testing.T) {
	p := newTestAnthropicProvider(t, replyJSON(anthropicMessage("end_turn", `{"name":"Hess","age":4}`)))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "A Hess's law problem."}},
		Schema:    testSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"name":"Hess","age":4}` {
		t.Fatalf("unexpected content %s", resp.Content)
	}
}

func TestAnthropicProvider_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		schema  *Schema
		kind    FailureKind
	}{
		{"no text blocks", replyJSON(anthropicMessage("end_turn")), nil, KindMalformed},
		{"truncated JSON", replyJSON(anthropicMessage("max_tokens", `{"name":`)), testSchema(), KindTruncated},
		{"rate limit", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
			})
		}, nil, KindRateLimited},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "boom"},
			})
		}, nil, KindTransient},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, tc.handler)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "q"}},
				Schema:    tc.schema,
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := Classify(err); got != tc.kind {
				t.Fatalf("Classify(%v) = %s, want %s", err, got, tc.kind)
			}
		})
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
