package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/thermoviz/internal/store"
)

type recordingRepo struct {
	store.EventRepo

	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: TextContent("ΔH is the heat at constant pressure."),
		Usage:   Usage{InputTokens: 12, OutputTokens: 8},
	})
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), PurposeTutor)
	resp, err := p.Generate(ctx, Request{
		System:   "You are a thermodynamics tutor.",
		Messages: []Message{{Role: RoleUser, Content: "What is enthalpy?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ΔH is the heat at constant pressure." {
		t.Fatalf("unexpected text %q", resp.Text())
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "gemini" || ev.Model != "mock" || ev.Purpose != PurposeTutor {
		t.Fatalf("unexpected event identity: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 8 {
		t.Fatalf("unexpected event outcome: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]") || !strings.Contains(ev.RequestBody, "What is enthalpy?") {
		t.Fatalf("request body missing content: %q", ev.RequestBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithLogging(mock, "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	if repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("expected failed event with message, got %+v", repo.events[0])
	}
}

func TestLoggingProvider_StoreErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: TextContent("ok")})
	p := WithLogging(mock, "gemini", repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ok" {
		t.Fatalf("unexpected text %q", resp.Text())
	}
}
