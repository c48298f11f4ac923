package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thermoviz/internal/store"
)

type fakeEvents struct {
	events   []store.LLMRequestEvent
	usage    []store.LLMUsage
	queryErr error
	limit    int
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }

func (f *fakeEvents) QueryLLMEvents(_ context.Context, opts store.QueryOpts) ([]store.LLMRequestEvent, error) {
	f.limit = opts.Limit
	return f.events, f.queryErr
}

func (f *fakeEvents) GetLLMEvent(context.Context, int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return f.usage, nil
}

func (f *fakeEvents) LLMUsageByModel(context.Context) ([]store.LLMUsage, error) { return nil, nil }

func sampleEvents() []store.LLMRequestEvent {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []store.LLMRequestEvent{
		{ID: 2, Sequence: 2, Timestamp: at, LLMRequestEventData: store.LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "tutor",
			InputTokens: 120, OutputTokens: 80, LatencyMs: 900, Success: false,
			ErrorMessage: "rate limited",
		}},
		{ID: 1, Sequence: 1, Timestamp: at, LLMRequestEventData: store.LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "problem_gen",
			InputTokens: 300, OutputTokens: 200, LatencyMs: 1500, Success: true,
			ResponseBody: `{"question_text":"Heat 10 g of water"}`,
		}},
	}
}

func loaded(t *testing.T, repo *fakeEvents) *HistoryScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	return s
}

func TestLoadsEventsAndUsage(t *testing.T) {
	repo := &fakeEvents{
		events: sampleEvents(),
		usage:  []store.LLMUsage{{Purpose: "tutor", Calls: 1, InputTokens: 120, OutputTokens: 80}},
	}
	s := loaded(t, repo)

	assert.Equal(t, pageSize, repo.limit)
	out := s.View(160, 40)
	assert.Contains(t, out, "tutor: 1 calls, 200 tokens")
	assert.Contains(t, out, "problem_gen")
	assert.Contains(t, out, "failed")
}

func TestExpandShowsDetails(t *testing.T) {
	s := loaded(t, &fakeEvents{events: sampleEvents()})
	assert.NotContains(t, s.View(160, 40), "rate limited")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(160, 40), "rate limited")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(160, 40), "Heat 10 g of water")
}

func TestEmptyAndError(t *testing.T) {
	s := loaded(t, &fakeEvents{})
	assert.Contains(t, s.View(100, 20), "No requests yet")

	s = loaded(t, &fakeEvents{queryErr: errors.New("db locked")})
	assert.Contains(t, s.View(100, 20), "db locked")
}

func TestNilRepo(t *testing.T) {
	s := New(nil)
	s.Update(s.Init()())
	assert.Contains(t, s.View(100, 20), "No requests yet")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 5))
	assert.Equal(t, "ab…", clip("abcd", 2))
}
