package chat

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/abhisek/thermoviz/internal/tutor"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(key(r))
	}
}

// runAsk executes the ask half of the batch returned by send.
func runAsk(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch")
	require.NotEmpty(t, batch)
	return batch[0]()
}

func serviceWith(t *testing.T, mock *llm.MockProvider) *tutor.Service {
	t.Setenv(tutor.EnvAPIKey, "AIza-test")
	cfg := llm.DefaultConfig()
	cfg.Provider = "gemini"
	return tutor.NewService(cfg, tutor.WithProviderFactory(
		func(context.Context, llm.Config, store.EventRepo) (llm.Provider, error) { return mock, nil }))
}

func TestStartsWithGreeting(t *testing.T) {
	s := New(nil)
	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, tutor.Greeting, msgs[0].Text)
	assert.Equal(t, "Ask Chevin", s.Title())
}

func TestAskRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: llm.TextContent("Bonds forming release energy.")})
	s := New(serviceWith(t, mock))

	typeText(s, "Why is combustion exothermic?")
	_, cmd := s.Update(enter)
	assert.True(t, s.Thinking())
	assert.Empty(t, s.input.Value())

	// A second Enter while waiting does nothing.
	typeText(s, "again")
	_, again := s.Update(enter)
	assert.Nil(t, again)

	s.Update(runAsk(t, cmd))
	assert.False(t, s.Thinking())

	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, tutor.SpeakerStudent, msgs[1].Speaker)
	assert.Equal(t, "Why is combustion exothermic?", msgs[1].Text)
	assert.Equal(t, "Bonds forming release energy.", msgs[2].Text)
	assert.Equal(t, 1, mock.CallCount())
}

func TestBlankQuestionIgnored(t *testing.T) {
	s := New(nil)
	typeText(s, "   ")
	_, cmd := s.Update(enter)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.Transcript().Len())
}

func TestMissingKeyShowsFailureAndHint(t *testing.T) {
	s := New(nil)
	typeText(s, "hello")
	_, cmd := s.Update(enter)
	s.Update(runAsk(t, cmd))

	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 3)
	assert.True(t, msgs[2].Failed)
	assert.Equal(t, tutor.FailureMessage, msgs[2].Text)
	assert.Contains(t, s.View(120, 40), "No API key")
}

func TestStaleThinkingTickStops(t *testing.T) {
	s := New(nil)
	_, cmd := s.Update(thinkingTickMsg{})
	assert.Nil(t, cmd)
}
