package problemgen

import (
	"strings"
	"testing"

	"github.com/abhisek/thermoviz/internal/practice"
)

func TestBuildUserMessage_Defaults(t *testing.T) {
	msg := buildUserMessage(GenerateInput{}, DefaultConfig())

	if !strings.Contains(msg, "Topic: any of") {
		t.Error("expected open topic")
	}
	if !strings.Contains(msg, "Difficulty: medium") {
		t.Error("expected medium default difficulty")
	}
	if !strings.Contains(msg, "Already asked in this session:\nNone") {
		t.Error("expected 'None' for prior questions")
	}
}

func TestBuildUserMessage_TopicAndPrior(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Topic:          practice.TopicHessLaw,
		Difficulty:     practice.DifficultyHard,
		PriorQuestions: []string{"Q1", "Q2"},
	}, DefaultConfig())

	if !strings.Contains(msg, "Topic: Hess's Law") {
		t.Error("missing topic label")
	}
	if !strings.Contains(msg, "Difficulty: hard") {
		t.Error("missing difficulty")
	}
	if !strings.Contains(msg, "1. Q1\n2. Q2") {
		t.Errorf("missing numbered prior questions: %q", msg)
	}
}

func TestBuildDedup_KeepsMostRecent(t *testing.T) {
	prior := []string{"a", "b", "c", "d"}
	got := buildDedup(prior, 2)
	if got != "1. c\n2. d" {
		t.Errorf("got %q", got)
	}
	if buildDedup(nil, 2) != "None" {
		t.Error("expected None")
	}
}
