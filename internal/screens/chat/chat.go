// Package chat is the conversation screen with the tutor.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/tutor"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

var thinkingFrames = []string{".  ", ".. ", "..."}

// replyMsg carries the outcome of one Ask.
type replyMsg struct {
	Reply string
	Err   error
}

type thinkingTickMsg time.Time

// Screen shows the transcript and an input line. Only one question is in
// flight at a time.
type Screen struct {
	tutor      *tutor.Service
	transcript *tutor.Transcript
	input      components.TextInput
	thinking   bool
	frame      int
	needsKey   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts a fresh conversation.
func New(svc *tutor.Service) *Screen {
	return &Screen{
		tutor:      svc,
		transcript: tutor.NewTranscript(),
		input:      components.NewTextInput("Ask about heat, enthalpy, phase changes...", false, 500),
	}
}

func (s *Screen) Init() tea.Cmd { return s.input.Init() }

func (s *Screen) Title() string { return "Ask " + tutor.Persona }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

// Transcript exposes the conversation so far.
func (s *Screen) Transcript() *tutor.Transcript { return s.transcript }

// Thinking reports whether a reply is pending.
func (s *Screen) Thinking() bool { return s.thinking }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.thinking = false
		s.needsKey = errors.Is(msg.Err, tutor.ErrNoCredential)
		s.transcript.AddReply(msg.Reply, msg.Err)
		return s, nil

	case thinkingTickMsg:
		if !s.thinking {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(thinkingFrames)
		return s, thinkingTick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, s.send()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) send() tea.Cmd {
	question := strings.TrimSpace(s.input.Value())
	if question == "" || s.thinking {
		return nil
	}
	s.transcript.AddQuestion(question)
	s.input.Reset()
	s.thinking = true
	s.frame = 0

	svc := s.tutor
	return tea.Batch(func() tea.Msg {
		if svc == nil {
			return replyMsg{Err: tutor.ErrNoCredential}
		}
		reply, err := svc.Ask(context.Background(), question)
		return replyMsg{Reply: reply, Err: err}
	}, thinkingTick())
}

func thinkingTick() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg { return thinkingTickMsg(t) })
}

func (s *Screen) View(width, height int) string {
	bubbleWidth := max(min(width*3/4, 80), 24)
	tutorStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text).
		Padding(0, 1).
		Width(bubbleWidth)
	studentStyle := tutorStyle.BorderForeground(theme.Secondary)
	failedStyle := tutorStyle.BorderForeground(theme.Error).Foreground(theme.Error)

	var blocks []string
	for _, m := range s.transcript.Messages() {
		switch {
		case m.Speaker == tutor.SpeakerStudent:
			blocks = append(blocks, lipgloss.PlaceHorizontal(width-2, lipgloss.Right, studentStyle.Render(m.Text)))
		case m.Failed:
			blocks = append(blocks, "  "+theme.Heading.Render(tutor.Persona)+"\n  "+failedStyle.Render(m.Text))
		default:
			blocks = append(blocks, "  "+theme.Heading.Render(tutor.Persona)+"\n  "+tutorStyle.Render(m.Text))
		}
	}
	if s.thinking {
		blocks = append(blocks, "  "+theme.Hint.Render(tutor.Persona+" is thinking"+thinkingFrames[s.frame]))
	}

	footer := "\n  " + s.input.View()
	if s.needsKey {
		footer = "\n  " + theme.Incorrect.Render("⚠ No API key. Add one in TUTOR SETTINGS or set GEMINI_API_KEY.") + footer
	}

	// Keep the newest messages, dropping the oldest that do not fit.
	avail := height - lipgloss.Height(footer)
	var shown []string
	used := 0
	for i := len(blocks) - 1; i >= 0; i-- {
		h := lipgloss.Height(blocks[i]) + 1
		if used+h > avail && len(shown) > 0 {
			break
		}
		shown = append([]string{blocks[i]}, shown...)
		used += h
	}
	return strings.Join(shown, "\n\n") + "\n" + footer
}
