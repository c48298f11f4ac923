// Package history lists recorded LLM requests: tutor questions and
// generated problems.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Events []store.LLMRequestEvent
	Usage  []store.LLMUsage
	Err    error
}

// HistoryScreen displays recent LLM requests with per-purpose usage.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.LLMRequestEvent
	usage     []store.LLMUsage
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		ctx := context.Background()

		events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Usage is a summary line; the list is still useful without it.
		usage, err := repo.LLMUsageByPurpose(ctx)
		if err != nil {
			return historyLoadedMsg{Events: events}
		}
		return historyLoadedMsg{Events: events, Usage: usage}
	}
}

func (s *HistoryScreen) Title() string {
	return "Tutor History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
			s.usage = msg.Usage
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No requests yet. Ask Chevin something!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.usage) > 0 {
		var parts []string
		for _, u := range s.usage {
			parts = append(parts, fmt.Sprintf("%s: %d calls, %d tokens", u.Purpose, u.Calls, u.InputTokens+u.OutputTokens))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(strings.Join(parts, "   "))))
		b.WriteString("\n\n")
	}

	detail := lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(width-12, 20))
	for i, ev := range s.events {
		status := theme.Correct.Render("ok")
		if !ev.Success {
			status = theme.Incorrect.Render("failed")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-12s %-24s %5d ms  %d→%d tokens  ",
			prefix, ev.Timestamp.Local().Format("Jan 02 15:04"), ev.Purpose, ev.Model,
			ev.LatencyMs, ev.InputTokens, ev.OutputTokens)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+status))
		b.WriteString("\n")

		if s.expanded[i] {
			if ev.ErrorMessage != "" {
				b.WriteString("      " + theme.Incorrect.Render(ev.ErrorMessage) + "\n")
			}
			if ev.ResponseBody != "" {
				b.WriteString(lipgloss.NewStyle().PaddingLeft(6).Render(detail.Render(clip(ev.ResponseBody, 600))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// clip shortens s to n runes.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
