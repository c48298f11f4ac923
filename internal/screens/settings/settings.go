// Package settings edits the tutor's stored API key.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/router"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/abhisek/thermoviz/internal/tutor"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// KeyChangedMsg is sent after the stored key was saved or cleared so the
// screen underneath can refresh.
type KeyChangedMsg struct{}

type keyLoadedMsg struct {
	Key string
	Err error
}

type keySavedMsg struct {
	Cleared bool
	Err     error
}

// Screen shows the masked current key and accepts a new one.
type Screen struct {
	repo    store.SettingsRepo
	input   components.TextInput
	current string
	status  string
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen over repo.
func New(repo store.SettingsRepo) *Screen {
	return &Screen{
		repo:  repo,
		input: components.NewSecretInput("Paste your Gemini API key"),
	}
}

func (s *Screen) Init() tea.Cmd {
	repo := s.repo
	return tea.Batch(s.input.Init(), func() tea.Msg {
		if repo == nil {
			return keyLoadedMsg{}
		}
		key, _, err := repo.Get(context.Background(), store.CredentialKey)
		return keyLoadedMsg{Key: key, Err: err}
	})
}

func (s *Screen) Title() string { return "Tutor Settings" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save"},
		{Key: "Ctrl+D", Description: "Clear key"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case keyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not read the stored key: " + msg.Err.Error()
			return s, nil
		}
		s.current = msg.Key
		return s, nil

	case keySavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Cleared {
			s.current = ""
			s.status = "Key removed."
			return s, func() tea.Msg { return KeyChangedMsg{} }
		}
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return KeyChangedMsg{} },
		)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.save()
		case "ctrl+d":
			return s, s.clear()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) save() tea.Cmd {
	key := strings.TrimSpace(s.input.Value())
	if key == "" {
		s.errMsg = "Enter a key first."
		return nil
	}
	if s.repo == nil {
		s.errMsg = "Settings storage is unavailable."
		return nil
	}
	s.errMsg = ""
	repo := s.repo
	return func() tea.Msg {
		return keySavedMsg{Err: tutor.SaveKey(context.Background(), repo, key)}
	}
}

func (s *Screen) clear() tea.Cmd {
	if s.repo == nil || s.current == "" {
		return nil
	}
	s.errMsg = ""
	s.input.Reset()
	repo := s.repo
	return func() tea.Msg {
		return keySavedMsg{Cleared: true, Err: repo.Delete(context.Background(), store.CredentialKey)}
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Gemini API key"))
	b.WriteString("\n\n")
	if s.current != "" {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Current key: %s", tutor.MaskKey(s.current))))
	} else {
		b.WriteString(theme.Hint.Render("No key stored. " + tutor.EnvAPIKey + " is used when set."))
	}
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("The key is kept in the local database and only sent to Google."))
	if s.status != "" {
		b.WriteString("\n\n" + theme.Correct.Render(s.status))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(s.errMsg))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
