package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/router"
	"github.com/abhisek/thermoviz/internal/screens/settings"
	"github.com/abhisek/thermoviz/internal/tutor"
)

type memSettings map[string]string

func (m memSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}
func (m memSettings) Set(_ context.Context, key, value string) error { m[key] = value; return nil }
func (m memSettings) Delete(_ context.Context, key string) error     { delete(m, key); return nil }

func press(h *HomeScreen, key tea.KeyPressMsg) tea.Cmd {
	_, cmd := h.Update(key)
	return cmd
}

func TestMenuPushesScreens(t *testing.T) {
	h := New(Deps{})

	titles := []string{"Fundamentals", "Heating & Cooling", "Enthalpy Diagram", "Hess's Law", "Practice"}
	for i, want := range titles {
		h.menu.Selected = i
		cmd := press(h, tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("item %d: expected a command", i)
		}
		msg, ok := cmd().(router.PushScreenMsg)
		if !ok {
			t.Fatalf("item %d: expected PushScreenMsg", i)
		}
		if got := msg.Screen.Title(); got != want {
			t.Errorf("item %d: pushed %q, want %q", i, got, want)
		}
	}
}

func TestTutorItemsDisabledWithoutServices(t *testing.T) {
	h := New(Deps{})
	for _, i := range []int{itemTutor, itemHistory, itemSettings} {
		if !h.disabled[i] {
			t.Errorf("item %d should be disabled", i)
		}
	}

	h.menu.Selected = itemPractice
	press(h, tea.KeyPressMsg{Code: tea.KeyDown})
	if h.menu.Selected != itemExit {
		t.Errorf("down from practice should skip to exit, got %d", h.menu.Selected)
	}
}

func TestKeyBannerFollowsCredential(t *testing.T) {
	t.Setenv(tutor.EnvAPIKey, "")
	repo := memSettings{}
	svc := tutor.NewService(llm.DefaultConfig(), tutor.WithSettings(repo))
	h := New(Deps{Tutor: svc, Settings: repo})

	if h.configured {
		t.Fatal("expected unconfigured tutor")
	}
	if !strings.Contains(h.View(120, 50), "Add a Gemini API key") {
		t.Error("expected key banner")
	}

	repo["gemini_api_key"] = "abc123"
	h.Update(settings.KeyChangedMsg{})
	if !h.configured {
		t.Fatal("expected configured tutor after key change")
	}
	if strings.Contains(h.View(120, 50), "Add a Gemini API key") {
		t.Error("banner should disappear once a key is saved")
	}
}

func TestExitQuits(t *testing.T) {
	h := New(Deps{})
	h.menu.Selected = itemExit
	cmd := press(h, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestNumberKeyOpensItem(t *testing.T) {
	h := New(Deps{})
	cmd := press(h, tea.KeyPressMsg{Code: '4', Text: "4"})
	if cmd == nil {
		t.Fatal("expected a command for key 4")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if got := msg.Screen.Title(); got != "Hess's Law" {
		t.Errorf("key 4 opened %q", got)
	}
	if h.menu.Selected != itemHess {
		t.Errorf("selection = %d, want %d", h.menu.Selected, itemHess)
	}
}
