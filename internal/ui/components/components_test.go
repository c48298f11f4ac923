package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestBlockText(t *testing.T) {
	out := BlockText("thermo")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if got, want := len([]rune(lines[0])), BlockTextWidth("THERMO"); got != want {
		t.Errorf("first row width = %d, want %d", got, want)
	}
	if strings.Contains(out, "#") {
		t.Error("glyph markers should be replaced with blocks")
	}
}

func TestBlockTextWidth(t *testing.T) {
	if got := BlockTextWidth("THERMOVIZ"); got != 9*5+8 {
		t.Errorf("BlockTextWidth = %d, want %d", got, 9*5+8)
	}
	if got := BlockTextWidth("?"); got != 0 {
		t.Errorf("unknown rune width = %d, want 0", got)
	}
}

func TestIsNumericKey(t *testing.T) {
	for _, k := range []string{"0", "9", ".", "-", "−", "e"} {
		if !IsNumericKey(k) {
			t.Errorf("expected %q to be numeric", k)
		}
	}
	for _, k := range []string{"a", "h", "enter", " "} {
		if IsNumericKey(k) {
			t.Errorf("expected %q not to be numeric", k)
		}
	}
}

func TestNumericInputDropsLetters(t *testing.T) {
	in := NewTextInput("0", true, 10)
	for _, r := range "1a2" {
		in, _ = in.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if in.Value() != "12" {
		t.Errorf("Value = %q, want %q", in.Value(), "12")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down at the end = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.Selected != 1 {
		t.Errorf("tab wraps to %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up at the start = %d, want 1", m.Selected)
	}
}

func TestMenuShortcutActivates(t *testing.T) {
	var ran string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd { ran = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "a", Key: "1", Action: action("a")},
		{Label: "b", Key: "2", Action: action("b"), Disabled: true},
		{Label: "c", Key: "3", Action: action("c")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if m.Selected != 2 || ran != "c" {
		t.Errorf("shortcut 3: selected %d ran %q", m.Selected, ran)
	}
	ran = ""
	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if m.Selected != 2 || ran != "" {
		t.Errorf("disabled shortcut: selected %d ran %q", m.Selected, ran)
	}
}
