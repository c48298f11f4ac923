package fundamentals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/thermoviz/internal/thermo"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestSectionNavigationWraps(t *testing.T) {
	s := New()
	if s.err != nil {
		t.Fatalf("load: %v", s.err)
	}
	n := len(s.doc.Sections)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.section != n-1 {
		t.Errorf("left from first section = %d, want %d", s.section, n-1)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.section != 0 {
		t.Errorf("right from last section = %d, want 0", s.section)
	}
}

func TestSystemSelection(t *testing.T) {
	s := New()
	if s.current().ID != "systems" {
		t.Fatalf("first section = %q, want systems", s.current().ID)
	}

	s.Update(key('o'))
	if s.system != thermo.SystemOpen {
		t.Errorf("system = %q, want open", s.system)
	}
	if !strings.Contains(s.body(), "Energy and matter can be exchanged") {
		t.Error("body should describe the open system")
	}

	s.Update(key('i'))
	if !strings.Contains(s.body(), "Neither energy nor matter") {
		t.Error("body should describe the isolated system")
	}
}

func TestSpecificHeatExample(t *testing.T) {
	s := New()
	for s.current().ID != "specific-heat" {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}

	if !strings.Contains(s.body(), "= 4180 J") {
		t.Errorf("water example missing from body:\n%s", s.body())
	}

	s.Update(key('4'))
	if s.substance != 3 {
		t.Fatalf("substance = %d, want 3", s.substance)
	}
	if !strings.Contains(s.body(), "= 130 J") {
		t.Error("gold example should give 130 J")
	}

	s.Update(key('9'))
	if s.substance != 3 {
		t.Error("out-of-range substance key should be ignored")
	}
}

func TestScrollClampsInView(t *testing.T) {
	s := New()
	for i := 0; i < 200; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(80, 20)
	if s.offset > 200 || s.offset < 0 {
		t.Fatalf("offset out of range: %d", s.offset)
	}
	before := s.offset
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if before > 0 && s.offset != before-1 {
		t.Errorf("up should scroll back one line")
	}
	if !strings.Contains(s.View(80, 20), "Thermodynamics Journey") {
		t.Error("view should show the document title")
	}
}
