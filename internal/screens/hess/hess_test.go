package hess

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestStartsOnFirstExample(t *testing.T) {
	s := New()
	assert.Equal(t, "co2", s.Walkthrough().Example().ID)
	assert.Equal(t, 0, s.Walkthrough().ActiveStep())
	assert.True(t, s.Walkthrough().Matches())
}

func TestExampleCycling(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, "ch4", s.Walkthrough().Example().ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, "n2o4", s.Walkthrough().Example().ID)
}

func TestSolveMethaneByReversingLastStep(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.False(t, s.Walkthrough().Matches())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(key('r'))

	assert.InDelta(t, -74.8, s.Walkthrough().Combined(), 1e-9)
	assert.True(t, s.Walkthrough().Matches())
}

func TestSolveN2O4WithScale(t *testing.T) {
	s := New()
	s.selectExample(2)
	s.Update(key('r'))
	s.Update(key('m')) // ×2

	assert.InDelta(t, -57.2, s.Walkthrough().Combined(), 1e-9)
	assert.True(t, s.Walkthrough().Matches())
}

func TestNextBackAndReset(t *testing.T) {
	s := New()
	s.Update(key('n'))
	s.Update(key('n'))
	s.Update(key('n'))
	assert.Equal(t, 2, s.Walkthrough().ActiveStep())

	s.Update(key('b'))
	assert.Equal(t, 1, s.Walkthrough().ActiveStep())

	s.Update(key('r'))
	s.Update(key('s'))
	s.Update(key('0'))
	assert.Equal(t, 0, s.Walkthrough().ActiveStep())
	assert.False(t, s.showSolution)
	assert.False(t, s.Walkthrough().Steps()[0].Reversed)
}

func TestCursorStaysInRange(t *testing.T) {
	s := New()
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 1, s.cursor)
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	assert.Equal(t, 0, s.cursor)
}

func TestView(t *testing.T) {
	s := New()
	out := s.View(120, 40)
	assert.Contains(t, out, "Press n")
	assert.Contains(t, out, "matches the target")

	s.Update(key('n'))
	s.Update(key('s'))
	out = s.View(120, 40)
	assert.Contains(t, out, "Solution")
	assert.Contains(t, out, "-110.5 + (-283.0) = -393.5 kJ/mol")
	assert.Contains(t, out, "Hess's Law Energy Diagram")
}
