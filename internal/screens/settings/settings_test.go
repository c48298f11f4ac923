package settings

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thermoviz/internal/store"
)

type memSettings struct {
	values map[string]string
	err    error
}

func (m *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(key(r))
	}
}

func load(t *testing.T, s *Screen, repo store.SettingsRepo) {
	t.Helper()
	k, _, err := repo.Get(context.Background(), store.CredentialKey)
	s.Update(keyLoadedMsg{Key: k, Err: err})
}

func TestShowsMaskedKey(t *testing.T) {
	repo := &memSettings{values: map[string]string{store.CredentialKey: "AIza123456"}}
	s := New(repo)
	load(t, s, repo)

	out := s.View(100, 30)
	assert.Contains(t, out, "3456")
	assert.NotContains(t, out, "AIza123456")
}

func TestSaveTrimsAndStores(t *testing.T) {
	repo := &memSettings{}
	s := New(repo)
	typeText(s, "  AIza-new  ")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved := cmd()
	assert.Equal(t, keySavedMsg{}, saved)
	assert.Equal(t, "AIza-new", repo.values[store.CredentialKey])

	_, cmd = s.Update(saved)
	assert.NotNil(t, cmd, "saving pops back and announces the change")
}

func TestSaveEmptyShowsError(t *testing.T) {
	s := New(&memSettings{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 30), "Enter a key first.")
}

func TestClearDeletesKey(t *testing.T) {
	repo := &memSettings{values: map[string]string{store.CredentialKey: "AIza123456"}}
	s := New(repo)
	load(t, s, repo)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := repo.values[store.CredentialKey]
	assert.False(t, ok)

	_, cmd = s.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, KeyChangedMsg{}, cmd())
	assert.Contains(t, s.View(100, 30), "Key removed.")
}

func TestClearWithoutKeyIsNoop(t *testing.T) {
	s := New(&memSettings{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	assert.Nil(t, cmd)
}

func TestLoadError(t *testing.T) {
	repo := &memSettings{err: errors.New("disk gone")}
	s := New(repo)
	load(t, s, repo)
	assert.Contains(t, s.View(100, 30), "disk gone")
}
