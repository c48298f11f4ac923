package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Key, when set, selects and activates
// the item directly.
type MenuItem struct {
	Label    string
	Key      string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks the selection in a vertical list of items. Rendering is
// left to the screen that owns it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update moves the selection and runs actions. Up and down stop at the
// ends; tab and shift+tab wrap around.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.move(-1, false)
	case "down", "j":
		m.move(1, false)
	case "shift+tab":
		m.move(-1, true)
	case "tab":
		m.move(1, true)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == key && !item.Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m *Menu) move(step int, wrap bool) {
	n := len(m.Items)
	for i, tries := m.Selected, 0; tries < n; tries++ {
		i += step
		if i < 0 || i >= n {
			if !wrap {
				return
			}
			i = (i + n) % n
		}
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}
