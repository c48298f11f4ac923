package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app's styling.
type TextInput struct {
	Model textinput.Model
	// NumericOnly limits typing to characters that can appear in a signed
	// decimal number.
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

// NewTextInput creates a new styled, focused text input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

// NewSecretInput creates an input that masks what is typed.
func NewSecretInput(placeholder string) TextInput {
	t := NewTextInput(placeholder, false, 0)
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.EchoCharacter = '•'
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// IsNumericKey reports whether key is a character a number can contain.
func IsNumericKey(key string) bool {
	if len(key) != 1 {
		return key == "−"
	}
	return strings.ContainsAny(key, "0123456789.-+eE")
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" && !IsNumericKey(kmsg.Text) {
			return t, nil
		}
	}
	t.submitted = false

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value and moves the cursor to the end.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
	t.submitted = false
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
