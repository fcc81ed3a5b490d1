package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/termcommander/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a validation message.
type TextInput struct {
	Model textinput.Model
	// Validate returns a message to show when the value is rejected.
	Validate func(string) string
	problem  string
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, validate func(string) string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	return TextInput{Model: ti, Validate: validate}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typing clears a previous validation message.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.problem = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Submit validates the current value and reports whether it was accepted.
func (t *TextInput) Submit() bool {
	if t.Validate == nil {
		return true
	}
	t.problem = t.Validate(t.Model.Value())
	return t.problem == ""
}

// Problem is the current validation message, if any.
func (t TextInput) Problem() string {
	return t.problem
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.problem != "" {
		view += "\n" + theme.Incorrect.Render("✗ "+t.problem)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Required returns a validator rejecting blank input with msg.
func Required(msg string) func(string) string {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}
