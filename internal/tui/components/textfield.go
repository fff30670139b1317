package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/romanpravda/scormpack/internal/tui"
)

// TitleCharLimit bounds what can be typed into a text field.
const TitleCharLimit = 200

// ErrFieldRequired is returned when a required field is empty.
var ErrFieldRequired = errors.New("this field is required")

// TextField is a labeled single-line input.
type TextField struct {
	label    string
	input    textinput.Model
	focused  bool
	required bool
	err      error
}

// NewTextField creates a text field showing placeholder while empty.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = TitleCharLimit
	ti.Width = 46

	return TextField{label: label, input: ti}
}

// WithRequired marks the field as required.
func (t TextField) WithRequired(required bool) TextField {
	t.required = required
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// Init implements tea.Model.
func (t TextField) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the input. Typing clears a previous error.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		t.err = nil
	}
	return t, cmd
}

// View renders the label, the input and the last validation error.
func (t TextField) View() string {
	var b strings.Builder

	label := t.label
	if t.required {
		label += tui.ErrorStyle.Render(" *")
	}
	b.WriteString(tui.LabelStyle.Render(label))
	b.WriteString("\n")

	style := tui.InputStyle
	if t.focused {
		style = tui.FocusedInputStyle
	}
	b.WriteString(style.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(t.err.Error()))
	}

	return b.String()
}

// Value returns the current value with surrounding whitespace removed.
func (t TextField) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// Validate records and returns ErrFieldRequired for an empty required field.
func (t *TextField) Validate() error {
	t.err = nil
	if t.required && t.Value() == "" {
		t.err = ErrFieldRequired
	}
	return t.err
}
