package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/romanpravda/scormpack/internal/tui"
)

// Option represents a selectable option in the selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

// Selector is one step of a wizard: a titled list with a cursor. It never
// quits the program; the owning wizard handles quit and back keys.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	selected  int
	submitted bool
	keys      tui.KeyMap
}

// NewSelector creates a selector with the cursor on the first option.
func NewSelector(title string, options []Option) Selector {
	return Selector{
		title:    title,
		options:  options,
		selected: -1,
		keys:     tui.DefaultKeyMap(),
	}
}

// Reset clears a previous selection and keeps the cursor.
func (s Selector) Reset() Selector {
	s.selected = -1
	s.submitted = false
	return s
}

// Update moves the cursor or submits the highlighted option.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keys.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keys.Select):
		if len(s.options) > 0 {
			s.selected = s.cursor
			s.submitted = true
		}
	}
	return s, nil
}

// View renders the title and one line per option, plus its description.
func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		line := tui.UnselectedStyle.Render("  " + tui.SymbolUnselected + " " + opt.Label)
		if i == s.cursor {
			line = tui.SelectedStyle.Render(tui.SymbolSelected + " " + opt.Label)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if opt.Description != "" {
			b.WriteString(tui.DescriptionStyle.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SelectedOption returns the submitted option, or nil if none.
func (s Selector) SelectedOption() *Option {
	if s.selected >= 0 && s.selected < len(s.options) {
		return &s.options[s.selected]
	}
	return nil
}

// Submitted returns true if the user made a selection.
func (s Selector) Submitted() bool {
	return s.submitted
}

// Value returns the value of the submitted option.
func (s Selector) Value() string {
	if opt := s.SelectedOption(); opt != nil {
		return opt.Value
	}
	return ""
}
