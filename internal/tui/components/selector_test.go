package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func options() []Option {
	return []Option{
		{Label: "SCORM 1.2", Value: "1.2"},
		{Label: "SCORM 2004 3rd Edition", Value: "2004.3", Description: "2004.3"},
		{Label: "SCORM 2004 4th Edition", Value: "2004.4"},
	}
}

func send(s Selector, msgs ...tea.KeyMsg) (Selector, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		s, cmd = s.Update(msg)
	}
	return s, cmd
}

func TestSelector_SelectMovesWithinBounds(t *testing.T) {
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	s, cmd := send(NewSelector("Version", options()), up, down, down, down, enter)
	assert.Nil(t, cmd, "selector never quits the program")
	assert.True(t, s.Submitted())
	assert.Equal(t, "2004.4", s.Value())
}

func TestSelector_QuitKeysAreIgnored(t *testing.T) {
	s, cmd := send(NewSelector("Version", options()),
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")},
	)
	assert.Nil(t, cmd)
	assert.False(t, s.Submitted())
	assert.Nil(t, s.SelectedOption())
	assert.Empty(t, s.Value())
}

func TestSelector_EmptyOptions(t *testing.T) {
	s, _ := send(NewSelector("Template", nil), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, s.Submitted())
	assert.Nil(t, s.SelectedOption())
}

func TestSelector_Reset(t *testing.T) {
	s, _ := send(NewSelector("Version", options()), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	s = s.Reset()
	assert.False(t, s.Submitted())
	assert.Nil(t, s.SelectedOption())

	s, _ = send(s, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "2004.3", s.Value(), "cursor survives reset")
}

func TestSelector_View(t *testing.T) {
	view := NewSelector("Version", options()).View()
	assert.Contains(t, view, "SCORM 1.2")
	assert.Contains(t, view, "2004.3")
	assert.Contains(t, view, "●")
}
