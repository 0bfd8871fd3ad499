package commands

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendKey(t *testing.T, m tea.Model, key tea.KeyMsg) (picker, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	p, ok := next.(picker)
	require.True(t, ok)
	return p, cmd
}

func TestPicker_EnterChoosesHighlighted(t *testing.T) {
	p := newPicker("Countries", []string{"Chad", "Norland", "Zambia"})

	p, _ = sendKey(t, p, tea.KeyMsg{Type: tea.KeyDown})
	p, cmd := sendKey(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Norland", p.choice)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPicker_EscapeCancels(t *testing.T) {
	p := newPicker("Countries", []string{"Chad"})

	p, cmd := sendKey(t, p, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, p.choice)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPicker_Resize(t *testing.T) {
	p := newPicker("Queries", []string{"a", "b"})

	next, cmd := p.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, next.(picker).list.Width())
	assert.Contains(t, next.View(), "Queries")
}
