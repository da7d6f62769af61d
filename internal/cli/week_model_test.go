package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWeekModel_Navigation(t *testing.T) {
	app := testApp(t)
	anchor := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	m := newWeekModel(app, anchor)

	next, cmd := m.Update(keyMsg("l"))
	require.NotNil(t, cmd)
	moved := next.(weekModel)
	assert.True(t, moved.anchor.Equal(anchor.AddDate(0, 0, 7)))

	back, cmd := moved.Update(keyMsg("h"))
	require.NotNil(t, cmd)
	assert.True(t, back.(weekModel).anchor.Equal(anchor))
}

func TestWeekModel_QuitKey(t *testing.T) {
	app := testApp(t)
	m := newWeekModel(app, time.Now())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWeekModel_ViewAfterLoad(t *testing.T) {
	app := testApp(t)
	anchor := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	m := newWeekModel(app, anchor)

	msg := m.loadWeek()()
	loaded, ok := msg.(weekLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	next, _ := m.Update(loaded)
	out := next.(weekModel).View()
	assert.Contains(t, out, "WEEK OF MAR 2")
	assert.Contains(t, out, "Mon 03/02")
}
