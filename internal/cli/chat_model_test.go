package cli

import (
	"testing"

	"github.com/amarkin/studybot/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatModel_SubmitMutatesPlan(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newChatModel(app))

	d.Type("add Math 5 hours")
	d.PressEnter()

	subjects := app.Planner.State().Subjects
	require.Len(t, subjects, 1)
	assert.Equal(t, "Math", subjects[0].Name)
	assert.Equal(t, 5.0, subjects[0].HoursPerWeek)
}

func TestChatModel_EmptyLineIgnored(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newChatModel(app))

	d.PressEnter()

	assert.Empty(t, app.Planner.State().Subjects)
	m := d.Model.(chatModel)
	assert.False(t, m.quitting)
}

func TestChatModel_HistoryRecall(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newChatModel(app))

	d.Type("list subjects")
	d.PressEnter()
	d.PressUp()

	m := d.Model.(chatModel)
	assert.Equal(t, "list subjects", m.input.Value())
}

func TestChatModel_ExitQuits(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newChatModel(app))

	d.Type("exit")
	d.PressEnter()

	m := d.Model.(chatModel)
	assert.True(t, m.quitting)
	assert.Empty(t, d.View(), "view collapses once quitting")
}

func TestChatModel_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newChatModel(app))

	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, d.Quitting)
}
