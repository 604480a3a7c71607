package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amarkin/studybot/internal/db"
	"github.com/amarkin/studybot/internal/planner"
	"github.com/amarkin/studybot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	p, err := planner.Load(context.Background(), store.NewSQLitePlanStore(conn))
	require.NoError(t, err)
	p.WithClock(func() time.Time {
		return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	})

	return &App{
		Planner:       p,
		IsInteractive: func() bool { return false },
	}
}

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestSubjectAddAndList(t *testing.T) {
	app := newTestApp(t)

	out := execute(t, app, "subject", "add", "Linear", "Algebra", "--hours", "5", "--priority", "2")
	assert.Contains(t, out, "Added subject")
	assert.Contains(t, out, "Linear Algebra")

	out = execute(t, app, "subject", "list")
	assert.Contains(t, out, "Linear Algebra")
	assert.Contains(t, out, "priority 2")
}

func TestSubjectAdd_RequiresNameWhenNotInteractive(t *testing.T) {
	app := newTestApp(t)

	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"subject", "add"})
	assert.Error(t, root.Execute())
}

func TestTaskLifecycle(t *testing.T) {
	app := newTestApp(t)

	out := execute(t, app, "task", "add", "Math", "finish", "chapter", "3", "--due", "2025-04-01")
	assert.Contains(t, out, "Added task")

	id := app.Planner.State().Tasks[0].ID

	out = execute(t, app, "task", "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "due 2025-04-01")

	out = execute(t, app, "task", "done", id)
	assert.Contains(t, out, "+10 pts")

	out = execute(t, app, "stats")
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "10 pts")
}

func TestTaskAdd_RejectsBadDueDate(t *testing.T) {
	app := newTestApp(t)

	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"task", "add", "Math", "drills", "--due", "tomorrow"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestExamAddAndRevision(t *testing.T) {
	app := newTestApp(t)

	out := execute(t, app, "exam", "add", "Math", "Midterm", "--date", "2025-03-18", "--chapters", "1-5")
	assert.Contains(t, out, "Added exam")

	id := app.Planner.State().Exams[0].ID
	out = execute(t, app, "revision", id)
	assert.Contains(t, out, "Day 1 (2025-03-16): chapters 1, 2")
}

func TestAskCommand(t *testing.T) {
	app := newTestApp(t)

	out := execute(t, app, "ask", "add", "Math", "5", "hours")
	assert.Contains(t, out, "Added subject")
}

func TestChatPipe(t *testing.T) {
	app := newTestApp(t)

	in := strings.NewReader("add Math 5 hours\nlist subjects\n")
	var out bytes.Buffer
	require.NoError(t, runChatPipe(app, in, &out))

	assert.Contains(t, out.String(), "Added subject: Math")
	assert.Contains(t, out.String(), "Your subjects:")
}

func TestScheduleCommand(t *testing.T) {
	app := newTestApp(t)

	execute(t, app, "subject", "add", "A", "--hours", "6")
	execute(t, app, "subject", "add", "B", "--hours", "2", "--priority", "2")

	out := execute(t, app, "schedule", "--hours", "4")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "180 min")

	out = execute(t, app, "weekly")
	assert.Contains(t, out, "Sat-Sun: revision")
}

func TestClearCommand(t *testing.T) {
	app := newTestApp(t)

	execute(t, app, "subject", "add", "Math", "--hours", "5")
	out := execute(t, app, "clear")
	assert.Contains(t, out, "cleared")

	out = execute(t, app, "subject", "list")
	assert.Contains(t, out, "No subjects added yet")
}
