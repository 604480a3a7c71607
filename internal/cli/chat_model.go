package cli

import (
	"context"
	"strings"

	"github.com/amarkin/studybot/internal/cli/formatter"
	"github.com/amarkin/studybot/internal/planner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatModel is the bubbletea Model for the chat REPL. Replies scroll into
// native terminal scrollback via tea.Println; the input line stays at the
// bottom.
type chatModel struct {
	input textinput.Model
	app   *App
	width int

	history    []string
	historyIdx int

	quitting bool
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Add a subject, ask for a schedule, or say 'list'..."
	ti.CharLimit = 500

	return chatModel{input: ti, app: app}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.RenderMarkup(planner.Greeting())),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.promptPrefix()) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			if m.historyIdx > 0 {
				m.historyIdx--
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIdx < len(m.history)-1 {
				m.historyIdx++
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			} else {
				m.historyIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil

		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	if line == "exit" || line == "quit" || line == "bye" {
		m.quitting = true
		return m, tea.Sequence(
			tea.Println(formatter.Dim("Good luck with your studies!")),
			tea.Quit,
		)
	}

	m.history = append(m.history, line)
	m.historyIdx = len(m.history)

	reply := m.app.Planner.Respond(context.Background(), line)
	return m, tea.Sequence(
		tea.Println(m.promptPrefix()+formatter.StyleFg.Render(line)),
		tea.Println(formatter.RenderMarkup(reply)+"\n"),
	)
}

func (m chatModel) promptPrefix() string {
	return formatter.StyleHeader.Render("you") + formatter.Dim(" > ")
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	return m.promptPrefix() + m.input.View()
}
