package cli

import (
	"github.com/amarkin/studybot/internal/planner"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need.
type App struct {
	Planner *planner.Planner

	// IsInteractive reports whether stdin is a terminal; wired from main.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studybot" command and registers all
// subcommands against the provided App. Run with no arguments on a terminal
// it drops into the chat shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studybot",
		Short: "Conversational study planner with tasks, exams and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChatShell(app)
			}
			return runChatPipe(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newSubjectCmd(app),
		newTaskCmd(app),
		newExamCmd(app),
		newRevisionCmd(app),
		newStatsCmd(app),
		newScheduleCmd(app),
		newWeeklyCmd(app),
		newClearCmd(app),
		newExportCmd(app),
	)

	return root
}
