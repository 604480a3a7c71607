package cli

import (
	"fmt"

	"github.com/amarkin/studybot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskSkipCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "add <subject> <title...>",
		Short: "Add a task for a subject",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := app.Planner.AddTask(cmd.Context(), args[0], joinArgs(args[1:]), due)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(reply))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&due), "due", "optional due date (YYYY-MM-DD)")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.ListTasks()))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := app.Planner.CompleteTask(cmd.Context(), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(reply))
			return nil
		},
	}
}

func newTaskSkipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skip <id>",
		Short: "Skip a task (costs points)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := app.Planner.SkipTask(cmd.Context(), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(reply))
			return nil
		},
	}
}
