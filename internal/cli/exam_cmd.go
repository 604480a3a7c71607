package cli

import (
	"fmt"

	"github.com/amarkin/studybot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Track exams",
	}
	cmd.AddCommand(
		newExamAddCmd(app),
		newExamListCmd(app),
	)
	return cmd
}

func newExamAddCmd(app *App) *cobra.Command {
	var (
		date     string
		chapters string
		weight   string
	)

	cmd := &cobra.Command{
		Use:   "add <subject> <name...>",
		Short: "Add an exam",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return fmt.Errorf("--date is required")
			}
			reply := app.Planner.AddExam(cmd.Context(), joinArgs(args[1:]), args[0], date, chapters, weight)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(reply))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&date), "date", "exam date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&chapters, "chapters", "", `chapter spec, e.g. "1-5" or "intro, 2, 3"`)
	cmd.Flags().StringVar(&weight, "weight", "", "optional weight label, e.g. 40%")
	return cmd
}

func newExamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exams",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.ListExams()))
			return nil
		},
	}
}

func newRevisionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revision <exam-id>",
		Short: "Spread an exam's chapters over the days left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.RevisionPlan(args[0])))
			return nil
		},
	}
}
