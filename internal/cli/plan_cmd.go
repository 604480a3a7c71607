package cli

import (
	"fmt"

	"github.com/amarkin/studybot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show points, level and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.StatsText()))
			return nil
		},
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Suggest a daily schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.DailySchedule(hours)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "study hours for the day (0 uses the adaptive target)")
	return cmd
}

func newWeeklyCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Suggest a weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.WeeklySchedule(hours)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "study hours per day (0 uses the adaptive target)")
	return cmd
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Erase the whole plan (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.Clear(cmd.Context())))
			return nil
		},
	}
}
