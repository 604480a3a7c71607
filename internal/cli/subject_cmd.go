package cli

import (
	"fmt"
	"strconv"

	"github.com/amarkin/studybot/internal/cli/formatter"
	"github.com/amarkin/studybot/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}
	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
	)
	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var (
		hours    float64
		priority int
		deadline string
		subType  string
	)

	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Add or update a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := domain.Subject{
				Name:         joinArgs(args),
				HoursPerWeek: hours,
				Priority:     domain.Priority(priority),
				Deadline:     deadline,
				Type:         domain.SubjectType(subType),
			}

			// Without a name on a terminal, collect the subject via a form.
			if s.Name == "" {
				if !app.interactive() {
					return fmt.Errorf("subject name is required")
				}
				var err error
				s, err = runSubjectForm(s)
				if err != nil {
					return err
				}
			}

			reply := app.Planner.AddSubject(cmd.Context(), s)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(reply))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "weekly hour target (0 uses the default)")
	cmd.Flags().IntVar(&priority, "priority", 1, "priority: 1=high, 2=medium, 3=low")
	cmd.Flags().Var(newDateValue(&deadline), "deadline", "optional deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&subType, "type", "", "subject type: coding, college or general")
	return cmd
}

// runSubjectForm collects a subject interactively.
func runSubjectForm(s domain.Subject) (domain.Subject, error) {
	hoursStr := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject name").
				Placeholder("Linear Algebra").
				Value(&s.Name).
				Validate(func(v string) error {
					if v == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Hours per week (blank for default)").
				Placeholder("5").
				Value(&hoursStr).
				Validate(validateOptionalFloat),
			huh.NewSelect[domain.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("High", domain.PriorityHigh),
					huh.NewOption("Medium", domain.PriorityMedium),
					huh.NewOption("Low", domain.PriorityLow),
				).
				Value(&s.Priority),
			huh.NewSelect[domain.SubjectType]().
				Title("Subject type").
				Options(
					huh.NewOption("General", domain.SubjectGeneral),
					huh.NewOption("Coding", domain.SubjectCoding),
					huh.NewOption("College", domain.SubjectCollege),
				).
				Value(&s.Type),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, blank for none)").
				Placeholder("2025-06-30").
				Value(&s.Deadline).
				Validate(validateOptionalDate),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return s, err
	}
	if hoursStr != "" {
		s.HoursPerWeek, _ = strconv.ParseFloat(hoursStr, 64)
	}
	return s, nil
}

func validateOptionalFloat(v string) error {
	if v == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateOptionalDate(v string) error {
	if v == "" {
		return nil
	}
	var d string
	return newDateValue(&d).Set(v)
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(app.Planner.ListSubjects()))
			return nil
		},
	}
}
