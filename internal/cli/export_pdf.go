package cli

import (
	"fmt"
	"time"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/amarkin/studybot/internal/planner"
	"github.com/amarkin/studybot/internal/scheduler"
	"github.com/go-pdf/fpdf"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the weekly plan and stats as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("study_plan_%s.pdf", domain.FormatDay(time.Now()))
			}
			if err := writePlanPDF(app.Planner, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported plan to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default study_plan_<date>.pdf)")
	return cmd
}

// writePlanPDF renders subjects, the weekly split, open tasks, exams and the
// gamification summary into a one-page report.
func writePlanPDF(p *planner.Planner, path string) error {
	state := p.State()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Study Plan")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 9, "Weekly schedule")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	slots := scheduler.SuggestWeekly(state.Subjects)
	if len(slots) == 0 {
		pdf.Cell(0, 7, "No subjects yet.")
		pdf.Ln(7)
	}
	for _, s := range slots {
		line := fmt.Sprintf("%s: %.1fh/week (%d min/day, priority %d)",
			s.Subject.Name, s.Subject.HoursPerWeek, s.DailyMinutes, s.Subject.Priority)
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 7, scheduler.WeeklyGuidance)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 9, "Open tasks")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	open := 0
	for _, t := range state.Tasks {
		if !t.Open() {
			continue
		}
		open++
		line := fmt.Sprintf("[ ] %s - %s", t.Subject, t.Title)
		if t.DueDate != "" {
			line += " (due " + t.DueDate + ")"
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	if open == 0 {
		pdf.Cell(0, 7, "All caught up.")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(state.Exams) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, "Exams")
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 11)
		for _, e := range state.Exams {
			line := fmt.Sprintf("%s (%s) on %s", e.Name, e.Subject, e.Date)
			if e.Chapters != "" {
				line += ", chapters " + e.Chapters
			}
			pdf.Cell(0, 7, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	summary := fmt.Sprintf("Level %d  |  %d points  |  %d-day streak",
		state.Stats.Level(), state.Stats.TotalPoints, state.Stats.CurrentStreak)
	pdf.Cell(0, 10, summary)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF report: %w", err)
	}
	return nil
}
