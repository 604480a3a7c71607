package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/amarkin/studybot/internal/scheduler"
)

// AddExam records an exam. Exams are immutable after creation; there is no
// edit command.
func (p *Planner) AddExam(ctx context.Context, name, subject, date, chapters, weight string) string {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	if name == "" || subject == "" || date == "" {
		return "An exam needs a name, subject and date. Try: *exam Midterm Math 2025-06-01 chapters 1-5*"
	}

	e := domain.Exam{
		ID:       p.newShortID(),
		Name:     name,
		Subject:  subject,
		Date:     date,
		Chapters: strings.TrimSpace(chapters),
		Weight:   strings.TrimSpace(weight),
	}
	p.state.Exams = append(p.state.Exams, e)

	warn := p.save(ctx)
	left := ""
	if days, ok := e.DaysLeft(p.now()); ok {
		left = fmt.Sprintf(" — %d days left", days)
	}
	return fmt.Sprintf("Added exam `%s`: **%s** (%s) on %s%s%s", e.ID, e.Name, e.Subject, e.Date, left, warn)
}

// ListExams renders every exam with id, date, days left and chapters.
func (p *Planner) ListExams() string {
	if len(p.state.Exams) == 0 {
		return "No exams yet. Add one with: *exam Midterm Math 2025-06-01 chapters 1-5*"
	}
	var b strings.Builder
	b.WriteString("**Your exams:**")
	for _, e := range p.state.Exams {
		left := "date unknown"
		if days, ok := e.DaysLeft(p.now()); ok {
			switch {
			case days > 0:
				left = fmt.Sprintf("%d days left", days)
			case days == 0:
				left = "today!"
			default:
				left = "passed"
			}
		}
		chapters := ""
		if e.Chapters != "" {
			chapters = ", chapters " + e.Chapters
		}
		fmt.Fprintf(&b, "\n`%s` **%s** (%s) — %s, %s%s", e.ID, e.Name, e.Subject, e.Date, left, chapters)
	}
	return b.String()
}

// RevisionPlan spreads an exam's chapters across the days remaining before
// the exam. Read-only: nothing is persisted.
func (p *Planner) RevisionPlan(examID string) string {
	e := p.state.FindExam(examID)
	if e == nil {
		return fmt.Sprintf("Exam `%s` not found. Say *list exams* to see exam IDs.", examID)
	}

	daysLeft, ok := e.DaysLeft(p.now())
	if !ok || daysLeft <= 0 {
		return fmt.Sprintf("**%s** has passed or has an invalid date — no revision plan to make.", e.Name)
	}
	items := scheduler.ParseChapterSpec(e.Chapters)
	if len(items) == 0 {
		return fmt.Sprintf("**%s** has no chapters recorded, so there's nothing to spread out.", e.Name)
	}

	days := scheduler.SpreadChapters(items, daysLeft)
	var b strings.Builder
	fmt.Fprintf(&b, "**Revision plan for %s** (%d days left):", e.Name, daysLeft)
	for i, bucket := range days {
		date := p.now().AddDate(0, 0, i+1)
		fmt.Fprintf(&b, "\nDay %d (%s): chapters %s", i+1, domain.FormatDay(date), strings.Join(bucket, ", "))
	}
	return b.String()
}
