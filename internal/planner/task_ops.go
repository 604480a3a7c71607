package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/amarkin/studybot/internal/gamification"
)

// AddTask records a task against a subject name. The subject reference is
// free text, not an enforced foreign key.
func (p *Planner) AddTask(ctx context.Context, subject, title, dueDate string) string {
	subject = strings.TrimSpace(subject)
	title = strings.TrimSpace(title)
	if subject == "" || title == "" {
		return "A task needs a subject and a title. Try: *task Math finish chapter 3 due 2025-04-01*"
	}

	t := domain.Task{
		ID:        p.newShortID(),
		Subject:   subject,
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: p.today(),
	}
	p.state.Tasks = append(p.state.Tasks, t)

	warn := p.save(ctx)
	due := ""
	if t.DueDate != "" {
		due = ", due " + t.DueDate
	}
	return fmt.Sprintf("Added task `%s` for **%s**: %s%s%s", t.ID, t.Subject, t.Title, due, warn)
}

// CompleteTask marks a task done, scores it, and logs the event. Terminal
// states are respected: a done task stays done and a skipped task cannot be
// completed.
func (p *Planner) CompleteTask(ctx context.Context, id string) string {
	t := p.state.FindTask(id)
	if t == nil {
		return fmt.Sprintf("Task `%s` not found. Say *list tasks* to see your task IDs.", id)
	}
	if t.Done {
		return fmt.Sprintf("Task **%s** is already done.", t.Title)
	}
	if t.Skipped {
		return fmt.Sprintf("Task **%s** was skipped earlier and can't be completed.", t.Title)
	}

	t.Done = true
	t.CompletedAt = p.today()
	res := gamification.ApplyCompletion(&p.state.Stats, p.now())
	p.state.AppendLog(domain.BehaviorLogEntry{
		Date:   p.today(),
		TaskID: t.ID,
		Action: domain.ActionDone,
		Title:  t.Title,
	})

	warn := p.save(ctx)
	award := ""
	if res.PointsAwarded > 0 {
		award = fmt.Sprintf(" +%d pts", res.PointsAwarded)
		if res.StreakBonus > 0 {
			award += fmt.Sprintf(" (streak bonus +%d)", res.StreakBonus)
		}
	}
	return fmt.Sprintf("Nice! Completed **%s**.%s\n%s%s", t.Title, award, p.statsLine(), warn)
}

// SkipTask marks a task skipped and applies the penalty. Done tasks ignore
// skip.
func (p *Planner) SkipTask(ctx context.Context, id string) string {
	t := p.state.FindTask(id)
	if t == nil {
		return fmt.Sprintf("Task `%s` not found. Say *list tasks* to see your task IDs.", id)
	}
	if t.Done {
		return fmt.Sprintf("Task **%s** is already done — nothing to skip.", t.Title)
	}
	if t.Skipped {
		return fmt.Sprintf("Task **%s** is already skipped.", t.Title)
	}

	t.Skipped = true
	penalty := gamification.ApplySkip(&p.state.Stats)
	p.state.AppendLog(domain.BehaviorLogEntry{
		Date:   p.today(),
		TaskID: t.ID,
		Action: domain.ActionSkip,
		Title:  t.Title,
	})

	warn := p.save(ctx)
	return fmt.Sprintf("Skipped **%s**. -%d pts.\n%s%s", t.Title, penalty, p.statsLine(), warn)
}

// ListTasks renders every task with its id, status marker and due date.
func (p *Planner) ListTasks() string {
	if len(p.state.Tasks) == 0 {
		return "No tasks yet. Add one with: *task Math finish chapter 3*"
	}
	var b strings.Builder
	b.WriteString("**Your tasks:**")
	for _, t := range p.state.Tasks {
		due := ""
		if t.DueDate != "" {
			due = ", due " + t.DueDate
		}
		fmt.Fprintf(&b, "\n[%s] `%s` **%s** — %s%s", t.StatusMark(), t.ID, t.Subject, t.Title, due)
	}
	return b.String()
}
