package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/amarkin/studybot/internal/intent"
)

// AddSubject validates and stores a subject. Subject names are the unique
// key: adding an existing name updates the stored subject in place instead
// of duplicating it. Zero or negative hours normalize to the default target,
// matching the chat parser.
func (p *Planner) AddSubject(ctx context.Context, s domain.Subject) string {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return "A subject needs a name. Try: *add Math 5 hours*"
	}
	if s.HoursPerWeek <= 0 {
		s.HoursPerWeek = intent.DefaultSubjectHours
	}
	if s.Priority < domain.PriorityHigh || s.Priority > domain.PriorityLow {
		s.Priority = domain.PriorityHigh
	}
	if s.Type == "" {
		s.Type = domain.SubjectGeneral
	}

	verb := "Added"
	if existing := p.state.FindSubject(s.Name); existing != nil {
		*existing = s
		verb = "Updated"
	} else {
		p.state.Subjects = append(p.state.Subjects, s)
	}

	warn := p.save(ctx)
	return fmt.Sprintf("%s subject: **%s** (%s, target: %sh/week, priority: %d)%s",
		verb, s.Name, s.Type, trimFloat(s.HoursPerWeek), s.Priority, warn)
}

// ListSubjects renders the numbered subject list.
func (p *Planner) ListSubjects() string {
	if len(p.state.Subjects) == 0 {
		return "No subjects added yet. Say something like: *Add Math with 5 hours per week*"
	}
	var b strings.Builder
	b.WriteString("**Your subjects:**")
	for i, s := range p.state.Subjects {
		deadline := ""
		if s.Deadline != "" {
			deadline = ", deadline: " + s.Deadline
		}
		fmt.Fprintf(&b, "\n%d. **%s** — %sh/week, priority %d (%s)%s",
			i+1, s.Name, trimFloat(s.HoursPerWeek), s.Priority, s.Type, deadline)
	}
	return b.String()
}
