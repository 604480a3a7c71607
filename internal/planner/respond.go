package planner

import (
	"context"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/amarkin/studybot/internal/intent"
)

// Respond handles one chat turn: interpret the message, invoke the matching
// operation, return the reply. Schedules requested through chat use the
// adaptive hour target.
func (p *Planner) Respond(ctx context.Context, raw string) string {
	it := intent.Interpret(raw)

	switch it.Kind {
	case intent.KindAddSubject:
		return p.AddSubject(ctx, domain.Subject{
			Name:         it.Name,
			HoursPerWeek: it.Hours,
			Priority:     domain.PriorityHigh,
			Type:         it.SubjectType,
		})
	case intent.KindAddTask:
		return p.AddTask(ctx, it.Subject, it.Title, it.DueDate)
	case intent.KindCompleteTask:
		return p.CompleteTask(ctx, it.TaskID)
	case intent.KindSkipTask:
		return p.SkipTask(ctx, it.TaskID)
	case intent.KindAddExam:
		return p.AddExam(ctx, it.ExamName, it.Subject, it.ExamDate, it.Chapters, "")
	case intent.KindRevisionPlan:
		return p.RevisionPlan(it.ExamID)
	case intent.KindListSubjects:
		return p.ListSubjects()
	case intent.KindListTasks:
		return p.ListTasks()
	case intent.KindListExams:
		return p.ListExams()
	case intent.KindStats:
		return p.StatsText()
	case intent.KindWeekly:
		return p.WeeklySchedule(0)
	case intent.KindDaily:
		return p.DailySchedule(0)
	case intent.KindClear:
		return p.Clear(ctx)
	case intent.KindGreeting:
		return Greeting()
	default:
		return UnrecognizedReply()
	}
}
