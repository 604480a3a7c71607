// Package intent maps free-text chat input to a structured command.
//
// Matching is an explicit ordered rule table: every rule either claims the
// input and constructs an Intent or passes, and the first match wins. The
// table order is load-bearing: later rules are shadowed by earlier ones.
package intent

import "github.com/amarkin/studybot/internal/domain"

type Kind string

const (
	KindAddSubject   Kind = "add_subject"
	KindAddTask      Kind = "add_task"
	KindCompleteTask Kind = "complete_task"
	KindSkipTask     Kind = "skip_task"
	KindAddExam      Kind = "add_exam"
	KindRevisionPlan Kind = "revision_plan"
	KindListSubjects Kind = "list_subjects"
	KindListTasks    Kind = "list_tasks"
	KindListExams    Kind = "list_exams"
	KindStats        Kind = "stats"
	KindWeekly       Kind = "weekly_schedule"
	KindDaily        Kind = "daily_schedule"
	KindClear        Kind = "clear"
	KindGreeting     Kind = "greeting"
	KindUnrecognized Kind = "unrecognized"
)

// Intent is the tagged result of interpreting one chat message. Kind selects
// the variant; only the fields belonging to that variant are populated.
type Intent struct {
	Kind Kind

	// KindAddSubject
	Name        string
	Hours       float64
	SubjectType domain.SubjectType

	// KindAddTask / KindAddExam
	Subject string
	Title   string
	DueDate string

	// KindCompleteTask / KindSkipTask
	TaskID string

	// KindRevisionPlan
	ExamID string

	// KindAddExam
	ExamName string
	ExamDate string
	Chapters string
}
