package intent

import (
	"testing"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_AddWithHours(t *testing.T) {
	cases := []struct {
		input string
		name  string
		hours float64
	}{
		{"add Math 5 hours", "Math", 5},
		{"Add Linear Algebra 4", "Linear Algebra", 4},
		{"ADD physics 2.5 hrs per week", "physics", 2.5},
		{"please add Chemistry 3", "Chemistry", 3},
		{"add subject History 6", "History", 6},
		{"add topic Organic Chem 1.5", "Organic Chem", 1.5},
	}
	for _, c := range cases {
		it := Interpret(c.input)
		require.Equal(t, KindAddSubject, it.Kind, "input %q", c.input)
		assert.Equal(t, c.name, it.Name, "input %q", c.input)
		assert.Equal(t, c.hours, it.Hours, "input %q", c.input)
	}
}

func TestInterpret_AddWithoutHours(t *testing.T) {
	it := Interpret("add Linear Algebra")
	require.Equal(t, KindAddSubject, it.Kind)
	assert.Equal(t, "Linear Algebra", it.Name, "whole remainder becomes the name")
	assert.Equal(t, DefaultSubjectHours, it.Hours)
}

func TestInterpret_AddZeroHoursDefaults(t *testing.T) {
	it := Interpret("add Math 0")
	require.Equal(t, KindAddSubject, it.Kind)
	assert.Equal(t, DefaultSubjectHours, it.Hours)
}

func TestInterpret_AddEmptyNameFallsThrough(t *testing.T) {
	assert.Equal(t, KindUnrecognized, Interpret("add subject").Kind)
	assert.Equal(t, KindUnrecognized, Interpret("add").Kind)
}

func TestInterpret_AddInfersSubjectType(t *testing.T) {
	cases := []struct {
		input string
		typ   domain.SubjectType
	}{
		{"add DSA 5", domain.SubjectCoding},
		{"add interview prep 4", domain.SubjectCoding},
		{"add debugging drills 2", domain.SubjectCoding},
		{"add college math 3", domain.SubjectCollege},
		{"add circuit theory 3", domain.SubjectCollege},
		{"add French 2", domain.SubjectGeneral},
	}
	for _, c := range cases {
		it := Interpret(c.input)
		require.Equal(t, KindAddSubject, it.Kind, "input %q", c.input)
		assert.Equal(t, c.typ, it.SubjectType, "input %q", c.input)
	}
}

func TestInterpret_Task(t *testing.T) {
	it := Interpret("task Math finish chapter 3 exercises due 2025-04-01")
	require.Equal(t, KindAddTask, it.Kind)
	assert.Equal(t, "Math", it.Subject)
	assert.Equal(t, "finish chapter 3 exercises", it.Title)
	assert.Equal(t, "2025-04-01", it.DueDate)
}

func TestInterpret_TaskWithoutDue(t *testing.T) {
	it := Interpret("TASK physics revise kinematics")
	require.Equal(t, KindAddTask, it.Kind)
	assert.Equal(t, "physics", it.Subject)
	assert.Equal(t, "revise kinematics", it.Title)
	assert.Empty(t, it.DueDate)
}

func TestInterpret_DoneAndSkip(t *testing.T) {
	it := Interpret("done a1b2c3")
	require.Equal(t, KindCompleteTask, it.Kind)
	assert.Equal(t, "a1b2c3", it.TaskID)

	it = Interpret("skip a1b2c3")
	require.Equal(t, KindSkipTask, it.Kind)
	assert.Equal(t, "a1b2c3", it.TaskID)
}

func TestInterpret_Revision(t *testing.T) {
	it := Interpret("revision plan e1f2a3")
	require.Equal(t, KindRevisionPlan, it.Kind)
	assert.Equal(t, "e1f2a3", it.ExamID)

	it = Interpret("revision e1f2a3")
	require.Equal(t, KindRevisionPlan, it.Kind)
	assert.Equal(t, "e1f2a3", it.ExamID)
}

func TestInterpret_Exam(t *testing.T) {
	it := Interpret("exam Final Midterm Math 2025-06-01 chapters 1-5, intro")
	require.Equal(t, KindAddExam, it.Kind)
	assert.Equal(t, "Final Midterm", it.ExamName, "exam name may contain spaces")
	assert.Equal(t, "Math", it.Subject)
	assert.Equal(t, "2025-06-01", it.ExamDate)
	assert.Equal(t, "1-5, intro", it.Chapters)
}

func TestInterpret_ExamWithoutChapters(t *testing.T) {
	it := Interpret("exam Midterm Physics 2025-05-10")
	require.Equal(t, KindAddExam, it.Kind)
	assert.Equal(t, "Midterm", it.ExamName)
	assert.Empty(t, it.Chapters)
}

func TestInterpret_ExamRejectsLooseDate(t *testing.T) {
	assert.NotEqual(t, KindAddExam, Interpret("exam Midterm Physics 10-05-2025").Kind)
}

func TestInterpret_Listings(t *testing.T) {
	assert.Equal(t, KindListSubjects, Interpret("list subjects").Kind)
	assert.Equal(t, KindListSubjects, Interpret("show my subjects please").Kind)
	assert.Equal(t, KindListTasks, Interpret("list tasks").Kind)
	assert.Equal(t, KindListTasks, Interpret("show all my tasks").Kind)
	assert.Equal(t, KindListExams, Interpret("list exams").Kind)
	assert.Equal(t, KindListExams, Interpret("upcoming exams").Kind)
}

func TestInterpret_Stats(t *testing.T) {
	for _, in := range []string{"stats", "what level am I", "show points", "my streak"} {
		assert.Equal(t, KindStats, Interpret(in).Kind, "input %q", in)
	}
}

func TestInterpret_Schedules(t *testing.T) {
	assert.Equal(t, KindWeekly, Interpret("weekly schedule").Kind, "weekly wins over schedule")
	assert.Equal(t, KindWeekly, Interpret("plan for this week").Kind)
	assert.Equal(t, KindDaily, Interpret("schedule").Kind)
	assert.Equal(t, KindDaily, Interpret("daily plan").Kind)
	assert.Equal(t, KindDaily, Interpret("today's plan").Kind)
}

func TestInterpret_ClearAndGreeting(t *testing.T) {
	assert.Equal(t, KindClear, Interpret("clear").Kind)
	assert.Equal(t, KindClear, Interpret("reset everything").Kind)
	assert.Equal(t, KindGreeting, Interpret("hello").Kind)
	assert.Equal(t, KindGreeting, Interpret("help").Kind)
}

func TestInterpret_Unrecognized(t *testing.T) {
	assert.Equal(t, KindUnrecognized, Interpret("launch missiles").Kind)
	assert.Equal(t, KindUnrecognized, Interpret("").Kind)
}

func TestInterpret_OrderingShadowsLaterRules(t *testing.T) {
	// "add" wins over the listing containment rules even when listing words
	// appear later in the message.
	it := Interpret("add Task Planning 3")
	require.Equal(t, KindAddSubject, it.Kind)
	assert.Equal(t, "Task Planning", it.Name)
}
