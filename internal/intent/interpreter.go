package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amarkin/studybot/internal/domain"
)

// DefaultSubjectHours is substituted when an add command names no hours, or
// names exactly zero.
const DefaultSubjectHours = 2.0

// rule inspects the trimmed raw input and its lowercase form; ok reports
// whether the rule claims the input.
type rule func(raw, lower string) (Intent, bool)

// rules is evaluated top to bottom; first match wins.
var rules = []rule{
	matchAddSubject,
	matchAddTask,
	matchCompleteTask,
	matchSkipTask,
	matchRevisionPlan,
	matchAddExam,
	matchListSubjects,
	matchListTasks,
	matchListExams,
	matchStats,
	matchWeekly,
	matchDaily,
	matchClear,
	matchGreeting,
}

// Interpret maps one chat message to an Intent. It is a pure parse: no side
// effects, and unmatched input resolves to KindUnrecognized rather than an
// error.
func Interpret(raw string) Intent {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	for _, r := range rules {
		if it, ok := r(trimmed, lower); ok {
			return it
		}
	}
	return Intent{Kind: KindUnrecognized}
}

var fillerRe = regexp.MustCompile(`(?i)\b(subject|topic)\b`)

// matchAddSubject handles "add Math 5 hours", "please add Physics", "add dsa
// practice 6". The first numeric token becomes the weekly hours; everything
// before it is the subject name.
func matchAddSubject(raw, lower string) (Intent, bool) {
	var rest string
	switch {
	case strings.HasPrefix(lower, "add "):
		rest = raw[len("add "):]
	case strings.Contains(lower, " add "):
		rest = raw[strings.Index(lower, " add ")+len(" add "):]
	default:
		return Intent{}, false
	}

	rest = strings.TrimSpace(fillerRe.ReplaceAllString(rest, ""))
	if rest == "" {
		return Intent{}, false
	}

	parts := strings.Fields(rest)
	var nameParts []string
	hours := 0.0
	for _, p := range parts {
		if h, err := strconv.ParseFloat(p, 64); err == nil {
			hours = h
			break
		}
		nameParts = append(nameParts, p)
	}

	name := strings.Join(nameParts, " ")
	if name == "" {
		return Intent{}, false
	}
	if hours == 0 {
		hours = DefaultSubjectHours
	}

	return Intent{
		Kind:        KindAddSubject,
		Name:        name,
		Hours:       hours,
		SubjectType: inferSubjectType(nameParts),
	}, true
}

var (
	codingKeywords  = wordSet("coding", "code", "dsa", "programming", "algorithms", "interview", "debugging")
	collegeKeywords = wordSet("college", "theory", "numericals", "derivations")
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func inferSubjectType(tokens []string) domain.SubjectType {
	for _, tok := range tokens {
		switch t := strings.ToLower(tok); {
		case codingKeywords[t]:
			return domain.SubjectCoding
		case collegeKeywords[t]:
			return domain.SubjectCollege
		}
	}
	return domain.SubjectGeneral
}

var taskRe = regexp.MustCompile(`(?is)^task\s+(\S+)\s+(.+?)(?:\s+due\s+(\d{4}-\d{2}-\d{2})\s*)?$`)

func matchAddTask(raw, lower string) (Intent, bool) {
	m := taskRe.FindStringSubmatch(raw)
	if m == nil {
		return Intent{}, false
	}
	return Intent{
		Kind:    KindAddTask,
		Subject: m[1],
		Title:   strings.TrimSpace(m[2]),
		DueDate: m[3],
	}, true
}

var (
	doneRe = regexp.MustCompile(`(?i)^done\s+(\S+)`)
	skipRe = regexp.MustCompile(`(?i)^skip\s+(\S+)`)
)

func matchCompleteTask(raw, lower string) (Intent, bool) {
	m := doneRe.FindStringSubmatch(raw)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindCompleteTask, TaskID: m[1]}, true
}

func matchSkipTask(raw, lower string) (Intent, bool) {
	m := skipRe.FindStringSubmatch(raw)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindSkipTask, TaskID: m[1]}, true
}

var revisionRe = regexp.MustCompile(`(?i)^revision(?:\s+plan)?\s+(\S+)`)

func matchRevisionPlan(raw, lower string) (Intent, bool) {
	m := revisionRe.FindStringSubmatch(raw)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindRevisionPlan, ExamID: m[1]}, true
}

var examRe = regexp.MustCompile(`(?is)^exam\s+(.+?)\s+(\S+)\s+(\d{4}-\d{2}-\d{2})(?:\s+chapters\s+(.+?))?\s*$`)

func matchAddExam(raw, lower string) (Intent, bool) {
	m := examRe.FindStringSubmatch(raw)
	if m == nil {
		return Intent{}, false
	}
	return Intent{
		Kind:     KindAddExam,
		ExamName: strings.TrimSpace(m[1]),
		Subject:  m[2],
		ExamDate: m[3],
		Chapters: strings.TrimSpace(m[4]),
	}, true
}

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func matchListSubjects(raw, lower string) (Intent, bool) {
	if containsAny(lower, "list subjects", "show subjects", "my subjects", "subjects") {
		return Intent{Kind: KindListSubjects}, true
	}
	return Intent{}, false
}

func matchListTasks(raw, lower string) (Intent, bool) {
	if strings.Contains(lower, "task") &&
		containsAny(lower, "list", "show", "my", "all", "pending", "what") {
		return Intent{Kind: KindListTasks}, true
	}
	return Intent{}, false
}

func matchListExams(raw, lower string) (Intent, bool) {
	if containsAny(lower, "list exams", "show exams", "my exams", "upcoming exams", "exams") {
		return Intent{Kind: KindListExams}, true
	}
	return Intent{}, false
}

func matchStats(raw, lower string) (Intent, bool) {
	if containsAny(lower, "stats", "level", "points", "streak") {
		return Intent{Kind: KindStats}, true
	}
	return Intent{}, false
}

func matchWeekly(raw, lower string) (Intent, bool) {
	if containsAny(lower, "weekly", "week plan", "this week") {
		return Intent{Kind: KindWeekly}, true
	}
	return Intent{}, false
}

func matchDaily(raw, lower string) (Intent, bool) {
	if containsAny(lower, "schedule", "daily", "plan for today", "today's plan", "plan") {
		return Intent{Kind: KindDaily}, true
	}
	return Intent{}, false
}

func matchClear(raw, lower string) (Intent, bool) {
	if containsAny(lower, "clear", "reset") {
		return Intent{Kind: KindClear}, true
	}
	return Intent{}, false
}

func matchGreeting(raw, lower string) (Intent, bool) {
	if containsAny(lower, "hi", "hello", "hey", "help") {
		return Intent{Kind: KindGreeting}, true
	}
	return Intent{}, false
}
