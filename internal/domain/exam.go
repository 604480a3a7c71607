package domain

import "time"

// Exam is an upcoming exam. Immutable after creation: there is no edit
// command, only add and list.
type Exam struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Date     string `json:"exam_date"`
	Weight   string `json:"weight,omitempty"`
	Chapters string `json:"chapters,omitempty"`
}

// DaysLeft returns the number of whole days until the exam date, counted
// from today. A malformed date reports ok=false and the exam is treated as
// passed/invalid by callers.
func (e *Exam) DaysLeft(today time.Time) (int, bool) {
	d, ok := ParseDay(e.Date)
	if !ok {
		return 0, false
	}
	return DaysBetween(today, d), true
}
