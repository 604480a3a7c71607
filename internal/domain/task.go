package domain

// Task is a single study todo tied to a subject by name. Subject is a
// free-text reference, not an enforced foreign key.
//
// Done and Skipped are mutually exclusive terminal flags: a done task ignores
// skip, and a skipped task cannot be completed afterwards.
type Task struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	Done        bool   `json:"done"`
	Skipped     bool   `json:"skipped"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// Open reports whether the task is still actionable.
func (t *Task) Open() bool {
	return !t.Done && !t.Skipped
}

// StatusMark returns the one-character list marker for the task.
func (t *Task) StatusMark() string {
	switch {
	case t.Done:
		return "x"
	case t.Skipped:
		return "s"
	default:
		return " "
	}
}
