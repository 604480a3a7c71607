package domain

// Subject is a study subject with a weekly hour target. Name is the unique
// key, matched case-sensitively.
type Subject struct {
	Name         string      `json:"name"`
	HoursPerWeek float64     `json:"hours_per_week"`
	Priority     Priority    `json:"priority"`
	Deadline     string      `json:"deadline,omitempty"`
	Type         SubjectType `json:"subject_type"`
}
