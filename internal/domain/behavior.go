package domain

// BehaviorLogEntry records one completion or skip event. The log is
// append-only and capped to the most recent entries on save.
type BehaviorLogEntry struct {
	Date   string    `json:"date"`
	TaskID string    `json:"task_id"`
	Action LogAction `json:"action"`
	Title  string    `json:"title"`
}

// MaxBehaviorLogEntries is the cap applied on every save; oldest entries are
// dropped first.
const MaxBehaviorLogEntries = 500
