package domain

// PlanState is the whole persisted aggregate. It is saved atomically as one
// document after every mutating command; there is no partial-write state.
type PlanState struct {
	Subjects    []Subject          `json:"subjects"`
	Tasks       []Task             `json:"tasks"`
	Exams       []Exam             `json:"exams"`
	Stats       UserStats          `json:"user_stats"`
	BehaviorLog []BehaviorLogEntry `json:"behavior_log"`
}

// NewPlanState returns the empty default aggregate, identical to what a
// fresh, never-used store loads.
func NewPlanState() *PlanState {
	return &PlanState{}
}

// FindSubject returns the subject with the given name (case-sensitive), or
// nil.
func (p *PlanState) FindSubject(name string) *Subject {
	for i := range p.Subjects {
		if p.Subjects[i].Name == name {
			return &p.Subjects[i]
		}
	}
	return nil
}

// FindTask returns the task with the given id, or nil.
func (p *PlanState) FindTask(id string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// FindExam returns the exam with the given id, or nil.
func (p *PlanState) FindExam(id string) *Exam {
	for i := range p.Exams {
		if p.Exams[i].ID == id {
			return &p.Exams[i]
		}
	}
	return nil
}

// AppendLog records a behavior event at the end of the log.
func (p *PlanState) AppendLog(e BehaviorLogEntry) {
	p.BehaviorLog = append(p.BehaviorLog, e)
}

// RecentLog returns the last n behavior entries, oldest first.
func (p *PlanState) RecentLog(n int) []BehaviorLogEntry {
	if n >= len(p.BehaviorLog) {
		return p.BehaviorLog
	}
	return p.BehaviorLog[len(p.BehaviorLog)-n:]
}

// Reset empties every aggregate member, returning the plan to the fresh
// default state.
func (p *PlanState) Reset() {
	p.Subjects = nil
	p.Tasks = nil
	p.Exams = nil
	p.Stats = UserStats{}
	p.BehaviorLog = nil
}
