package domain

type SubjectType string

const (
	SubjectCoding  SubjectType = "coding"
	SubjectCollege SubjectType = "college"
	SubjectGeneral SubjectType = "general"
)

type LogAction string

const (
	ActionDone LogAction = "done"
	ActionSkip LogAction = "skip"
)

type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)
