package scheduler

import "github.com/amarkin/studybot/internal/domain"

// MinWeeklySlotMinutes is the floor for a subject's derived daily minutes in
// the weekly view.
const MinWeeklySlotMinutes = 10

// WeeklyGuidance is the fixed week-partitioning hint appended to every
// weekly schedule. It is static text, not computed from the subjects.
const WeeklyGuidance = "Mon-Wed: high-priority subjects | Thu-Fri: catch-up | Sat-Sun: revision"

// WeeklySlot pairs a subject's weekly target with its derived daily minutes.
type WeeklySlot struct {
	Subject      domain.Subject
	DailyMinutes int
}

// SuggestWeekly derives per-day minutes from each subject's weekly target
// (hours/7, floored to the minimum slot). Returns nil when there are no
// subjects.
func SuggestWeekly(subjects []domain.Subject) []WeeklySlot {
	if len(subjects) == 0 {
		return nil
	}

	slots := make([]WeeklySlot, 0, len(subjects))
	for _, s := range SortForDisplay(subjects) {
		mins := int(s.HoursPerWeek / 7 * 60)
		if mins < MinWeeklySlotMinutes {
			mins = MinWeeklySlotMinutes
		}
		slots = append(slots, WeeklySlot{Subject: s, DailyMinutes: mins})
	}
	return slots
}
