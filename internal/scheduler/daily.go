// Package scheduler computes time allocations and revision spreads from the
// plan state. Every function here is pure; the planner renders the results.
package scheduler

import (
	"sort"

	"github.com/amarkin/studybot/internal/domain"
)

// MinDailySlotMinutes is the floor applied to every subject's daily slot.
// With many low-weight subjects the floored sum can exceed the day budget;
// that is accepted behavior.
const MinDailySlotMinutes = 15

// DailySlot is one subject's share of a daily schedule.
type DailySlot struct {
	Subject domain.Subject
	Minutes int
}

// SortForDisplay orders subjects by priority (high first), then weekly hours
// (heavier first) within the same priority. The order is presentation only;
// it does not affect time allocation.
func SortForDisplay(subjects []domain.Subject) []domain.Subject {
	sorted := make([]domain.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].HoursPerWeek > sorted[j].HoursPerWeek
	})
	return sorted
}

// SuggestDaily splits hoursPerDay across the subjects proportionally to their
// weekly hour targets. Subjects with no target weigh in at 1 hour, and when
// no subject carries any hours the total falls back to two hours per subject
// (even weighting). Returns nil when there are no subjects.
func SuggestDaily(subjects []domain.Subject, hoursPerDay float64) []DailySlot {
	if len(subjects) == 0 {
		return nil
	}

	total := 0.0
	for _, s := range subjects {
		total += s.HoursPerWeek
	}
	if total <= 0 {
		total = float64(len(subjects)) * 2
	}

	slots := make([]DailySlot, 0, len(subjects))
	for _, s := range SortForDisplay(subjects) {
		weight := s.HoursPerWeek
		if weight == 0 {
			weight = 1
		}
		mins := int(hoursPerDay * 60 * weight / total)
		if mins < MinDailySlotMinutes {
			mins = MinDailySlotMinutes
		}
		slots = append(slots, DailySlot{Subject: s, Minutes: mins})
	}
	return slots
}
