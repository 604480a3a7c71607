package planner

import (
	"fmt"
	"strings"

	"github.com/amarkin/studybot/internal/scheduler"
)

// AdaptiveHours returns the adjusted daily study-hour target from recent
// behavior and the current streak.
func (p *Planner) AdaptiveHours() float64 {
	return scheduler.AdaptiveStudyHours(p.state.BehaviorLog, p.state.Stats.CurrentStreak)
}

// DailySchedule renders the daily time split. Pass hoursPerDay <= 0 to use
// the adaptive target.
func (p *Planner) DailySchedule(hoursPerDay float64) string {
	if hoursPerDay <= 0 {
		hoursPerDay = p.AdaptiveHours()
	}
	slots := scheduler.SuggestDaily(p.state.Subjects, hoursPerDay)
	if slots == nil {
		return "Add some subjects first, then I can suggest a daily schedule."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Suggested daily schedule** (%sh total):", trimFloat(hoursPerDay))
	for _, s := range slots {
		fmt.Fprintf(&b, "\n• **%s**: %d min", s.Subject.Name, s.Minutes)
	}
	return b.String()
}

// WeeklySchedule renders weekly targets with derived daily minutes and the
// fixed week-partitioning guidance.
func (p *Planner) WeeklySchedule(hoursPerDay float64) string {
	if hoursPerDay <= 0 {
		hoursPerDay = p.AdaptiveHours()
	}
	slots := scheduler.SuggestWeekly(p.state.Subjects)
	if slots == nil {
		return "Add some subjects first, then I can suggest a weekly schedule."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Suggested weekly schedule** (about %sh/day):", trimFloat(hoursPerDay))
	for _, s := range slots {
		fmt.Fprintf(&b, "\n• **%s**: %sh/week → %d min/day",
			s.Subject.Name, trimFloat(s.Subject.HoursPerWeek), s.DailyMinutes)
	}
	b.WriteString("\n\n" + scheduler.WeeklyGuidance)
	return b.String()
}

// StatsText formats the gamification summary.
func (p *Planner) StatsText() string {
	return "**Your stats:**\n" + p.statsLine() +
		fmt.Sprintf("\nAdaptive target: %sh/day", trimFloat(p.AdaptiveHours()))
}
