// Package gamification holds the points/streak state machine applied on task
// completion and skip events.
package gamification

import (
	"time"

	"github.com/amarkin/studybot/internal/domain"
)

const (
	// CompletionPoints is awarded on the first completion of a calendar day.
	CompletionPoints = 10
	// SkipPenalty is deducted on every skip event, not once per day.
	SkipPenalty = 3
	// MaxStreakBonus caps the extra points from a running streak.
	MaxStreakBonus = 5
)

// CompletionResult reports what a completion event changed.
type CompletionResult struct {
	PointsAwarded int
	StreakBonus   int
}

// ApplyCompletion updates stats for a task completed today.
//
// Points and streak are touched only on the first completion of a calendar
// day: a repeat completion on the same date awards nothing. Otherwise the
// streak increments when the previous completion was exactly yesterday and
// resets to 1 for any other gap (including no previous completion), and the
// flat points plus a capped streak bonus are added.
func ApplyCompletion(stats *domain.UserStats, today time.Time) CompletionResult {
	todayStr := domain.FormatDay(today)
	if stats.LastCompletionDate == todayStr {
		return CompletionResult{}
	}

	if last, ok := domain.ParseDay(stats.LastCompletionDate); ok && domain.DaysBetween(last, today) == 1 {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}
	stats.LastCompletionDate = todayStr

	res := CompletionResult{PointsAwarded: CompletionPoints}
	if stats.CurrentStreak > 1 {
		bonus := stats.CurrentStreak - 1
		if bonus > MaxStreakBonus {
			bonus = MaxStreakBonus
		}
		res.StreakBonus = bonus
	}
	stats.TotalPoints += res.PointsAwarded + res.StreakBonus
	return res
}

// ApplySkip deducts the skip penalty. Unlike completions, the penalty is not
// gated by date: skipping twice on the same day penalizes twice.
func ApplySkip(stats *domain.UserStats) int {
	stats.TotalPoints -= SkipPenalty
	return SkipPenalty
}
