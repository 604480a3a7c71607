package scheduler

import "github.com/amarkin/studybot/internal/domain"

const (
	// DefaultStudyHours is the baseline daily study-time target.
	DefaultStudyHours = 4.0
	// MinStudyHours is the lower clamp after a skip-heavy stretch.
	MinStudyHours = 2.0
	// MaxStudyHours is the upper clamp on a streak-driven bump.
	MaxStudyHours = 6.0

	// adaptiveWindow is how many recent behavior entries feed the heuristic.
	adaptiveWindow = 14
	// adaptiveSkipThreshold is the minimum skip count before easing off.
	adaptiveSkipThreshold = 3
	// adaptiveStreakThreshold is the streak length that earns a bump.
	adaptiveStreakThreshold = 3
)

// AdaptiveStudyHours adjusts the daily study-hour target from recent
// behavior: ease off when skips dominate, push up a little on a healthy
// streak, otherwise keep the default.
func AdaptiveStudyHours(log []domain.BehaviorLogEntry, currentStreak int) float64 {
	recent := log
	if len(recent) > adaptiveWindow {
		recent = recent[len(recent)-adaptiveWindow:]
	}

	var dones, skips int
	for _, e := range recent {
		switch e.Action {
		case domain.ActionDone:
			dones++
		case domain.ActionSkip:
			skips++
		}
	}

	switch {
	case skips > dones && skips >= adaptiveSkipThreshold:
		h := DefaultStudyHours - 1.0
		if h < MinStudyHours {
			h = MinStudyHours
		}
		return h
	case currentStreak >= adaptiveStreakThreshold:
		h := DefaultStudyHours + 0.5
		if h > MaxStudyHours {
			h = MaxStudyHours
		}
		return h
	default:
		return DefaultStudyHours
	}
}
