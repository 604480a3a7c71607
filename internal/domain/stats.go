package domain

// UserStats is the single gamification record for the plan. TotalPoints may
// go negative under repeated skips; the derived level never drops below 1.
type UserStats struct {
	TotalPoints        int    `json:"total_points"`
	CurrentStreak      int    `json:"current_streak"`
	LastCompletionDate string `json:"last_completion_date,omitempty"`
}

// Level derives the level from total points: one level per 100 points,
// floored at 1.
func (s *UserStats) Level() int {
	lvl := 1 + s.TotalPoints/100
	if lvl < 1 {
		return 1
	}
	return lvl
}
