package model

import "time"

// HabitStats is derived on demand from the completion history and is never
// persisted. Streaks are counted in periods (days or weeks), not completions.
type HabitStats struct {
	TotalCompletions int         `json:"total_completions"`
	CurrentStreak    int         `json:"current_streak"`
	LongestStreak    int         `json:"longest_streak"`
	CompletionRate   float64     `json:"completion_rate"`
	BreakCount       int         `json:"break_count"`
	LastCompleted    *time.Time  `json:"last_completed,omitempty"`
	Periodicity      Periodicity `json:"periodicity"`
}
