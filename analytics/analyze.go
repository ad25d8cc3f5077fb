// Package analytics turns a habit's raw completion history into streak,
// break, and completion-rate statistics. Every function is a pure,
// deterministic computation over its inputs; callers capture "now" once per
// invocation and pass it explicitly so grace-period and rate calculations
// agree within a single call.
package analytics

import (
	"time"

	"main/model"
)

// HabitData is the engine's view of a habit: metadata plus the (possibly
// unsorted) completion timestamps supplied by the store.
type HabitData struct {
	Name        string
	Periodicity model.Periodicity
	CreatedAt   time.Time
	Completions []time.Time
}

// NamedStats pairs a habit name with its computed statistics, preserving the
// order of the habits they were derived from.
type NamedStats struct {
	Name  string           `json:"name"`
	Stats model.HabitStats `json:"stats"`
}

// Analyze computes the full statistics record for one habit.
func Analyze(h HabitData, now time.Time) model.HabitStats {
	streaks := CalculateStreaks(h.Completions, h.Periodicity, now)

	stats := model.HabitStats{
		TotalCompletions: len(h.Completions),
		CurrentStreak:    streaks.Current,
		LongestStreak:    streaks.Longest,
		CompletionRate:   CompletionRate(h.Completions, h.CreatedAt, h.Periodicity, now),
		BreakCount:       CountBreaks(h.Completions, h.Periodicity),
		Periodicity:      h.Periodicity,
	}

	if last := lastCompletion(h.Completions); !last.IsZero() {
		stats.LastCompleted = &last
	}
	return stats
}

// AnalyzeAll maps each habit's name to its statistics.
func AnalyzeAll(habits []HabitData, now time.Time) map[string]model.HabitStats {
	all := make(map[string]model.HabitStats, len(habits))
	for _, h := range habits {
		all[h.Name] = Analyze(h, now)
	}
	return all
}

// AnalyzeBy analyzes the habits matching a predicate, in input order.
func AnalyzeBy(habits []HabitData, predicate func(HabitData) bool, now time.Time) []NamedStats {
	var matched []NamedStats
	for _, h := range habits {
		if predicate(h) {
			matched = append(matched, NamedStats{Name: h.Name, Stats: Analyze(h, now)})
		}
	}
	return matched
}

// AnalyzeByPeriodicity analyzes the habits with the given periodicity.
func AnalyzeByPeriodicity(habits []HabitData, p model.Periodicity, now time.Time) []NamedStats {
	return AnalyzeBy(habits, func(h HabitData) bool { return h.Periodicity == p }, now)
}

// LongestStreaks maps each habit's name to its longest streak, a convenience
// projection over the same computation.
func LongestStreaks(habits []HabitData, now time.Time) map[string]int {
	longest := make(map[string]int, len(habits))
	for _, h := range habits {
		longest[h.Name] = CalculateStreaks(h.Completions, h.Periodicity, now).Longest
	}
	return longest
}

func lastCompletion(dates []time.Time) time.Time {
	var last time.Time
	for _, d := range dates {
		if d.After(last) {
			last = d
		}
	}
	return last
}
