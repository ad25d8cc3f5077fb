package analytics

import (
	"sort"
	"time"

	"main/model"
)

// Streaks holds streak lengths counted in periods, not raw completions.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// sortedCopy returns the timestamps sorted ascending. Callers are not
// guaranteed to pass ordered input, so every calculator sorts defensively.
func sortedCopy(dates []time.Time) []time.Time {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return sorted
}

// CalculateStreaks computes the current and longest streaks for a completion
// history. The longest streak is the maximal run of pairwise-adjacent sorted
// dates. The current streak counts backwards from the most recent completion,
// but is 0 when the habit has lapsed past its grace period relative to now.
func CalculateStreaks(dates []time.Time, p model.Periodicity, now time.Time) Streaks {
	if len(dates) == 0 {
		return Streaks{}
	}

	sorted := sortedCopy(dates)
	adjacent := Adjacency(p)

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if adjacent(sorted[i-1], sorted[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 0
	if DaysBetween(sorted[len(sorted)-1], now) <= graceDays(p) {
		current = 1
		for i := len(sorted) - 1; i > 0; i-- {
			if !adjacent(sorted[i], sorted[i-1]) {
				break
			}
			current++
		}
	}

	return Streaks{Current: current, Longest: longest}
}

// CountBreaks returns how many consecutive pairs in the sorted completion
// history are not adjacent under the habit's periodicity.
func CountBreaks(dates []time.Time, p model.Periodicity) int {
	if len(dates) < 2 {
		return 0
	}

	sorted := sortedCopy(dates)
	adjacent := Adjacency(p)

	breaks := 0
	for i := 1; i < len(sorted); i++ {
		if !adjacent(sorted[i-1], sorted[i]) {
			breaks++
		}
	}
	return breaks
}
