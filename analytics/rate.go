package analytics

import (
	"fmt"
	"time"

	"main/model"
)

// CompletionRate returns the percentage of elapsed periods between the
// habit's creation date and now that contain at least one completion.
//
// The denominator is day-count based for both periodicities (elapsed days + 1
// for daily, elapsed days / 7 + 1 for weekly) while the numerator for weekly
// habits counts distinct ISO (year, week) pairs. The mismatch with the
// ISO-week adjacency predicate is intentional; unifying them would change
// reported rates.
func CompletionRate(dates []time.Time, createdAt time.Time, p model.Periodicity, now time.Time) float64 {
	if len(dates) == 0 {
		return 0
	}

	elapsed := DaysBetween(createdAt, now)
	total := elapsed + 1
	if p == model.PeriodicityWeekly {
		total = elapsed/7 + 1
	}
	if total <= 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		unique[periodKey(d, p)] = struct{}{}
	}

	return float64(len(unique)) / float64(total) * 100
}

// periodKey identifies the reporting period a timestamp falls into: the
// calendar date for daily habits, the ISO (year, week) pair for weekly ones.
func periodKey(t time.Time, p model.Periodicity) string {
	if p == model.PeriodicityWeekly {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	}
	return t.Format("2006-01-02")
}
