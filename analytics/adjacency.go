package analytics

import (
	"math"
	"time"

	"main/model"
)

// AdjacencyFunc reports whether two completion timestamps fall in the same or
// directly consecutive reporting periods for a habit's periodicity.
type AdjacencyFunc func(a, b time.Time) bool

// dateOf truncates a timestamp to its local calendar date.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the absolute difference in calendar dates, ignoring
// time of day. Rounding absorbs DST offsets inside the interval.
func DaysBetween(a, b time.Time) int {
	days := int(math.Round(dateOf(a).Sub(dateOf(b)).Hours() / 24))
	if days < 0 {
		return -days
	}
	return days
}

// DailyAdjacent reports whether two timestamps fall on consecutive calendar
// days. Two completions on the same day are not adjacent.
func DailyAdjacent(a, b time.Time) bool {
	return DaysBetween(a, b) == 1
}

// SameISOWeek reports whether two timestamps fall in the same ISO (year, week).
func SameISOWeek(a, b time.Time) bool {
	y1, w1 := a.ISOWeek()
	y2, w2 := b.ISOWeek()
	return y1 == y2 && w1 == w2
}

// lastISOWeek returns the number of the final ISO week of a year (52 or 53).
// December 28 always falls in the last ISO week.
func lastISOWeek(year int, loc *time.Location) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, loc).ISOWeek()
	return week
}

// WeeklyAdjacent reports whether two timestamps fall in the same or directly
// consecutive ISO weeks. Weeks run Monday through Sunday and week 1 is the
// week containing the year's first Thursday, so a raw day-count check would
// misclassify pairs near week and year boundaries.
func WeeklyAdjacent(a, b time.Time) bool {
	y1, w1 := a.ISOWeek()
	y2, w2 := b.ISOWeek()

	if y1 == y2 {
		if w1 == w2 {
			return true
		}
		diff := w1 - w2
		return diff == 1 || diff == -1
	}

	// Year boundary: the earlier date must sit in its year's last ISO week
	// and the later one in week 1 of the following ISO year.
	if y2 < y1 {
		y1, w1, y2, w2 = y2, w2, y1, w1
		a, b = b, a
	}
	if y2-y1 != 1 {
		return false
	}
	return w1 == lastISOWeek(y1, a.Location()) && w2 == 1
}

// Adjacency returns the predicate for a periodicity. The engine assumes the
// enum was validated at construction; anything that is not weekly is treated
// as daily.
func Adjacency(p model.Periodicity) AdjacencyFunc {
	if p == model.PeriodicityWeekly {
		return WeeklyAdjacent
	}
	return DailyAdjacent
}

// graceDays is the allowance before a habit counts as lapsed and its current
// streak resets to 0.
func graceDays(p model.Periodicity) int {
	if p == model.PeriodicityWeekly {
		return 7
	}
	return 1
}
