package analytics

import (
	"testing"
	"time"

	"main/model"
)

func TestCalculateStreaksDaily(t *testing.T) {
	now := date(2024, 3, 15)

	t.Run("five consecutive days ending today", func(t *testing.T) {
		dates := []time.Time{
			date(2024, 3, 11), date(2024, 3, 12), date(2024, 3, 13),
			date(2024, 3, 14), date(2024, 3, 15),
		}
		got := CalculateStreaks(dates, model.PeriodicityDaily, now)
		if got.Current != 5 || got.Longest != 5 {
			t.Errorf("got %+v, want {Current:5 Longest:5}", got)
		}
	})

	t.Run("unsorted input", func(t *testing.T) {
		dates := []time.Time{
			date(2024, 3, 14), date(2024, 3, 12), date(2024, 3, 15),
			date(2024, 3, 11), date(2024, 3, 13),
		}
		got := CalculateStreaks(dates, model.PeriodicityDaily, now)
		if got.Current != 5 || got.Longest != 5 {
			t.Errorf("got %+v, want {Current:5 Longest:5}", got)
		}
	})

	t.Run("gap resets the run", func(t *testing.T) {
		dates := []time.Time{
			date(2024, 3, 1), date(2024, 3, 2), date(2024, 3, 3), date(2024, 3, 4),
			date(2024, 3, 14), date(2024, 3, 15),
		}
		got := CalculateStreaks(dates, model.PeriodicityDaily, now)
		if got.Current != 2 {
			t.Errorf("current = %d, want 2", got.Current)
		}
		if got.Longest != 4 {
			t.Errorf("longest = %d, want 4", got.Longest)
		}
	})

	t.Run("lapsed habit has no current streak", func(t *testing.T) {
		dates := []time.Time{date(2024, 3, 10), date(2024, 3, 11), date(2024, 3, 12)}
		got := CalculateStreaks(dates, model.PeriodicityDaily, now)
		if got.Current != 0 {
			t.Errorf("current = %d, want 0 after the grace period", got.Current)
		}
		if got.Longest != 3 {
			t.Errorf("longest = %d, want 3", got.Longest)
		}
	})

	t.Run("completion yesterday is within grace", func(t *testing.T) {
		dates := []time.Time{date(2024, 3, 13), date(2024, 3, 14)}
		got := CalculateStreaks(dates, model.PeriodicityDaily, now)
		if got.Current != 2 {
			t.Errorf("current = %d, want 2", got.Current)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := CalculateStreaks(nil, model.PeriodicityDaily, now)
		if got.Current != 0 || got.Longest != 0 {
			t.Errorf("got %+v, want zero streaks", got)
		}
	})

	t.Run("single completion", func(t *testing.T) {
		got := CalculateStreaks([]time.Time{date(2024, 3, 15)}, model.PeriodicityDaily, now)
		if got.Current != 1 || got.Longest != 1 {
			t.Errorf("got %+v, want {Current:1 Longest:1}", got)
		}
	})
}

func TestCalculateStreaksWeekly(t *testing.T) {
	// 2024-03-15 is a Friday in ISO week 11.
	now := date(2024, 3, 15)

	t.Run("three consecutive weeks", func(t *testing.T) {
		dates := []time.Time{date(2024, 2, 26), date(2024, 3, 4), date(2024, 3, 11)}
		got := CalculateStreaks(dates, model.PeriodicityWeekly, now)
		if got.Current != 3 || got.Longest != 3 {
			t.Errorf("got %+v, want {Current:3 Longest:3}", got)
		}
	})

	t.Run("streak across the year boundary", func(t *testing.T) {
		dates := []time.Time{date(2023, 12, 18), date(2023, 12, 26), date(2024, 1, 1)}
		got := CalculateStreaks(dates, model.PeriodicityWeekly, date(2024, 1, 3))
		if got.Longest != 3 {
			t.Errorf("longest = %d, want 3 across the ISO year boundary", got.Longest)
		}
		if got.Current != 3 {
			t.Errorf("current = %d, want 3", got.Current)
		}
	})

	t.Run("lapsed past seven days", func(t *testing.T) {
		dates := []time.Time{date(2024, 2, 26), date(2024, 3, 4)}
		got := CalculateStreaks(dates, model.PeriodicityWeekly, now)
		if got.Current != 0 {
			t.Errorf("current = %d, want 0", got.Current)
		}
		if got.Longest != 2 {
			t.Errorf("longest = %d, want 2", got.Longest)
		}
	})
}

func TestStreakInvariants(t *testing.T) {
	now := date(2024, 3, 15)
	histories := [][]time.Time{
		{date(2024, 3, 15)},
		{date(2024, 3, 1), date(2024, 3, 2), date(2024, 3, 10)},
		{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1)},
		{date(2024, 3, 11), date(2024, 3, 12), date(2024, 3, 13), date(2024, 3, 15)},
	}

	for _, p := range []model.Periodicity{model.PeriodicityDaily, model.PeriodicityWeekly} {
		for _, dates := range histories {
			got := CalculateStreaks(dates, p, now)
			if got.Longest < 1 {
				t.Errorf("%s: longest = %d, want >= 1 for non-empty input", p, got.Longest)
			}
			if got.Current < 0 || got.Longest < got.Current {
				t.Errorf("%s: violated longest >= current >= 0: %+v", p, got)
			}
		}
	}
}

func TestCountBreaks(t *testing.T) {
	t.Run("two gaps", func(t *testing.T) {
		dates := []time.Time{
			date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 4),
			date(2024, 1, 5), date(2024, 1, 7),
		}
		if got := CountBreaks(dates, model.PeriodicityDaily); got != 2 {
			t.Errorf("breaks = %d, want 2", got)
		}
	})

	t.Run("unsorted input", func(t *testing.T) {
		dates := []time.Time{
			date(2024, 1, 7), date(2024, 1, 1), date(2024, 1, 5),
			date(2024, 1, 4), date(2024, 1, 2),
		}
		if got := CountBreaks(dates, model.PeriodicityDaily); got != 2 {
			t.Errorf("breaks = %d, want 2", got)
		}
	})

	t.Run("fewer than two completions", func(t *testing.T) {
		if got := CountBreaks(nil, model.PeriodicityDaily); got != 0 {
			t.Errorf("breaks = %d, want 0 for empty input", got)
		}
		if got := CountBreaks([]time.Time{date(2024, 1, 1)}, model.PeriodicityDaily); got != 0 {
			t.Errorf("breaks = %d, want 0 for single completion", got)
		}
	})

	t.Run("weekly same week is not a break", func(t *testing.T) {
		dates := []time.Time{date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 8)}
		if got := CountBreaks(dates, model.PeriodicityWeekly); got != 0 {
			t.Errorf("breaks = %d, want 0", got)
		}
	})
}
