package analytics

import (
	"reflect"
	"testing"
	"time"

	"main/model"
)

func exerciseHabit() HabitData {
	return HabitData{
		Name:        "Exercise",
		Periodicity: model.PeriodicityDaily,
		CreatedAt:   date(2024, 3, 6),
		Completions: []time.Time{
			date(2024, 3, 6), date(2024, 3, 7), date(2024, 3, 8),
			date(2024, 3, 10), date(2024, 3, 11),
		},
	}
}

func TestAnalyze(t *testing.T) {
	now := date(2024, 3, 11)
	stats := Analyze(exerciseHabit(), now)

	if stats.TotalCompletions != 5 {
		t.Errorf("total completions = %d, want 5", stats.TotalCompletions)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", stats.LongestStreak)
	}
	if stats.BreakCount != 1 {
		t.Errorf("break count = %d, want 1", stats.BreakCount)
	}
	// Five distinct days out of six elapsed periods.
	want := 5.0 / 6.0 * 100
	if stats.CompletionRate != want {
		t.Errorf("completion rate = %v, want %v", stats.CompletionRate, want)
	}
	if stats.LastCompleted == nil || !stats.LastCompleted.Equal(date(2024, 3, 11)) {
		t.Errorf("last completed = %v, want 2024-03-11", stats.LastCompleted)
	}
	if stats.Periodicity != model.PeriodicityDaily {
		t.Errorf("periodicity = %q, want daily", stats.Periodicity)
	}
}

func TestAnalyzeEmptyHabit(t *testing.T) {
	stats := Analyze(HabitData{
		Name:        "Meditation",
		Periodicity: model.PeriodicityWeekly,
		CreatedAt:   date(2024, 1, 1),
	}, date(2024, 3, 11))

	if stats.TotalCompletions != 0 || stats.CurrentStreak != 0 ||
		stats.LongestStreak != 0 || stats.BreakCount != 0 || stats.CompletionRate != 0 {
		t.Errorf("empty habit should yield all-zero stats, got %+v", stats)
	}
	if stats.LastCompleted != nil {
		t.Errorf("last completed = %v, want nil", stats.LastCompleted)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	now := date(2024, 3, 11)
	habit := exerciseHabit()

	first := Analyze(habit, now)
	second := Analyze(habit, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis diverged:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeAll(t *testing.T) {
	now := date(2024, 3, 11)
	habits := []HabitData{
		exerciseHabit(),
		{
			Name:        "Yoga",
			Periodicity: model.PeriodicityWeekly,
			CreatedAt:   date(2024, 2, 26),
			Completions: []time.Time{date(2024, 2, 26), date(2024, 3, 4), date(2024, 3, 11)},
		},
	}

	all := AnalyzeAll(habits, now)
	if len(all) != 2 {
		t.Fatalf("analyzed %d habits, want 2", len(all))
	}
	if all["Exercise"].LongestStreak != 3 {
		t.Errorf("Exercise longest = %d, want 3", all["Exercise"].LongestStreak)
	}
	if all["Yoga"].CurrentStreak != 3 {
		t.Errorf("Yoga current = %d, want 3", all["Yoga"].CurrentStreak)
	}
}

func TestAnalyzeByPeriodicity(t *testing.T) {
	now := date(2024, 3, 11)
	habits := []HabitData{
		{Name: "Read", Periodicity: model.PeriodicityDaily, CreatedAt: date(2024, 3, 1)},
		{Name: "Yoga", Periodicity: model.PeriodicityWeekly, CreatedAt: date(2024, 3, 1)},
		{Name: "Walk", Periodicity: model.PeriodicityDaily, CreatedAt: date(2024, 3, 1)},
	}

	daily := AnalyzeByPeriodicity(habits, model.PeriodicityDaily, now)
	if len(daily) != 2 {
		t.Fatalf("got %d daily habits, want 2", len(daily))
	}
	// Input order is preserved.
	if daily[0].Name != "Read" || daily[1].Name != "Walk" {
		t.Errorf("got order %q, %q; want Read, Walk", daily[0].Name, daily[1].Name)
	}
}

func TestLongestStreaks(t *testing.T) {
	now := date(2024, 3, 11)
	habits := []HabitData{
		exerciseHabit(),
		{Name: "Journal", Periodicity: model.PeriodicityDaily, CreatedAt: date(2024, 3, 1)},
	}

	longest := LongestStreaks(habits, now)
	if longest["Exercise"] != 3 {
		t.Errorf("Exercise = %d, want 3", longest["Exercise"])
	}
	if longest["Journal"] != 0 {
		t.Errorf("Journal = %d, want 0", longest["Journal"])
	}
}
