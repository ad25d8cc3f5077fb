// Package seed creates a default set of habits with randomized completion
// history, for demos and fresh installs. Habit definitions come from a YAML
// file so the sample set can change without a rebuild.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"main/model"

	"gopkg.in/yaml.v3"
)

type TimeRange struct {
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`
}

type HabitConfig struct {
	Name           string    `yaml:"name"`
	Periodicity    string    `yaml:"periodicity"`
	Description    string    `yaml:"description"`
	CompletionRate float64   `yaml:"completion_rate"`
	TimeRange      TimeRange `yaml:"completion_time_range"`
}

type Config struct {
	HistoryDays int           `yaml:"history_days"`
	Habits      []HabitConfig `yaml:"habits"`
}

// LoadConfig reads and parses the seed configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse seed config: %w", err)
	}

	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 28
	}
	for i, habit := range cfg.Habits {
		if err := model.Periodicity(habit.Periodicity).Validate(); err != nil {
			return nil, fmt.Errorf("habit %q: %w", habit.Name, err)
		}
		if habit.TimeRange.EndHour == 0 {
			cfg.Habits[i].TimeRange = TimeRange{StartHour: 7, EndHour: 22}
		}
	}
	return &cfg, nil
}

// Store is the slice of the habit service the seeder needs.
type Store interface {
	CreateHabit(ctx context.Context, habit *model.Habit) error
	CompleteHabit(ctx context.Context, habitID string, at time.Time) (*model.Completion, error)
}

// Report summarizes one seeding run.
type Report struct {
	HabitsCreated int            `json:"habits_created"`
	Completions   map[string]int `json:"completions"`
}

type Seeder struct {
	Store Store
	Rand  *rand.Rand // deterministic histories when seeded
	Now   time.Time  // zero means time.Now()
}

// Run creates every configured habit dated HistoryDays back and walks the
// range day by day, recording completions with the configured probability.
// Weekly habits are only attempted on Mondays.
func (s *Seeder) Run(ctx context.Context, cfg *Config) (*Report, error) {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	start := now.AddDate(0, 0, -cfg.HistoryDays)

	report := &Report{Completions: make(map[string]int)}

	for _, hc := range cfg.Habits {
		habit := &model.Habit{
			Name:        hc.Name,
			Periodicity: model.Periodicity(hc.Periodicity),
			Description: hc.Description,
			CreatedAt:   start,
		}
		if err := s.Store.CreateHabit(ctx, habit); err != nil {
			return report, fmt.Errorf("failed to create habit %q: %w", hc.Name, err)
		}
		report.HabitsCreated++

		count, err := s.generateHistory(ctx, habit, hc, start, now)
		if err != nil {
			return report, err
		}
		report.Completions[habit.Name] = count
	}

	return report, nil
}

func (s *Seeder) generateHistory(ctx context.Context, habit *model.Habit, hc HabitConfig, start, end time.Time) (int, error) {
	completions := 0

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if habit.Periodicity == model.PeriodicityWeekly && day.Weekday() != time.Monday {
			continue
		}
		if s.Rand.Float64() >= hc.CompletionRate {
			continue
		}

		hour := hc.TimeRange.StartHour
		if span := hc.TimeRange.EndHour - hc.TimeRange.StartHour; span > 0 {
			hour += s.Rand.Intn(span + 1)
		}
		completedAt := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		if completedAt.After(end) {
			completedAt = end
		}

		if _, err := s.Store.CompleteHabit(ctx, habit.HabitID, completedAt); err != nil {
			return completions, fmt.Errorf("failed to record completion for %q: %w", habit.Name, err)
		}
		completions++
	}

	return completions, nil
}
