package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"main/analytics"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"

	"github.com/google/uuid"
)

var (
	ErrFutureCompletion = errors.New("completion time cannot be in the future")
	ErrEmptyName        = errors.New("habit name is required")
)

type HabitsService struct {
	Habits      *repository.HabitsRepo
	Completions *repository.CompletionsRepo
	StatsCache  *services.StatsCache // optional, nil disables caching
}

func NewHabitsService(habits *repository.HabitsRepo, completions *repository.CompletionsRepo, cache *services.StatsCache) *HabitsService {
	return &HabitsService{
		Habits:      habits,
		Completions: completions,
		StatsCache:  cache,
	}
}

// CreateHabit validates and stores a new habit, filling defaults for the ID
// and creation time. Periodicity is immutable once stored.
func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	habit.Name = strings.TrimSpace(habit.Name)
	if habit.Name == "" {
		return ErrEmptyName
	}
	if err := habit.Periodicity.Validate(); err != nil {
		return err
	}

	if habit.HabitID == "" {
		habit.HabitID = uuid.New().String()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}

	return svc.Habits.CreateHabit(ctx, habit)
}

// CompleteHabit appends a completion for an existing habit. A zero timestamp
// means now. Recording a completion invalidates the habit's cached stats.
func (svc *HabitsService) CompleteHabit(ctx context.Context, habitID string, at time.Time) (*model.Completion, error) {
	if _, err := svc.Habits.GetHabit(ctx, habitID); err != nil {
		return nil, err
	}

	if at.IsZero() {
		at = time.Now()
	}
	if at.After(time.Now()) {
		return nil, ErrFutureCompletion
	}

	completion := &model.Completion{
		CompletionID: uuid.New().String(),
		HabitID:      habitID,
		CompletedAt:  at,
	}
	if err := svc.Completions.AddCompletion(ctx, completion); err != nil {
		return nil, err
	}

	if svc.StatsCache != nil {
		if err := svc.StatsCache.InvalidateStats(ctx, habitID); err != nil {
			log.Printf("Failed to invalidate stats cache for habit %s: %v", habitID, err)
		}
	}

	return completion, nil
}

// GetHabit retrieves a single habit by ID.
func (svc *HabitsService) GetHabit(ctx context.Context, habitID string) (*model.Habit, error) {
	return svc.Habits.GetHabit(ctx, habitID)
}

// ListHabits retrieves all habits, optionally filtered by periodicity.
func (svc *HabitsService) ListHabits(ctx context.Context, p model.Periodicity) ([]*model.Habit, error) {
	if p == "" {
		return svc.Habits.GetAllHabits(ctx)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return svc.Habits.GetHabitsByPeriodicity(ctx, p)
}

// GetCompletions returns a habit's completion timestamps.
func (svc *HabitsService) GetCompletions(ctx context.Context, habitID string) ([]time.Time, error) {
	if _, err := svc.Habits.GetHabit(ctx, habitID); err != nil {
		return nil, err
	}
	return svc.Completions.GetHabitCompletions(ctx, habitID)
}

// CountHabits reports how many habits are stored.
func (svc *HabitsService) CountHabits(ctx context.Context) (int, error) {
	return svc.Habits.CountHabits(ctx)
}

// AnalyzeHabit computes (or serves from cache) the statistics for one habit.
// "Now" is captured once before the engine runs.
func (svc *HabitsService) AnalyzeHabit(ctx context.Context, habitID string) (model.HabitStats, error) {
	if svc.StatsCache != nil {
		cached, err := svc.StatsCache.GetStats(ctx, habitID)
		if err != nil {
			log.Printf("Stats cache read failed for habit %s: %v", habitID, err)
		}
		if cached != nil {
			middleware.TrackStatsCache("hit")
			return *cached, nil
		}
		middleware.TrackStatsCache("miss")
	}

	habit, err := svc.Habits.GetHabit(ctx, habitID)
	if err != nil {
		return model.HabitStats{}, err
	}

	data, err := svc.habitData(ctx, habit)
	if err != nil {
		return model.HabitStats{}, err
	}

	stats := analytics.Analyze(data, time.Now())

	if svc.StatsCache != nil {
		if err := svc.StatsCache.SetStats(ctx, habitID, stats); err != nil {
			log.Printf("Stats cache write failed for habit %s: %v", habitID, err)
		}
	}
	return stats, nil
}

// AnalyzeAllHabits maps every habit name to its statistics.
func (svc *HabitsService) AnalyzeAllHabits(ctx context.Context) (map[string]model.HabitStats, error) {
	data, err := svc.allHabitData(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeAll(data, time.Now()), nil
}

// AnalyzeByPeriodicity analyzes the habits with the given periodicity.
func (svc *HabitsService) AnalyzeByPeriodicity(ctx context.Context, p model.Periodicity) ([]analytics.NamedStats, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	data, err := svc.allHabitData(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeByPeriodicity(data, p, time.Now()), nil
}

// LongestStreaks maps every habit name to its longest streak.
func (svc *HabitsService) LongestStreaks(ctx context.Context) (map[string]int, error) {
	data, err := svc.allHabitData(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.LongestStreaks(data, time.Now()), nil
}

// SuggestionsForHabit returns the improvement suggestions for one habit.
func (svc *HabitsService) SuggestionsForHabit(ctx context.Context, habitID string) ([]string, error) {
	stats, err := svc.AnalyzeHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	return analytics.Suggestions(stats), nil
}

func (svc *HabitsService) habitData(ctx context.Context, habit *model.Habit) (analytics.HabitData, error) {
	completions, err := svc.Completions.GetHabitCompletions(ctx, habit.HabitID)
	if err != nil {
		return analytics.HabitData{}, err
	}
	return analytics.HabitData{
		Name:        habit.Name,
		Periodicity: habit.Periodicity,
		CreatedAt:   habit.CreatedAt,
		Completions: completions,
	}, nil
}

func (svc *HabitsService) allHabitData(ctx context.Context) ([]analytics.HabitData, error) {
	habits, err := svc.Habits.GetAllHabits(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]analytics.HabitData, 0, len(habits))
	for _, habit := range habits {
		hd, err := svc.habitData(ctx, habit)
		if err != nil {
			return nil, err
		}
		data = append(data, hd)
	}
	return data, nil
}
