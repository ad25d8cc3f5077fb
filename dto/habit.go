package dto

import (
	"time"

	"main/model"
)

type CreateHabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Periodicity string `json:"periodicity" binding:"required,periodicity"`
	Description string `json:"description"`
}

type CompleteHabitRequest struct {
	CompletedAt *time.Time `json:"completed_at"`
}

type TokenRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}

type HabitResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Periodicity model.Periodicity `json:"periodicity"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Convert model.Habit to HabitResponse
func ToHabitResponse(habit *model.Habit) HabitResponse {
	return HabitResponse{
		ID:          habit.HabitID,
		Name:        habit.Name,
		Periodicity: habit.Periodicity,
		Description: habit.Description,
		CreatedAt:   habit.CreatedAt,
	}
}

// Convert slice of model.Habit to slice of HabitResponse
func ToHabitResponses(habits []*model.Habit) []HabitResponse {
	responses := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		responses[i] = ToHabitResponse(habit)
	}
	return responses
}

type CompletionResponse struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	CompletedAt time.Time `json:"completed_at"`
}

func ToCompletionResponse(completion *model.Completion) CompletionResponse {
	return CompletionResponse{
		ID:          completion.CompletionID,
		HabitID:     completion.HabitID,
		CompletedAt: completion.CompletedAt,
	}
}
