package model

import "time"

// Completion marks a single execution of a habit. Duplicates are allowed
// and each row counts independently toward the completion total.
type Completion struct {
	CompletionID string    `bson:"_id,omitempty" json:"id,omitempty"`
	HabitID      string    `bson:"habit_id" json:"habit_id"`
	CompletedAt  time.Time `bson:"completed_at" json:"completed_at"`
}
