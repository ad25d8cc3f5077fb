package model

import (
	"fmt"
	"time"
)

type Periodicity string

const (
	PeriodicityDaily  Periodicity = "daily"
	PeriodicityWeekly Periodicity = "weekly"
)

// ValidPeriodicities lists the accepted periodicity values in the order
// they are reported in validation errors.
var ValidPeriodicities = []Periodicity{PeriodicityDaily, PeriodicityWeekly}

// Validate checks that the periodicity is one of the allowed enum values.
// Periodicity is immutable after habit creation, so this only runs at the edges.
func (p Periodicity) Validate() error {
	for _, valid := range ValidPeriodicities {
		if p == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid periodicity %q: must be one of: %s, %s",
		string(p), PeriodicityDaily, PeriodicityWeekly)
}

// IsValid reports whether the periodicity is an allowed enum value.
func (p Periodicity) IsValid() bool {
	return p.Validate() == nil
}

type Habit struct {
	HabitID     string      `bson:"_id,omitempty" json:"id"`
	Name        string      `bson:"name" json:"name" binding:"required"`
	Periodicity Periodicity `bson:"periodicity" json:"periodicity" binding:"required"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}
