package analytics

import (
	"fmt"

	"main/model"
)

// suggestionRule pairs an independent trigger condition with its message.
// Rules are evaluated in order, never short-circuit, and any number may fire.
type suggestionRule struct {
	applies func(model.HabitStats) bool
	message func(model.HabitStats) string
}

var suggestionRules = []suggestionRule{
	{
		applies: func(s model.HabitStats) bool { return s.CompletionRate < 30 },
		message: func(model.HabitStats) string {
			return "Consider making this habit easier or breaking it into smaller steps"
		},
	},
	{
		applies: func(s model.HabitStats) bool { return s.CompletionRate < 70 },
		message: func(model.HabitStats) string {
			return "You're making progress! Try setting specific times for this habit"
		},
	},
	{
		applies: func(s model.HabitStats) bool {
			return float64(s.CurrentStreak) < float64(s.LongestStreak)/2
		},
		message: func(s model.HabitStats) string {
			unit := "days"
			if s.Periodicity == model.PeriodicityWeekly {
				unit = "weeks"
			}
			return fmt.Sprintf("You've had a longer streak (%d %s)! Try to beat your record",
				s.LongestStreak, unit)
		},
	},
	{
		applies: func(s model.HabitStats) bool {
			return float64(s.BreakCount) > float64(s.TotalCompletions)/3
		},
		message: func(model.HabitStats) string {
			return "Consider setting reminders to maintain consistency"
		},
	},
}

// Suggestions returns the improvement messages whose conditions hold for the
// given statistics, in rule order.
func Suggestions(stats model.HabitStats) []string {
	var messages []string
	for _, rule := range suggestionRules {
		if rule.applies(stats) {
			messages = append(messages, rule.message(stats))
		}
	}
	return messages
}
