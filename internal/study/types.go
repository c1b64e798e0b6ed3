// Package study provides the domain types and parsers for study-session data.
package study

import "time"

// CompletionEvent records a learner finishing a single study task.
type CompletionEvent struct {
	// TaskID is an opaque identifier for the completed task.
	TaskID string `json:"task_id"`

	// Timestamp is the absolute instant the task was completed.
	Timestamp time.Time `json:"timestamp"`

	// MinutesSpent is the session duration in whole minutes. Never negative;
	// the event source is responsible for rejecting malformed records.
	MinutesSpent int `json:"minutes_spent"`

	// Correct reports whether the task outcome was correct.
	Correct bool `json:"correct"`

	// Category is a free-form subject key. Unknown values pass through
	// as opaque strings.
	Category string `json:"category"`

	// PointsEarned is the optional point reward for the task.
	PointsEarned int `json:"points_earned,omitempty"`
}

// ProgressSnapshot carries externally-tracked progress totals supplied by
// the caller. StreakCount is the authoritative current streak when nonzero;
// the analytics engine derives its own streak when it is absent.
type ProgressSnapshot struct {
	StreakCount int `json:"streak_count"`
	TotalPoints int `json:"total_points"`
}

// Goals holds the learner's configured study targets.
type Goals struct {
	// WeeklyMinutesTarget is the weekly study-time goal in minutes.
	WeeklyMinutesTarget int `json:"weekly_minutes_target"`

	// MonthlyMinutesTarget is the monthly study-time goal in minutes.
	MonthlyMinutesTarget int `json:"monthly_minutes_target"`

	// TargetCategories lists categories the learner wants to prioritize.
	// May be empty.
	TargetCategories []string `json:"target_categories,omitempty"`
}

// DefaultGoals returns the standard targets used when the caller has not
// configured any.
func DefaultGoals() Goals {
	return Goals{
		WeeklyMinutesTarget:  300,
		MonthlyMinutesTarget: 1200,
	}
}
