// Package recommend provides the rule-based recommendation engine.
package recommend

import "time"

// Priority levels for recommendations. Lower value sorts first.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Recommendation is one actionable, ranked suggestion for the learner.
type Recommendation struct {
	// ID identifies the recommendation kind; duplicates by ID are
	// removed before ranking (first occurrence wins).
	ID string `json:"id"`

	Priority    int    `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Category tags the signal family the recommendation came from.
	Category string `json:"category"`

	// Reasoning names the analytical method that produced the
	// recommendation, for traceability.
	Reasoning string `json:"reasoning"`
}

// Context provides all signals the rules need. It is assembled by the
// analytics engine from the pattern, metric, and insight results.
type Context struct {
	// TotalEvents is the number of events in the analysis window.
	TotalEvents int `json:"total_events"`

	// RecentAccuracy is the accuracy over the trailing 20 events.
	RecentAccuracy float64 `json:"recent_accuracy"`

	// RecentEvents is the number of events the trailing accuracy covers.
	RecentEvents int `json:"recent_events"`

	// PeakHour and PeakDay are the circadian sweet spot from the
	// pattern analysis. HasPeak is false when no events exist.
	PeakHour int          `json:"peak_hour"`
	PeakDay  time.Weekday `json:"peak_day"`
	HasPeak  bool         `json:"has_peak"`

	// Consistency is the [0,1] evenness-of-activity score.
	Consistency float64 `json:"consistency"`

	// WeakAreas lists categories flagged by the weak-area analysis,
	// worst first.
	WeakAreas []WeakSpot `json:"weak_areas"`

	// WeekMinutes is study time logged in the current week, and
	// WeeklyTargetMinutes the configured goal (0 when unset).
	WeekMinutes         int `json:"week_minutes"`
	WeeklyTargetMinutes int `json:"weekly_target_minutes"`
}

// WeakSpot is the rule-facing view of a flagged category.
type WeakSpot struct {
	Category        string  `json:"category"`
	ErrorRate       float64 `json:"error_rate"`
	IncorrectStreak bool    `json:"incorrect_streak"`
}

// ExternalSuggestion is a suggestion produced by an external planner or
// scheduler collaborator, on its own priority scale (1 = highest).
type ExternalSuggestion struct {
	Type        string `json:"type"`
	Priority    int    `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Source supplies externally-generated suggestions for a computed context.
// A Source is optional; any error (or panic) it produces is treated as
// "no suggestions" and never aborts the rest of the pipeline.
type Source interface {
	Suggestions(ctx *Context) ([]ExternalSuggestion, error)
}

// Rule examines the context and produces zero or more recommendations.
type Rule func(ctx *Context) []Recommendation
