// Package analytics derives behavioral study analytics from completion events.
package analytics

import (
	"time"

	"github.com/blackwell-systems/studypulse/internal/recommend"
)

// Day-segment keys used in the time distribution.
const (
	SegmentEarlyMorning = "early_morning" // 04:00-07:59
	SegmentMorning      = "morning"       // 08:00-11:59
	SegmentAfternoon    = "afternoon"     // 12:00-16:59
	SegmentEvening      = "evening"       // 17:00-21:59
	SegmentNight        = "night"         // everything else
)

// Burnout risk levels.
const (
	BurnoutLow    = "low"
	BurnoutMedium = "medium"
	BurnoutHigh   = "high"
)

// Recommended-focus tiers for weak areas.
const (
	FocusFundamentals = "break_down_fundamentals"
	FocusTargeted     = "targeted_practice"
	FocusLightReview  = "light_review"
)

// Report is the composite analytics report returned by the engine.
// All fields are value objects created fresh per invocation; the engine
// never mutates a report after returning it.
type Report struct {
	// GeneratedAt is the injected "now" the report was computed against.
	GeneratedAt time.Time `json:"generated_at"`

	// WindowStart is the inclusive start of the trailing analysis window.
	WindowStart time.Time `json:"window_start"`

	// TotalEvents is the number of events inside the window.
	TotalEvents int `json:"total_events"`

	Patterns        StudyPatterns              `json:"patterns"`
	Metrics         PerformanceMetrics         `json:"metrics"`
	Streak          StreakAnalysis             `json:"streak"`
	WeakAreas       WeakAreaAnalysis           `json:"weak_areas"`
	Insights        ProductivityInsights       `json:"insights"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// StudyPatterns captures when and how the learner studies best.
type StudyPatterns struct {
	// TimeDistribution maps day segment to the fraction of total study
	// minutes spent there. Fractions sum to 1 when any minutes were
	// logged; the map is empty when none were.
	TimeDistribution map[string]float64 `json:"time_distribution"`

	// HourlyProductivity maps hour-of-day to a normalized productivity
	// weight. Weights sum to 1 across all hours present.
	HourlyProductivity map[int]float64 `json:"hourly_productivity"`

	// PeakHour is the hour-of-day with the highest productivity weight.
	PeakHour int `json:"peak_hour"`

	// PeakDay is the weekday with the highest day score.
	PeakDay time.Weekday `json:"peak_day"`

	// Categories maps category key to blended performance stats.
	Categories map[string]CategoryPerformance `json:"categories"`

	// WeeklyProgress is the smoothed correct-completion series, one entry
	// per ISO week present in the data, oldest first.
	WeeklyProgress []WeekProgress `json:"weekly_progress"`

	// FocusScore blends session-length stability with accuracy, in [0,1].
	FocusScore float64 `json:"focus_score"`

	// Consistency measures how evenly activity spreads across days, in [0,1].
	Consistency float64 `json:"consistency"`

	// ImprovementTrend compares second-half to first-half accuracy,
	// clamped to [-0.3, 0.3]. Zero when fewer than 10 events exist.
	ImprovementTrend float64 `json:"improvement_trend"`
}

// CategoryPerformance holds per-category accuracy and time stats.
type CategoryPerformance struct {
	// Accuracy is the raw fraction of correct completions.
	Accuracy float64 `json:"accuracy"`

	// RecencyWeighted is the exponentially recency-weighted accuracy.
	RecencyWeighted float64 `json:"recency_weighted"`

	// Score blends raw accuracy (90%) with recency-weighted accuracy (10%),
	// clamped to [0,1].
	Score float64 `json:"score"`

	// TotalMinutes is the summed study time in this category.
	TotalMinutes int `json:"total_minutes"`

	// Events is the number of completions in this category.
	Events int `json:"events"`
}

// WeekProgress is one point of the smoothed weekly-progress series.
type WeekProgress struct {
	// WeekStart is the Monday the ISO week begins on.
	WeekStart time.Time `json:"week_start"`

	// CorrectCount is the raw number of correct completions that week.
	CorrectCount int `json:"correct_count"`

	// Smoothed is the exponentially-smoothed series value (factor 0.2,
	// seeded with the first week's raw count).
	Smoothed float64 `json:"smoothed"`
}

// PerformanceMetrics holds scalar performance measures for the window.
type PerformanceMetrics struct {
	// CompletionRate is correct completions over total completions.
	CompletionRate float64 `json:"completion_rate"`

	// TodayMinutes is study time logged on the current calendar day.
	TodayMinutes int `json:"today_minutes"`

	// WeekMinutes is study time logged in the Monday-anchored current week.
	WeekMinutes int `json:"week_minutes"`

	// TotalMinutes is study time logged across the whole window.
	TotalMinutes int `json:"total_minutes"`

	// TotalPoints is the summed points earned across the window.
	TotalPoints int `json:"total_points"`

	// WeeklyProductivity is the composite score for the current week:
	// accuracy*0.5 + min(hours/15, 0.3) + consistency*0.2.
	WeeklyProductivity float64 `json:"weekly_productivity"`
}

// StreakAnalysis captures consecutive-study-day runs.
type StreakAnalysis struct {
	// Current is the streak ending today. Taken from the caller's
	// progress snapshot when available, otherwise derived from events.
	Current int `json:"current"`

	// Longest is the longest run of consecutive study days in the window.
	Longest int `json:"longest"`

	// StudyDays is the number of distinct calendar days with activity.
	StudyDays int `json:"study_days"`
}

// WeakArea describes a category flagged for attention.
type WeakArea struct {
	// Category is the subject key.
	Category string `json:"category"`

	// ErrorRate is 1 - accuracy for the category.
	ErrorRate float64 `json:"error_rate"`

	// IncorrectStreak reports whether a run of consecutive incorrect
	// completions was detected at any point in the category sequence.
	IncorrectStreak bool `json:"incorrect_streak"`

	// RecommendedFocus is the suggested remediation tier.
	RecommendedFocus string `json:"recommended_focus"`
}

// WeakAreaAnalysis buckets categories by error rate.
type WeakAreaAnalysis struct {
	// Critical lists categories with error rate above 0.6, worst first.
	Critical []WeakArea `json:"critical"`

	// Improving lists categories with error rate in (0.2, 0.6].
	Improving []WeakArea `json:"improving"`

	// Mastered lists categories with error rate below 0.2.
	Mastered []WeakArea `json:"mastered"`
}

// ProductivityInsights captures productivity structure and risk signals.
type ProductivityInsights struct {
	// PeakHours lists every hour scoring within 85% of the best hour,
	// ascending.
	PeakHours []int `json:"peak_hours"`

	// WeeklyTrend has one entry per ISO week present in the data,
	// oldest first.
	WeeklyTrend []WeekTrend `json:"weekly_trend"`

	// Burnout is the rule-based risk assessment over the trailing 7 days.
	Burnout BurnoutAssessment `json:"burnout"`

	// EfficiencyScore is min((correct/hour)/10, 1); 0 with no time logged.
	EfficiencyScore float64 `json:"efficiency_score"`

	// EnergyByWeekday maps weekday to an energy estimate in [0,1].
	EnergyByWeekday map[time.Weekday]float64 `json:"energy_by_weekday"`

	// OptimalBreakMinutes estimates the session length before a break
	// pays off, clamped to [15, 90]. Zero with no data.
	OptimalBreakMinutes int `json:"optimal_break_minutes"`
}

// WeekTrend is one week's entry in the productivity trend series.
type WeekTrend struct {
	WeekStart      time.Time `json:"week_start"`
	HoursStudied   float64   `json:"hours_studied"`
	TasksCompleted int       `json:"tasks_completed"`
	Accuracy       float64   `json:"accuracy"`
	Productivity   float64   `json:"productivity"`
}

// BurnoutAssessment is the rule-based overwork classification.
type BurnoutAssessment struct {
	// Level is one of BurnoutLow, BurnoutMedium, BurnoutHigh.
	Level string `json:"level"`

	// Indicators lists the triggered risk signals.
	Indicators []string `json:"indicators"`

	// RestDaysNeeded is 2 for high risk, otherwise 0.
	RestDaysNeeded int `json:"rest_days_needed"`

	// Recommendations holds fixed guidance for the level. Empty for low risk.
	Recommendations []string `json:"recommendations"`
}
