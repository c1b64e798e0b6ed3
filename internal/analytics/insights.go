package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/studypulse/internal/study"
)

// BurnoutThresholds hold the rule cutoffs for the burnout classification.
type BurnoutThresholds struct {
	// MaxWeeklyHours triggers the overwork indicator when exceeded.
	MaxWeeklyHours float64

	// MinAccuracy triggers the under-performance indicator when recent
	// accuracy falls below it.
	MinAccuracy float64

	// MinConsistency triggers the erratic-schedule indicator when recent
	// consistency falls below it.
	MinConsistency float64
}

// DefaultBurnoutThresholds are the standard burnout rule cutoffs.
func DefaultBurnoutThresholds() BurnoutThresholds {
	return BurnoutThresholds{
		MaxWeeklyHours: 25,
		MinAccuracy:    0.65,
		MinConsistency: 0.5,
	}
}

// highBurnoutRecommendations is the fixed guidance for high risk.
var highBurnoutRecommendations = []string{
	"Take two full rest days before your next session",
	"Cut session length in half for the rest of the week",
	"Switch to light review material until accuracy recovers",
}

// mediumBurnoutRecommendations is the fixed guidance for medium risk.
var mediumBurnoutRecommendations = []string{
	"Keep sessions under an hour for the next few days",
	"Schedule at least one full rest day this week",
}

// AnalyzeInsights computes peak hours, the weekly productivity trend,
// burnout risk, efficiency, per-weekday energy, and the optimal break
// estimate.
func AnalyzeInsights(events []study.CompletionEvent, now time.Time, loc *time.Location, thresholds BurnoutThresholds) ProductivityInsights {
	insights := ProductivityInsights{
		PeakHours:       []int{},
		WeeklyTrend:     []WeekTrend{},
		EnergyByWeekday: make(map[time.Weekday]float64),
		Burnout: BurnoutAssessment{
			Level:           BurnoutLow,
			Indicators:      []string{},
			Recommendations: []string{},
		},
	}

	if len(events) == 0 {
		return insights
	}

	insights.PeakHours = peakHours(events, loc)
	insights.WeeklyTrend = weeklyTrend(events, loc)
	insights.Burnout = assessBurnout(events, now, loc, thresholds)
	insights.EfficiencyScore = efficiencyScore(events)
	insights.EnergyByWeekday = energyByWeekday(events, loc)
	insights.OptimalBreakMinutes = optimalBreakMinutes(events)

	return insights
}

// peakHours scores each hour by accuracy*0.7 + min(totalMinutes/90, 0.3)
// and returns every hour within 85% of the best score, ascending. When no
// hour scores above zero there is no peak to report and the list is empty.
func peakHours(events []study.CompletionEvent, loc *time.Location) []int {
	scores := make(map[int]float64)
	best := 0.0
	for hour, group := range GroupBy(events, HourKey(loc)) {
		score := accuracy(group)*0.7 + math.Min(float64(totalMinutes(group))/90, 0.3)
		scores[hour] = score
		if score > best {
			best = score
		}
	}

	hours := []int{}
	if best == 0 {
		return hours
	}
	for hour, score := range scores {
		if score >= 0.85*best {
			hours = append(hours, hour)
		}
	}
	sort.Ints(hours)
	return hours
}

// weeklyTrend builds one entry per ISO week present in the data, oldest
// first, each scored on its own subset.
func weeklyTrend(events []study.CompletionEvent, loc *time.Location) []WeekTrend {
	groups := GroupBy(events, WeekKey(loc))
	weeks := sortedWeeks(groups)

	trend := make([]WeekTrend, 0, len(weeks))
	for _, week := range weeks {
		group := groups[week]
		trend = append(trend, WeekTrend{
			WeekStart:      week,
			HoursStudied:   float64(totalMinutes(group)) / 60,
			TasksCompleted: countCorrect(group),
			Accuracy:       accuracy(group),
			Productivity:   weeklyProductivity(group, loc),
		})
	}
	return trend
}

// assessBurnout classifies burnout risk over the trailing 7 days.
func assessBurnout(events []study.CompletionEvent, now time.Time, loc *time.Location, thresholds BurnoutThresholds) BurnoutAssessment {
	assessment := BurnoutAssessment{
		Level:           BurnoutLow,
		Indicators:      []string{},
		Recommendations: []string{},
	}

	recent := study.FilterSince(events, now.AddDate(0, 0, -7))
	if len(recent) == 0 {
		return assessment
	}

	hours := float64(totalMinutes(recent)) / 60
	if hours > thresholds.MaxWeeklyHours {
		assessment.Indicators = append(assessment.Indicators, "weekly study time exceeds sustainable load")
	}
	if accuracy(recent) < thresholds.MinAccuracy {
		assessment.Indicators = append(assessment.Indicators, "recent accuracy below sustainable threshold")
	}
	if consistency(recent, loc, improvementTrend(recent)) < thresholds.MinConsistency {
		assessment.Indicators = append(assessment.Indicators, "erratic session scheduling")
	}

	switch {
	case len(assessment.Indicators) >= 2:
		assessment.Level = BurnoutHigh
		assessment.RestDaysNeeded = 2
		assessment.Recommendations = append(assessment.Recommendations, highBurnoutRecommendations...)
	case len(assessment.Indicators) == 1:
		assessment.Level = BurnoutMedium
		assessment.Recommendations = append(assessment.Recommendations, mediumBurnoutRecommendations...)
	}
	return assessment
}

// efficiencyScore is min((correct completions per hour)/10, 1), 0 when no
// time was logged.
func efficiencyScore(events []study.CompletionEvent) float64 {
	hours := float64(totalMinutes(events)) / 60
	if hours == 0 {
		return 0
	}
	return math.Min(float64(countCorrect(events))/hours/10, 1)
}

// energyByWeekday estimates per-weekday energy as
// accuracy*0.7 + min(hoursForDay/3, 1)*0.3.
func energyByWeekday(events []study.CompletionEvent, loc *time.Location) map[time.Weekday]float64 {
	energy := make(map[time.Weekday]float64)
	for day, group := range GroupBy(events, WeekdayKey(loc)) {
		hours := float64(totalMinutes(group)) / 60
		energy[day] = accuracy(group)*0.7 + math.Min(hours/3, 1)*0.3
	}
	return energy
}

// optimalBreakMinutes buckets events by session length rounded down to the
// nearest 15 minutes, picks the bucket with the highest accuracy, and
// clamps the bucket's minute value to [15, 90].
func optimalBreakMinutes(events []study.CompletionEvent) int {
	if len(events) == 0 {
		return 0
	}

	buckets := GroupBy(events, func(ev study.CompletionEvent) int {
		return ev.MinutesSpent / 15 * 15
	})

	bestBucket, bestAccuracy := -1, -1.0
	for bucket, group := range buckets {
		acc := accuracy(group)
		if acc > bestAccuracy || (acc == bestAccuracy && bucket < bestBucket) {
			bestAccuracy = acc
			bestBucket = bucket
		}
	}

	if bestBucket < 15 {
		return 15
	}
	if bestBucket > 90 {
		return 90
	}
	return bestBucket
}
