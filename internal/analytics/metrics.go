package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/studypulse/internal/study"
)

// AnalyzeMetrics computes scalar performance measures and streak analysis
// for the window. progress supplies the externally-tracked streak; when
// its StreakCount is zero the current streak is derived from events.
func AnalyzeMetrics(events []study.CompletionEvent, progress study.ProgressSnapshot, now time.Time, loc *time.Location) (PerformanceMetrics, StreakAnalysis) {
	metrics := PerformanceMetrics{}
	streak := StreakAnalysis{}

	if len(events) == 0 {
		return metrics, streak
	}

	days := studyDays(events, loc)
	streak.StudyDays = len(days)
	streak.Longest = longestStreak(days)
	if progress.StreakCount > 0 {
		streak.Current = progress.StreakCount
	} else {
		streak.Current = currentStreak(days, now, loc)
	}

	today := dayStart(now, loc)
	week := weekStart(now, loc)
	var weekEvents []study.CompletionEvent
	for _, ev := range events {
		d := dayStart(ev.Timestamp, loc)
		if d.Equal(today) {
			metrics.TodayMinutes += ev.MinutesSpent
		}
		if !d.Before(week) {
			metrics.WeekMinutes += ev.MinutesSpent
			weekEvents = append(weekEvents, ev)
		}
		metrics.TotalMinutes += ev.MinutesSpent
		metrics.TotalPoints += ev.PointsEarned
	}

	metrics.CompletionRate = accuracy(events)
	metrics.WeeklyProductivity = weeklyProductivity(weekEvents, loc)

	return metrics, streak
}

// studyDays returns the distinct calendar days (midnight in loc) with at
// least one event, ascending.
func studyDays(events []study.CompletionEvent, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)
	for _, ev := range events {
		seen[dayStart(ev.Timestamp, loc)] = true
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// currentStreak walks backward day-by-day from today while a study day
// exists, stopping at the first gap.
func currentStreak(days []time.Time, now time.Time, loc *time.Location) int {
	present := make(map[time.Time]bool, len(days))
	for _, d := range days {
		present[d] = true
	}

	streak := 0
	for day := dayStart(now, loc); present[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// longestStreak scans the ascending study-day list for the longest run of
// consecutive calendar days.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		// AddDate comparison instead of a 24h delta so DST transitions
		// do not break a run.
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// weeklyProductivity is the composite score for a week's subset:
// accuracy*0.5 + min(hours/15, 0.3) + consistency*0.2.
func weeklyProductivity(weekEvents []study.CompletionEvent, loc *time.Location) float64 {
	if len(weekEvents) == 0 {
		return 0
	}
	hours := float64(totalMinutes(weekEvents)) / 60
	cons := consistency(weekEvents, loc, improvementTrend(weekEvents))
	return accuracy(weekEvents)*0.5 + math.Min(hours/15, 0.3) + cons*0.2
}
