package analytics

import (
	"sort"
	"time"

	"github.com/blackwell-systems/studypulse/internal/study"
)

// GroupBy buckets events by the given key function. It never modifies the
// input and always returns a non-nil map.
func GroupBy[K comparable](events []study.CompletionEvent, key func(study.CompletionEvent) K) map[K][]study.CompletionEvent {
	groups := make(map[K][]study.CompletionEvent)
	for _, ev := range events {
		k := key(ev)
		groups[k] = append(groups[k], ev)
	}
	return groups
}

// HourKey buckets by hour-of-day in the given location.
func HourKey(loc *time.Location) func(study.CompletionEvent) int {
	return func(ev study.CompletionEvent) int {
		return ev.Timestamp.In(loc).Hour()
	}
}

// WeekdayKey buckets by weekday in the given location.
func WeekdayKey(loc *time.Location) func(study.CompletionEvent) time.Weekday {
	return func(ev study.CompletionEvent) time.Weekday {
		return ev.Timestamp.In(loc).Weekday()
	}
}

// DayKey buckets by calendar day (midnight in loc).
func DayKey(loc *time.Location) func(study.CompletionEvent) time.Time {
	return func(ev study.CompletionEvent) time.Time {
		return dayStart(ev.Timestamp, loc)
	}
}

// WeekKey buckets by ISO week (Monday midnight in loc).
func WeekKey(loc *time.Location) func(study.CompletionEvent) time.Time {
	return func(ev study.CompletionEvent) time.Time {
		return weekStart(ev.Timestamp, loc)
	}
}

// CategoryKey buckets by the event's free-form category string.
func CategoryKey(ev study.CompletionEvent) string {
	return ev.Category
}

// dayStart returns midnight of t's calendar day in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// weekStart returns the Monday midnight beginning t's ISO week in loc.
func weekStart(t time.Time, loc *time.Location) time.Time {
	day := dayStart(t, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday -> 0, Sunday -> 6
	return day.AddDate(0, 0, -offset)
}

// accuracy returns the fraction of correct events, 0 for an empty slice.
func accuracy(events []study.CompletionEvent) float64 {
	if len(events) == 0 {
		return 0
	}
	correct := 0
	for _, ev := range events {
		if ev.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events))
}

// countCorrect returns the number of correct events.
func countCorrect(events []study.CompletionEvent) int {
	correct := 0
	for _, ev := range events {
		if ev.Correct {
			correct++
		}
	}
	return correct
}

// totalMinutes sums MinutesSpent across events.
func totalMinutes(events []study.CompletionEvent) int {
	total := 0
	for _, ev := range events {
		total += ev.MinutesSpent
	}
	return total
}

// meanVariance returns the mean and population variance of values.
// Both are 0 for an empty slice.
func meanVariance(values []float64) (mean, variance float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, variance
}

// clamp constrains v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sortedWeeks returns the week-start keys of groups in ascending order.
func sortedWeeks(groups map[time.Time][]study.CompletionEvent) []time.Time {
	weeks := make([]time.Time, 0, len(groups))
	for w := range groups {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	return weeks
}
