package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/studypulse/internal/study"
)

// DefaultRecencyDecay is the per-hour decay rate applied to hourly
// productivity weights. Tunable via configuration.
const DefaultRecencyDecay = 0.05

// weeklySmoothingFactor is the first-order exponential smoothing factor
// for the weekly-progress series.
const weeklySmoothingFactor = 0.2

// AnalyzePatterns computes time-of-day, weekday, category, and weekly
// study patterns from events. now and loc must be the same injected clock
// values used by every other component.
func AnalyzePatterns(events []study.CompletionEvent, now time.Time, loc *time.Location, recencyDecay float64) StudyPatterns {
	patterns := StudyPatterns{
		TimeDistribution:   make(map[string]float64),
		HourlyProductivity: make(map[int]float64),
		Categories:         make(map[string]CategoryPerformance),
		WeeklyProgress:     []WeekProgress{},
	}

	if len(events) == 0 {
		return patterns
	}

	patterns.TimeDistribution = timeDistribution(events, loc)
	patterns.HourlyProductivity = hourlyProductivity(events, now, loc, recencyDecay)
	patterns.PeakHour = peakHour(patterns.HourlyProductivity)
	patterns.PeakDay = peakDay(events, loc)
	patterns.Categories = categoryPerformance(events)
	patterns.WeeklyProgress = weeklyProgress(events, loc)
	patterns.FocusScore = focusScore(events)
	patterns.ImprovementTrend = improvementTrend(events)
	patterns.Consistency = consistency(events, loc, patterns.ImprovementTrend)

	return patterns
}

// daySegment maps an hour-of-day to its fixed segment key.
func daySegment(hour int) string {
	switch {
	case hour >= 4 && hour <= 7:
		return SegmentEarlyMorning
	case hour >= 8 && hour <= 11:
		return SegmentMorning
	case hour >= 12 && hour <= 16:
		return SegmentAfternoon
	case hour >= 17 && hour <= 21:
		return SegmentEvening
	default:
		return SegmentNight
	}
}

// timeDistribution partitions study minutes into the five day segments
// and normalizes to fractions summing to 1. Returns an empty map when no
// minutes were logged.
func timeDistribution(events []study.CompletionEvent, loc *time.Location) map[string]float64 {
	minutes := make(map[string]int)
	total := 0
	for _, ev := range events {
		seg := daySegment(ev.Timestamp.In(loc).Hour())
		minutes[seg] += ev.MinutesSpent
		total += ev.MinutesSpent
	}

	dist := make(map[string]float64)
	if total == 0 {
		return dist
	}
	for seg, m := range minutes {
		dist[seg] = float64(m) / float64(total)
	}
	return dist
}

// categoryPerformance blends raw accuracy (90%) with recency-weighted
// accuracy (10%) per category. The recency weight for an event at
// position fraction p within the category's chronological sequence is
// exp(-1.5 * (1 - p)), so the newest event weighs the most.
func categoryPerformance(events []study.CompletionEvent) map[string]CategoryPerformance {
	perf := make(map[string]CategoryPerformance)

	for category, group := range GroupBy(events, CategoryKey) {
		ordered := study.SortByTime(group)
		raw := accuracy(ordered)

		var weightSum, weightedCorrect float64
		n := len(ordered)
		for i, ev := range ordered {
			posFraction := 1.0
			if n > 1 {
				posFraction = float64(i) / float64(n-1)
			}
			w := math.Exp(-1.5 * (1 - posFraction))
			weightSum += w
			if ev.Correct {
				weightedCorrect += w
			}
		}
		recency := 0.0
		if weightSum > 0 {
			recency = weightedCorrect / weightSum
		}

		perf[category] = CategoryPerformance{
			Accuracy:        raw,
			RecencyWeighted: recency,
			Score:           clamp(raw*0.9+recency*0.1, 0, 1),
			TotalMinutes:    totalMinutes(ordered),
			Events:          n,
		}
	}
	return perf
}

// weeklyProgress groups correct completions by ISO week and applies
// first-order exponential smoothing, seeded with the first week's count.
func weeklyProgress(events []study.CompletionEvent, loc *time.Location) []WeekProgress {
	groups := GroupBy(events, WeekKey(loc))
	weeks := sortedWeeks(groups)

	progress := make([]WeekProgress, 0, len(weeks))
	var smoothed float64
	for i, week := range weeks {
		raw := countCorrect(groups[week])
		if i == 0 {
			smoothed = float64(raw)
		} else {
			smoothed = weeklySmoothingFactor*float64(raw) + (1-weeklySmoothingFactor)*smoothed
		}
		progress = append(progress, WeekProgress{
			WeekStart:    week,
			CorrectCount: raw,
			Smoothed:     smoothed,
		})
	}
	return progress
}

// hourlyProductivity scores each hour-of-day bucket by accuracy and mean
// session length, decays the score by how long ago the bucket was last
// active, and normalizes the weights to sum to 1.
func hourlyProductivity(events []study.CompletionEvent, now time.Time, loc *time.Location, recencyDecay float64) map[int]float64 {
	if recencyDecay <= 0 {
		recencyDecay = DefaultRecencyDecay
	}

	scores := make(map[int]float64)
	var sum float64
	for hour, group := range GroupBy(events, HourKey(loc)) {
		meanMinutes := float64(totalMinutes(group)) / float64(len(group))
		base := accuracy(group)*0.6 + math.Min(meanMinutes/60, 1)*0.4

		var last time.Time
		for _, ev := range group {
			if ev.Timestamp.After(last) {
				last = ev.Timestamp
			}
		}
		hoursSince := now.Sub(last).Hours()
		if hoursSince < 0 {
			hoursSince = 0
		}
		score := base * math.Exp(-recencyDecay*hoursSince)
		scores[hour] = score
		sum += score
	}

	weights := make(map[int]float64)
	if sum == 0 {
		return weights
	}
	for hour, score := range scores {
		weights[hour] = score / sum
	}
	return weights
}

// peakHour returns the hour with the highest productivity weight. Ties
// break toward the earlier hour.
func peakHour(weights map[int]float64) int {
	best, bestHour := -1.0, 0
	for hour, w := range weights {
		if w > best || (w == best && hour < bestHour) {
			best = w
			bestHour = hour
		}
	}
	return bestHour
}

// peakDay returns the weekday with the highest day score:
// accuracy*0.7 + min(totalMinutes/120, 1)*0.3. Ties break toward the
// earlier weekday.
func peakDay(events []study.CompletionEvent, loc *time.Location) time.Weekday {
	best := -1.0
	bestDay := time.Sunday
	for day := time.Sunday; day <= time.Saturday; day++ {
		var group []study.CompletionEvent
		for _, ev := range events {
			if ev.Timestamp.In(loc).Weekday() == day {
				group = append(group, ev)
			}
		}
		if len(group) == 0 {
			continue
		}
		score := accuracy(group)*0.7 + math.Min(float64(totalMinutes(group))/120, 1)*0.3
		if score > best {
			best = score
			bestDay = day
		}
	}
	return bestDay
}

// focusScore blends session-length stability with overall accuracy.
func focusScore(events []study.CompletionEvent) float64 {
	lengths := make([]float64, len(events))
	for i, ev := range events {
		lengths[i] = float64(ev.MinutesSpent)
	}
	_, variance := meanVariance(lengths)
	stability := 1 - math.Min(variance/400, 1)
	return 0.5*stability + 0.5*accuracy(events)
}

// improvementTrend compares second-half accuracy to first-half accuracy
// over the chronological sequence, clamped to [-0.3, 0.3]. Returns a
// neutral 0 with fewer than 10 events.
func improvementTrend(events []study.CompletionEvent) float64 {
	if len(events) < 10 {
		return 0
	}
	ordered := study.SortByTime(events)
	mid := len(ordered) / 2
	return clamp(accuracy(ordered[mid:])-accuracy(ordered[:mid]), -0.3, 0.3)
}

// consistency measures how evenly activity spreads across study days:
// 1 - min(variance(dailyCounts)/(mean+1), 1), blended 80/20 with the
// improvement trend rescaled from [-0.3, 0.3] into [0, 1].
func consistency(events []study.CompletionEvent, loc *time.Location, trend float64) float64 {
	if len(events) == 0 {
		return 0
	}

	groups := GroupBy(events, DayKey(loc))
	counts := make([]float64, 0, len(groups))
	for _, group := range groups {
		counts = append(counts, float64(len(group)))
	}
	mean, variance := meanVariance(counts)
	base := 1 - math.Min(variance/(mean+1), 1)

	trendTerm := (clamp(trend, -0.3, 0.3) + 0.3) / 0.6
	return clamp(0.8*base+0.2*trendTerm, 0, 1)
}

// IdentifyWeakAreas ranks categories by error rate and buckets them into
// critical, improving, and mastered tiers.
func IdentifyWeakAreas(events []study.CompletionEvent) WeakAreaAnalysis {
	analysis := WeakAreaAnalysis{
		Critical:  []WeakArea{},
		Improving: []WeakArea{},
		Mastered:  []WeakArea{},
	}

	var areas []WeakArea
	for category, group := range GroupBy(events, CategoryKey) {
		ordered := study.SortByTime(group)
		errorRate := 1 - accuracy(ordered)
		area := WeakArea{
			Category:        category,
			ErrorRate:       errorRate,
			IncorrectStreak: hasIncorrectStreak(ordered),
		}
		area.RecommendedFocus = recommendedFocus(area)
		areas = append(areas, area)
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].ErrorRate != areas[j].ErrorRate {
			return areas[i].ErrorRate > areas[j].ErrorRate
		}
		return areas[i].Category < areas[j].Category
	})

	for _, area := range areas {
		switch {
		case area.ErrorRate > 0.6:
			analysis.Critical = append(analysis.Critical, area)
		case area.ErrorRate < 0.2:
			analysis.Mastered = append(analysis.Mastered, area)
		default:
			analysis.Improving = append(analysis.Improving, area)
		}
	}
	return analysis
}

// Flagged returns the weak areas that merit attention (critical first,
// then improving), capped at the four worst. Mastered categories are
// never flagged.
func (a WeakAreaAnalysis) Flagged() []WeakArea {
	flagged := make([]WeakArea, 0, 4)
	for _, area := range a.Critical {
		if len(flagged) == 4 {
			return flagged
		}
		flagged = append(flagged, area)
	}
	for _, area := range a.Improving {
		if len(flagged) == 4 {
			return flagged
		}
		flagged = append(flagged, area)
	}
	return flagged
}

// hasIncorrectStreak reports whether any sliding 3-event window over the
// chronological sequence is entirely incorrect. Partial windows at the
// tail count, so a closing run of misses is flagged early.
func hasIncorrectStreak(ordered []study.CompletionEvent) bool {
	n := len(ordered)
	for i := 0; i < n; i++ {
		end := i + 3
		if end > n {
			end = n
		}
		allIncorrect := true
		for _, ev := range ordered[i:end] {
			if ev.Correct {
				allIncorrect = false
				break
			}
		}
		if allIncorrect {
			return true
		}
	}
	return false
}

// recommendedFocus assigns the remediation tier for a weak area.
func recommendedFocus(area WeakArea) string {
	switch {
	case area.IncorrectStreak || area.ErrorRate > 0.6:
		return FocusFundamentals
	case area.ErrorRate >= 0.35:
		return FocusTargeted
	default:
		return FocusLightReview
	}
}
