package recommend

import "fmt"

// lowRecentAccuracyThreshold triggers the accuracy warning.
const lowRecentAccuracyThreshold = 0.7

// lowConsistencyThreshold triggers the consistency-building tip.
const lowConsistencyThreshold = 0.6

// LowRecentAccuracy warns when accuracy over the trailing 20 events drops
// below 70%.
func LowRecentAccuracy(ctx *Context) []Recommendation {
	if ctx.RecentEvents == 0 || ctx.RecentAccuracy >= lowRecentAccuracyThreshold {
		return nil
	}
	return []Recommendation{{
		ID:       "recent_accuracy_drop",
		Priority: PriorityHigh,
		Title:    "Slow down and review recent mistakes",
		Description: fmt.Sprintf(
			"Your accuracy over the last %d tasks is %.0f%%. "+
				"Revisit the tasks you missed before moving on to new material.",
			ctx.RecentEvents, ctx.RecentAccuracy*100,
		),
		Category:  "accuracy",
		Reasoning: "trailing-20-event accuracy fell below 70%",
	}}
}

// CircadianAlignment suggests scheduling sessions at the observed peak
// hour and weekday.
func CircadianAlignment(ctx *Context) []Recommendation {
	if !ctx.HasPeak {
		return nil
	}
	return []Recommendation{{
		ID:       "circadian_alignment",
		Priority: PriorityMedium,
		Title:    fmt.Sprintf("Schedule sessions around %02d:00", ctx.PeakHour),
		Description: fmt.Sprintf(
			"You perform best around %02d:00, especially on %ss. "+
				"Plan your hardest material for that window.",
			ctx.PeakHour, ctx.PeakDay,
		),
		Category:  "scheduling",
		Reasoning: "hourly productivity distribution argmax and peak-day score",
	}}
}

// WeakAreaFocus emits one recommendation per flagged weak area, worst
// first. Areas with an incorrect streak rank as high priority.
func WeakAreaFocus(ctx *Context) []Recommendation {
	var recs []Recommendation
	for _, area := range ctx.WeakAreas {
		priority := PriorityMedium
		if area.IncorrectStreak || area.ErrorRate > 0.6 {
			priority = PriorityHigh
		}
		recs = append(recs, Recommendation{
			ID:       "weak_area_" + area.Category,
			Priority: priority,
			Title:    fmt.Sprintf("Strengthen %s", area.Category),
			Description: fmt.Sprintf(
				"You are missing %.0f%% of %s tasks. "+
					"Short, focused sessions on fundamentals close gaps fastest.",
				area.ErrorRate*100, area.Category,
			),
			Category:  "weak_area",
			Reasoning: fmt.Sprintf("category error rate %.2f from weak-area ranking", area.ErrorRate),
		})
	}
	return recs
}

// GoalPace nudges when the week's logged minutes are under half the
// configured weekly target.
func GoalPace(ctx *Context) []Recommendation {
	if ctx.TotalEvents == 0 || ctx.WeeklyTargetMinutes <= 0 {
		return nil
	}
	if ctx.WeekMinutes*2 >= ctx.WeeklyTargetMinutes {
		return nil
	}
	return []Recommendation{{
		ID:       "goal_pace",
		Priority: PriorityLow,
		Title:    "Catch up on this week's goal",
		Description: fmt.Sprintf(
			"You have logged %d of your %d-minute weekly target. "+
				"A couple of short sessions will put you back on pace.",
			ctx.WeekMinutes, ctx.WeeklyTargetMinutes,
		),
		Category:  "goals",
		Reasoning: "weekly minutes below half of the configured target",
	}}
}

// ConsistencyBoost nudges toward a steadier routine when the consistency
// score falls below 0.6.
func ConsistencyBoost(ctx *Context) []Recommendation {
	if ctx.TotalEvents == 0 || ctx.Consistency >= lowConsistencyThreshold {
		return nil
	}
	return []Recommendation{{
		ID:       "consistency_boost",
		Priority: PriorityMedium,
		Title:    "Build a steadier study routine",
		Description: "Your study activity is unevenly spread across days. " +
			"A short daily session beats occasional long ones for retention.",
		Category:  "consistency",
		Reasoning: fmt.Sprintf("daily-count variance consistency score %.2f below 0.60", ctx.Consistency),
	}}
}
