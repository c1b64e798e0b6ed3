package analytics

import (
	"testing"
	"time"

	"github.com/blackwell-systems/studypulse/internal/study"
)

func TestBurnout_HighRisk(t *testing.T) {
	// 8 sessions in the trailing 7 days totaling 30 hours at 50% accuracy.
	now := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	var events []study.CompletionEvent
	for i := 0; i < 8; i++ {
		events = append(events, study.CompletionEvent{
			Timestamp:    now.AddDate(0, 0, -(i % 6)).Add(-2 * time.Hour),
			MinutesSpent: 225,
			Correct:      i%2 == 0,
			Category:     "math",
		})
	}

	insights := AnalyzeInsights(events, now, time.UTC, DefaultBurnoutThresholds())

	if insights.Burnout.Level != BurnoutHigh {
		t.Errorf("expected high burnout risk, got %q", insights.Burnout.Level)
	}
	if insights.Burnout.RestDaysNeeded != 2 {
		t.Errorf("expected 2 rest days, got %d", insights.Burnout.RestDaysNeeded)
	}
	if len(insights.Burnout.Indicators) < 2 {
		t.Errorf("expected at least 2 indicators, got %v", insights.Burnout.Indicators)
	}
	if len(insights.Burnout.Recommendations) == 0 {
		t.Error("expected non-empty recommendations for high risk")
	}
}

func TestBurnout_LowRisk(t *testing.T) {
	now := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	events := []study.CompletionEvent{
		{Timestamp: now.AddDate(0, 0, -1), MinutesSpent: 60, Correct: true, Category: "math"},
		{Timestamp: now.AddDate(0, 0, -2), MinutesSpent: 60, Correct: true, Category: "math"},
	}

	insights := AnalyzeInsights(events, now, time.UTC, DefaultBurnoutThresholds())

	if insights.Burnout.Level != BurnoutLow {
		t.Errorf("expected low burnout risk, got %q", insights.Burnout.Level)
	}
	if insights.Burnout.RestDaysNeeded != 0 {
		t.Errorf("expected 0 rest days, got %d", insights.Burnout.RestDaysNeeded)
	}
	if len(insights.Burnout.Recommendations) != 0 {
		t.Errorf("expected no recommendations for low risk, got %v", insights.Burnout.Recommendations)
	}
}

func TestPeakHours_NearMaxIncluded(t *testing.T) {
	events := []study.CompletionEvent{
		ev("2024-03-08T09:00:00Z", 45, true, "math"),
		ev("2024-03-09T09:30:00Z", 45, true, "math"),
		ev("2024-03-08T10:00:00Z", 45, true, "math"),
		ev("2024-03-09T10:30:00Z", 45, true, "math"),
		ev("2024-03-09T22:00:00Z", 15, false, "math"),
	}

	hours := peakHours(events, time.UTC)

	if len(hours) != 2 || hours[0] != 9 || hours[1] != 10 {
		t.Errorf("expected peak hours [9 10], got %v", hours)
	}
}

func TestPeakHours_NoPositiveScore(t *testing.T) {
	// All incorrect with no time logged scores every hour at zero; no
	// hour qualifies as a peak.
	events := []study.CompletionEvent{
		ev("2024-03-08T09:00:00Z", 0, false, "math"),
		ev("2024-03-09T14:00:00Z", 0, false, "math"),
	}

	if hours := peakHours(events, time.UTC); len(hours) != 0 {
		t.Errorf("expected no peak hours when every score is zero, got %v", hours)
	}
}

func TestEfficiencyScore(t *testing.T) {
	var events []study.CompletionEvent
	for i := 0; i < 10; i++ {
		events = append(events, ev("2024-03-08T09:00:00Z", 6, true, "math"))
	}

	// 10 correct in one hour: (10/1)/10 caps at exactly 1.
	if got := efficiencyScore(events); got != 1 {
		t.Errorf("expected efficiency 1, got %f", got)
	}

	zero := []study.CompletionEvent{ev("2024-03-08T09:00:00Z", 0, true, "math")}
	if got := efficiencyScore(zero); got != 0 {
		t.Errorf("expected efficiency 0 with no time logged, got %f", got)
	}
}

func TestOptimalBreakMinutes(t *testing.T) {
	cases := []struct {
		name   string
		events []study.CompletionEvent
		want   int
	}{
		{
			name: "best bucket wins",
			events: []study.CompletionEvent{
				ev("2024-03-08T09:00:00Z", 50, false, "math"),
				ev("2024-03-08T10:00:00Z", 25, true, "math"),
			},
			want: 15, // 25 min rounds down to the 15 bucket
		},
		{
			name: "clamped to 90",
			events: []study.CompletionEvent{
				ev("2024-03-08T09:00:00Z", 125, true, "math"),
			},
			want: 90,
		},
		{
			name: "clamped up to 15",
			events: []study.CompletionEvent{
				ev("2024-03-08T09:00:00Z", 7, true, "math"),
			},
			want: 15,
		},
		{
			name:   "no data",
			events: nil,
			want:   0,
		},
	}

	for _, tc := range cases {
		if got := optimalBreakMinutes(tc.events); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestEnergyByWeekday(t *testing.T) {
	// Friday: perfect accuracy and 3+ hours -> energy 1.0.
	events := []study.CompletionEvent{
		ev("2024-03-08T09:00:00Z", 120, true, "math"),
		ev("2024-03-08T14:00:00Z", 90, true, "math"),
	}

	energy := energyByWeekday(events, time.UTC)
	if got := energy[time.Friday]; got != 1 {
		t.Errorf("expected full energy on Friday, got %f", got)
	}
}

func TestWeeklyTrend_OnePerWeek(t *testing.T) {
	events := []study.CompletionEvent{
		ev("2024-01-02T10:00:00Z", 60, true, "math"),
		ev("2024-01-09T10:00:00Z", 60, false, "math"),
	}

	trend := weeklyTrend(events, time.UTC)
	if len(trend) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(trend))
	}
	if trend[0].TasksCompleted != 1 || trend[1].TasksCompleted != 0 {
		t.Errorf("expected correct counts [1 0], got [%d %d]",
			trend[0].TasksCompleted, trend[1].TasksCompleted)
	}
	if trend[0].HoursStudied != 1 {
		t.Errorf("expected 1 hour studied in first week, got %f", trend[0].HoursStudied)
	}
}

func TestAnalyzeInsights_Empty(t *testing.T) {
	now := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	insights := AnalyzeInsights(nil, now, time.UTC, DefaultBurnoutThresholds())

	if insights.PeakHours == nil || len(insights.PeakHours) != 0 {
		t.Errorf("expected empty non-nil peak hours, got %v", insights.PeakHours)
	}
	if insights.WeeklyTrend == nil || len(insights.WeeklyTrend) != 0 {
		t.Errorf("expected empty non-nil weekly trend, got %v", insights.WeeklyTrend)
	}
	if insights.EnergyByWeekday == nil {
		t.Error("expected non-nil energy map")
	}
	if insights.Burnout.Level != BurnoutLow {
		t.Errorf("expected low burnout for empty input, got %q", insights.Burnout.Level)
	}
	if insights.OptimalBreakMinutes != 0 {
		t.Errorf("expected 0 break minutes for empty input, got %d", insights.OptimalBreakMinutes)
	}
}
