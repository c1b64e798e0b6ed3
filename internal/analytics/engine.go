package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/studypulse/internal/recommend"
	"github.com/blackwell-systems/studypulse/internal/study"
)

// DefaultWindowDays is the trailing analysis window in calendar days.
const DefaultWindowDays = 90

// recentAccuracyWindow is the number of trailing events the low-accuracy
// recommendation signal considers.
const recentAccuracyWindow = 20

// Options tune the analytics engine. Zero values fall back to defaults.
type Options struct {
	// WindowDays is the trailing window; events older than this are
	// excluded entirely from a report.
	WindowDays int

	// RecencyDecay is the per-hour decay rate for hourly productivity.
	RecencyDecay float64

	// Burnout holds the burnout classification cutoffs.
	Burnout BurnoutThresholds

	// Source optionally supplies externally-generated suggestions.
	// Failures from it never abort report generation.
	Source recommend.Source
}

// Engine is the public entry point of the analytics core. It is stateless
// across invocations; every Generate call is independent and deterministic
// given the same events, goals, and clock reading.
type Engine struct {
	clock study.Clock
	loc   *time.Location
	opts  Options
}

// NewEngine creates an engine with the injected clock and time zone.
// The same location is used for every day and week boundary so that
// "today" and "hour of day" never disagree.
func NewEngine(clock study.Clock, loc *time.Location, opts Options) *Engine {
	if clock == nil {
		clock = study.SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = DefaultWindowDays
	}
	if opts.RecencyDecay <= 0 {
		opts.RecencyDecay = DefaultRecencyDecay
	}
	if opts.Burnout == (BurnoutThresholds{}) {
		opts.Burnout = DefaultBurnoutThresholds()
	}
	return &Engine{clock: clock, loc: loc, opts: opts}
}

// Generate filters events to the trailing window and assembles the
// composite analytics report. An empty window yields a fully-populated
// zero report, never nil sub-structures. The pattern, metric, and insight
// passes read the same immutable input and run concurrently.
func (e *Engine) Generate(ctx context.Context, events []study.CompletionEvent, progress study.ProgressSnapshot, goals study.Goals) (*Report, error) {
	now := e.clock.Now().In(e.loc)
	windowStart := dayStart(now, e.loc).AddDate(0, 0, -e.opts.WindowDays)
	windowed := study.FilterSince(events, windowStart)

	report := &Report{
		GeneratedAt:     now,
		WindowStart:     windowStart,
		TotalEvents:     len(windowed),
		Recommendations: []recommend.Recommendation{},
	}

	if len(windowed) == 0 {
		report.Patterns = AnalyzePatterns(nil, now, e.loc, e.opts.RecencyDecay)
		report.Insights = AnalyzeInsights(nil, now, e.loc, e.opts.Burnout)
		report.WeakAreas = IdentifyWeakAreas(nil)
		return report, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Patterns = AnalyzePatterns(windowed, now, e.loc, e.opts.RecencyDecay)
		report.WeakAreas = IdentifyWeakAreas(windowed)
		return nil
	})
	g.Go(func() error {
		report.Metrics, report.Streak = AnalyzeMetrics(windowed, progress, now, e.loc)
		return nil
	})
	g.Go(func() error {
		report.Insights = AnalyzeInsights(windowed, now, e.loc, e.opts.Burnout)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Recommendations = e.recommendations(report, goals, windowed)
	return report, nil
}

// recommendations assembles the rule context from the computed results
// and runs the recommendation engine.
func (e *Engine) recommendations(report *Report, goals study.Goals, windowed []study.CompletionEvent) []recommend.Recommendation {
	ordered := study.SortByTime(windowed)
	recent := ordered
	if len(recent) > recentAccuracyWindow {
		recent = recent[len(recent)-recentAccuracyWindow:]
	}

	flagged := report.WeakAreas.Flagged()
	spots := make([]recommend.WeakSpot, 0, len(flagged))
	for _, area := range flagged {
		spots = append(spots, recommend.WeakSpot{
			Category:        area.Category,
			ErrorRate:       area.ErrorRate,
			IncorrectStreak: area.IncorrectStreak,
		})
	}

	rctx := &recommend.Context{
		TotalEvents:         len(windowed),
		RecentAccuracy:      accuracy(recent),
		RecentEvents:        len(recent),
		PeakHour:            report.Patterns.PeakHour,
		PeakDay:             report.Patterns.PeakDay,
		HasPeak:             len(windowed) > 0,
		Consistency:         report.Patterns.Consistency,
		WeakAreas:           spots,
		WeekMinutes:         report.Metrics.WeekMinutes,
		WeeklyTargetMinutes: goals.WeeklyMinutesTarget,
	}

	recs := recommend.NewEngine(e.opts.Source).Run(rctx)
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	return recs
}
