package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/studypulse/internal/analytics"
	"github.com/blackwell-systems/studypulse/internal/config"
	"github.com/blackwell-systems/studypulse/internal/output"
	"github.com/blackwell-systems/studypulse/internal/planner"
	"github.com/blackwell-systems/studypulse/internal/store"
	"github.com/blackwell-systems/studypulse/internal/study"
)

// runContext bundles everything a report-producing command needs: loaded
// config, the resolved time zone, the engine, and the event list.
type runContext struct {
	cfg    *config.Config
	loc    *time.Location
	engine *analytics.Engine
	events []study.CompletionEvent
	goals  study.Goals
}

// newRunContext loads config and events and builds the analytics engine.
// When eventsFile is non-empty, events come from that JSONL file instead
// of the database; a missing database is treated as no events.
func newRunContext(eventsFile string) (*runContext, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
	output.SetWidth(cfg.Output.Width)

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolving timezone %q: %w", cfg.Timezone, err)
	}

	events, err := loadEvents(cfg, eventsFile)
	if err != nil {
		return nil, err
	}

	engine := analytics.NewEngine(study.SystemClock{}, loc, analytics.Options{
		WindowDays:   cfg.WindowDays,
		RecencyDecay: cfg.Analytics.RecencyDecay,
		Burnout: analytics.BurnoutThresholds{
			MaxWeeklyHours: cfg.Burnout.MaxWeeklyHours,
			MinAccuracy:    cfg.Burnout.MinAccuracy,
			MinConsistency: cfg.Burnout.MinConsistency,
		},
		Source: planner.NewFileSource(cfg.Planner.SuggestionsPath),
	})

	return &runContext{
		cfg:    cfg,
		loc:    loc,
		engine: engine,
		events: events,
		goals: study.Goals{
			WeeklyMinutesTarget:  cfg.Goals.WeeklyMinutes,
			MonthlyMinutesTarget: cfg.Goals.MonthlyMinutes,
			TargetCategories:     cfg.Goals.Categories,
		},
	}, nil
}

// loadEvents reads events from a JSONL file when given, otherwise from
// the SQLite store. A database that does not exist yet yields no events.
func loadEvents(cfg *config.Config, eventsFile string) ([]study.CompletionEvent, error) {
	if eventsFile != "" {
		events, err := study.ParseEventsFile(eventsFile)
		if err != nil {
			return nil, fmt.Errorf("reading events file: %w", err)
		}
		return events, nil
	}

	dbPath := config.DBPath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	events, err := db.AllEvents()
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}

// generate runs the analytics engine over the loaded events.
func (rc *runContext) generate() (*analytics.Report, error) {
	report, err := rc.engine.Generate(context.Background(), rc.events, study.ProgressSnapshot{}, rc.goals)
	if err != nil {
		return nil, fmt.Errorf("generating analytics: %w", err)
	}
	return report, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
