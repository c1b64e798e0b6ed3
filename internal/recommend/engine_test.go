package recommend

import (
	"errors"
	"testing"
)

// stubSource returns a fixed set of suggestions.
type stubSource struct {
	suggestions []ExternalSuggestion
	err         error
}

func (s stubSource) Suggestions(*Context) ([]ExternalSuggestion, error) {
	return s.suggestions, s.err
}

// panicSource panics when queried.
type panicSource struct{}

func (panicSource) Suggestions(*Context) ([]ExternalSuggestion, error) {
	panic("planner crashed")
}

func TestRun_DedupFirstOccurrenceWins(t *testing.T) {
	source := stubSource{suggestions: []ExternalSuggestion{
		{Type: "consistency_boost", Priority: 1, Title: "Planner version"},
	}}
	engine := NewEngine(source)

	// Low consistency fires the built-in consistency_boost rule too.
	ctx := &Context{TotalEvents: 20, RecentEvents: 20, RecentAccuracy: 0.9, Consistency: 0.3}
	recs := engine.Run(ctx)

	matches := 0
	for _, r := range recs {
		if r.ID == "consistency_boost" {
			matches++
			if r.Title != "Planner version" {
				t.Errorf("expected first occurrence (planner) to win, got %q", r.Title)
			}
		}
	}
	if matches != 1 {
		t.Errorf("expected exactly one consistency_boost, got %d", matches)
	}
}

func TestRun_SortedByPriority(t *testing.T) {
	source := stubSource{suggestions: []ExternalSuggestion{
		{Type: "low_tip", Priority: 9, Title: "Routine tip"},
		{Type: "urgent", Priority: 1, Title: "Urgent"},
	}}
	engine := NewEngine(source)

	ctx := &Context{
		TotalEvents:    30,
		RecentEvents:   20,
		RecentAccuracy: 0.5, // fires the high-priority accuracy warning
		Consistency:    0.9,
		HasPeak:        true,
		PeakHour:       9,
	}
	recs := engine.Run(ctx)

	if len(recs) < 3 {
		t.Fatalf("expected at least 3 recommendations, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority < recs[i-1].Priority {
			t.Errorf("expected non-decreasing priority, got %+v", recs)
		}
	}
	if recs[0].Priority != PriorityHigh {
		t.Errorf("expected a high-priority recommendation first, got %+v", recs[0])
	}
}

func TestRun_ExternalCap(t *testing.T) {
	var many []ExternalSuggestion
	for i := 0; i < 8; i++ {
		many = append(many, ExternalSuggestion{Type: string(rune('a' + i)), Priority: 3, Title: "t"})
	}
	engine := NewEngine(stubSource{suggestions: many})

	recs := engine.Run(&Context{})
	if len(recs) != maxExternalSuggestions {
		t.Errorf("expected external suggestions capped at %d, got %d", maxExternalSuggestions, len(recs))
	}
}

func TestRun_SourceErrorSwallowed(t *testing.T) {
	engine := NewEngine(stubSource{err: errors.New("unavailable")})

	ctx := &Context{TotalEvents: 20, RecentEvents: 20, RecentAccuracy: 0.9, Consistency: 0.3}
	recs := engine.Run(ctx)

	if len(recs) == 0 {
		t.Error("expected rule output despite failing source")
	}
}

func TestRun_SourcePanicSwallowed(t *testing.T) {
	engine := NewEngine(panicSource{})

	ctx := &Context{TotalEvents: 20, RecentEvents: 20, RecentAccuracy: 0.9, Consistency: 0.3}
	recs := engine.Run(ctx)

	if len(recs) == 0 {
		t.Error("expected rule output despite panicking source")
	}
}

func TestMapExternalPriority(t *testing.T) {
	cases := map[int]int{
		1:  PriorityHigh,
		2:  PriorityMedium,
		3:  PriorityLow,
		0:  PriorityLow,
		42: PriorityLow,
	}
	for external, want := range cases {
		if got := MapExternalPriority(external); got != want {
			t.Errorf("priority %d: expected %d, got %d", external, want, got)
		}
	}
}
