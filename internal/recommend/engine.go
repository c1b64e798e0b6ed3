package recommend

import "fmt"

// maxExternalSuggestions caps how many planner suggestions are admitted.
const maxExternalSuggestions = 5

// Engine runs the external source (if any) and all registered rules
// against a Context, then dedupes and ranks the combined output.
type Engine struct {
	source Source
	rules  []Rule
}

// NewEngine creates an engine with all built-in rules registered.
// source may be nil.
func NewEngine(source Source) *Engine {
	return &Engine{
		source: source,
		rules: []Rule{
			LowRecentAccuracy,
			CircadianAlignment,
			WeakAreaFocus,
			ConsistencyBoost,
			GoalPace,
		},
	}
}

// Run produces the final recommendation list: external suggestions first,
// then rule output, deduplicated by ID (first occurrence wins) and stably
// sorted by priority.
func (e *Engine) Run(ctx *Context) []Recommendation {
	all := e.externalRecommendations(ctx)
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	return RankByPriority(Dedupe(all))
}

// externalRecommendations maps suggestions from the optional external
// source into the internal shape. Errors and panics from the source are
// swallowed; the rest of the pipeline must never be aborted by it.
func (e *Engine) externalRecommendations(ctx *Context) (recs []Recommendation) {
	if e.source == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			recs = nil
		}
	}()

	suggestions, err := e.source.Suggestions(ctx)
	if err != nil {
		return nil
	}
	if len(suggestions) > maxExternalSuggestions {
		suggestions = suggestions[:maxExternalSuggestions]
	}

	for i, s := range suggestions {
		// The suggestion type doubles as the recommendation ID so a
		// planner suggestion and a built-in rule covering the same
		// ground collapse into one entry.
		id := s.Type
		if id == "" {
			id = fmt.Sprintf("planner_%d", i)
		}
		recs = append(recs, Recommendation{
			ID:          id,
			Priority:    MapExternalPriority(s.Priority),
			Title:       s.Title,
			Description: s.Description,
			Category:    "planner",
			Reasoning:   "proposed by the external study planner",
		})
	}
	return recs
}
