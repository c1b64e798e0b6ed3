package study

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseEventsFile(t *testing.T) {
	content := `{"task_id":"t1","timestamp":"2025-03-10T09:00:00Z","minutes_spent":25,"correct":true,"category":"algebra","points_earned":10}
not json at all
{"task_id":"t2","timestamp":"2025-03-10T10:00:00Z","minutes_spent":-5,"correct":true,"category":"algebra"}
{"task_id":"t3","minutes_spent":15,"correct":false,"category":"grammar"}

{"task_id":"t4","timestamp":"2025-03-11T08:30:00Z","minutes_spent":0,"correct":false,"category":"grammar","points_earned":0}
`
	path := filepath.Join(t.TempDir(), "events.jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := ParseEventsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 valid events, got %d", len(events))
	}
	if events[0].TaskID != "t1" || events[1].TaskID != "t4" {
		t.Errorf("expected t1 and t4 to survive, got %s and %s", events[0].TaskID, events[1].TaskID)
	}
	if events[0].MinutesSpent != 25 || !events[0].Correct {
		t.Errorf("t1 fields not parsed: %+v", events[0])
	}
}

func TestParseEventsFile_Missing(t *testing.T) {
	events, err := ParseEventsFile(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if events != nil {
		t.Errorf("expected nil events for missing file, got %v", events)
	}
}

func TestSortByTime(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	events := []CompletionEvent{
		{TaskID: "late", Timestamp: base.Add(2 * time.Hour)},
		{TaskID: "early", Timestamp: base},
		{TaskID: "mid", Timestamp: base.Add(time.Hour)},
	}

	sorted := SortByTime(events)
	if sorted[0].TaskID != "early" || sorted[1].TaskID != "mid" || sorted[2].TaskID != "late" {
		t.Errorf("wrong order: %s %s %s", sorted[0].TaskID, sorted[1].TaskID, sorted[2].TaskID)
	}
	if events[0].TaskID != "late" {
		t.Error("expected input slice to be unmodified")
	}
}

func TestFilterSince(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	events := []CompletionEvent{
		{TaskID: "old", Timestamp: base.Add(-time.Hour)},
		{TaskID: "exact", Timestamp: base},
		{TaskID: "new", Timestamp: base.Add(time.Hour)},
	}

	filtered := FilterSince(events, base)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 events, got %d", len(filtered))
	}
	if filtered[0].TaskID != "exact" {
		t.Error("cutoff timestamp itself should be included")
	}
}
