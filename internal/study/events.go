package study

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"
	"time"
)

// ParseEventsFile reads a JSONL file of completion events, one JSON object
// per line. It uses streaming parsing to handle large exports efficiently.
// A missing file yields (nil, nil); malformed lines are skipped.
func ParseEventsFile(path string) ([]CompletionEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var events []CompletionEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev CompletionEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			// Skip malformed lines.
			continue
		}
		if ev.Timestamp.IsZero() || ev.MinutesSpent < 0 {
			// The event-source contract guarantees well-formed records;
			// drop anything that violates it here at the boundary.
			continue
		}
		events = append(events, ev)
	}
	return events, scanner.Err()
}

// SortByTime returns a copy of events ordered chronologically. The input
// slice is never modified; event lists need not arrive pre-sorted.
func SortByTime(events []CompletionEvent) []CompletionEvent {
	sorted := make([]CompletionEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// FilterSince returns the events whose timestamp is at or after cutoff.
func FilterSince(events []CompletionEvent, cutoff time.Time) []CompletionEvent {
	var filtered []CompletionEvent
	for _, ev := range events {
		if !ev.Timestamp.Before(cutoff) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
