package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/studypulse/internal/study"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestImportEvents_Idempotent(t *testing.T) {
	db := openTestDB(t)

	events := []study.CompletionEvent{
		{TaskID: "t1", Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), MinutesSpent: 25, Correct: true, Category: "algebra", PointsEarned: 10},
		{TaskID: "t2", Timestamp: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), MinutesSpent: 15, Correct: false, Category: "grammar"},
	}

	inserted, err := db.ImportEvents(events)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Re-importing the same export inserts nothing.
	inserted, err = db.ImportEvents(events)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	stored, err := db.AllEvents()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "t1", stored[0].TaskID)
	assert.True(t, stored[0].Correct)
	assert.Equal(t, 25, stored[0].MinutesSpent)
	assert.Equal(t, "grammar", stored[1].Category)
}

func TestEventsSince(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	events := []study.CompletionEvent{
		{TaskID: "old", Timestamp: base.AddDate(0, 0, -10), MinutesSpent: 10, Category: "algebra"},
		{TaskID: "cutoff", Timestamp: base, MinutesSpent: 10, Category: "algebra"},
		{TaskID: "new", Timestamp: base.AddDate(0, 0, 5), MinutesSpent: 10, Category: "algebra"},
	}
	_, err := db.ImportEvents(events)
	require.NoError(t, err)

	since, err := db.EventsSince(base)
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "cutoff", since[0].TaskID)
	assert.Equal(t, "new", since[1].TaskID)
}

func TestSnapshots(t *testing.T) {
	db := openTestDB(t)

	none, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := db.CreateSnapshot(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), "track", "1.0.0")
	require.NoError(t, err)
	second, err := db.CreateSnapshot(time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC), "track", "1.0.0")
	require.NoError(t, err)

	latest, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second, latest.ID)

	previous, err := db.GetSnapshotN(2)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, first, previous.ID)
}

func TestDiffSnapshots(t *testing.T) {
	db := openTestDB(t)

	prevID, err := db.CreateSnapshot(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), "track", "1.0.0")
	require.NoError(t, err)
	currID, err := db.CreateSnapshot(time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC), "track", "1.0.0")
	require.NoError(t, err)

	require.NoError(t, db.InsertAggregateMetric(prevID, "completion_rate", 0.70, ""))
	require.NoError(t, db.InsertAggregateMetric(prevID, "burnout_indicators", 2, ""))
	require.NoError(t, db.InsertAggregateMetric(prevID, "focus_score", 0.50, ""))
	require.NoError(t, db.InsertAggregateMetric(prevID, "only_in_previous", 1, ""))

	require.NoError(t, db.InsertAggregateMetric(currID, "completion_rate", 0.80, ""))
	require.NoError(t, db.InsertAggregateMetric(currID, "burnout_indicators", 1, ""))
	require.NoError(t, db.InsertAggregateMetric(currID, "focus_score", 0.50, ""))
	require.NoError(t, db.InsertAggregateMetric(currID, "only_in_current", 1, ""))

	prev, err := db.GetSnapshotN(2)
	require.NoError(t, err)
	curr, err := db.GetLatestSnapshot()
	require.NoError(t, err)

	diff, err := db.DiffSnapshots(prev, curr)
	require.NoError(t, err)

	byName := make(map[string]MetricDelta)
	for _, d := range diff.Deltas {
		byName[d.Name] = d
	}

	// Metrics present only on one side are not diffed.
	require.Len(t, byName, 3)

	assert.Equal(t, "improved", byName["completion_rate"].Direction)
	assert.InDelta(t, 0.10, byName["completion_rate"].Delta, 1e-9)

	// Fewer burnout indicators is an improvement.
	assert.Equal(t, "improved", byName["burnout_indicators"].Direction)
	assert.Equal(t, "unchanged", byName["focus_score"].Direction)
}
