package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/studypulse/internal/study"
)

// ImportEvents inserts completion events, assigning a fresh UUID to each
// row. Events are content-addressed by (task_id, occurred_at): a row that
// already exists for that pair is skipped, so re-importing the same export
// is idempotent. Returns the number of newly inserted events.
func (db *DB) ImportEvents(events []study.CompletionEvent) (int, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for _, ev := range events {
		occurredAt := ev.Timestamp.UTC().Format(time.RFC3339Nano)

		var exists int
		row := tx.QueryRow(
			"SELECT COUNT(1) FROM events WHERE task_id = ? AND occurred_at = ?",
			ev.TaskID, occurredAt,
		)
		if err := row.Scan(&exists); err != nil {
			return 0, err
		}
		if exists > 0 {
			continue
		}

		if _, err := tx.Exec(
			`INSERT INTO events (id, task_id, occurred_at, minutes_spent, correct, category, points_earned)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), ev.TaskID, occurredAt, ev.MinutesSpent,
			ev.Correct, ev.Category, ev.PointsEarned,
		); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// AllEvents returns every stored event, oldest first.
func (db *DB) AllEvents() ([]study.CompletionEvent, error) {
	return db.queryEvents("SELECT task_id, occurred_at, minutes_spent, correct, category, points_earned FROM events ORDER BY occurred_at")
}

// EventsSince returns events at or after the cutoff, oldest first.
func (db *DB) EventsSince(cutoff time.Time) ([]study.CompletionEvent, error) {
	return db.queryEvents(
		"SELECT task_id, occurred_at, minutes_spent, correct, category, points_earned FROM events WHERE occurred_at >= ? ORDER BY occurred_at",
		cutoff.UTC().Format(time.RFC3339Nano),
	)
}

func (db *DB) queryEvents(query string, args ...any) ([]study.CompletionEvent, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []study.CompletionEvent
	for rows.Next() {
		var ev study.CompletionEvent
		var occurredAt string
		if err := rows.Scan(&ev.TaskID, &occurredAt, &ev.MinutesSpent, &ev.Correct, &ev.Category, &ev.PointsEarned); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, occurredAt)
		if err != nil {
			// Skip rows with unparseable timestamps rather than failing
			// the whole read.
			continue
		}
		ev.Timestamp = t
		events = append(events, ev)
	}
	return events, rows.Err()
}
