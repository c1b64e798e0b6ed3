package store

import (
	"database/sql"
	"math"
	"time"
)

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(takenAt time.Time, command, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, command, version) VALUES (?, ?, ?)",
		takenAt.UTC().Format(time.RFC3339), command, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, command, version FROM snapshots ORDER BY id DESC LIMIT 1")
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous, etc.).
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, command, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Command, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertAggregateMetric inserts an aggregate metric for a snapshot.
func (db *DB) InsertAggregateMetric(snapshotID int64, name string, value float64, detail string) error {
	_, err := db.conn.Exec(
		"INSERT INTO aggregate_metrics (snapshot_id, metric_name, metric_value, detail) VALUES (?, ?, ?, ?)",
		snapshotID, name, value, detail,
	)
	return err
}

// GetAggregateMetrics returns all aggregate metrics for a snapshot.
func (db *DB) GetAggregateMetrics(snapshotID int64) ([]AggregateMetric, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, metric_name, metric_value, detail FROM aggregate_metrics WHERE snapshot_id = ?",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []AggregateMetric
	for rows.Next() {
		var m AggregateMetric
		var detail sql.NullString
		if err := rows.Scan(&m.ID, &m.SnapshotID, &m.MetricName, &m.MetricValue, &detail); err != nil {
			return nil, err
		}
		m.Detail = detail.String
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// lowerIsBetterMetrics lists snapshot metrics where a decrease is an
// improvement.
var lowerIsBetterMetrics = map[string]bool{
	"burnout_indicators":  true,
	"rest_days_needed":    true,
	"critical_weak_areas": true,
}

// DiffSnapshots compares the metrics of two snapshots and classifies each
// delta as improved, regressed, or unchanged.
func (db *DB) DiffSnapshots(previous, current *Snapshot) (*SnapshotDiff, error) {
	prevMetrics, err := db.GetAggregateMetrics(previous.ID)
	if err != nil {
		return nil, err
	}
	currMetrics, err := db.GetAggregateMetrics(current.ID)
	if err != nil {
		return nil, err
	}

	prevByName := make(map[string]float64, len(prevMetrics))
	for _, m := range prevMetrics {
		prevByName[m.MetricName] = m.MetricValue
	}

	diff := &SnapshotDiff{Previous: previous, Current: current}
	for _, m := range currMetrics {
		prev, ok := prevByName[m.MetricName]
		if !ok {
			continue
		}
		delta := m.MetricValue - prev
		direction := "unchanged"
		if math.Abs(delta) > 1e-9 {
			improved := delta > 0
			if lowerIsBetterMetrics[m.MetricName] {
				improved = !improved
			}
			if improved {
				direction = "improved"
			} else {
				direction = "regressed"
			}
		}
		diff.Deltas = append(diff.Deltas, MetricDelta{
			Name:      m.MetricName,
			Previous:  prev,
			Current:   m.MetricValue,
			Delta:     delta,
			Direction: direction,
		})
	}
	return diff, nil
}
