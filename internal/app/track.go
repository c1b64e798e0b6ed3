package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/studypulse/internal/analytics"
	"github.com/blackwell-systems/studypulse/internal/config"
	"github.com/blackwell-systems/studypulse/internal/output"
	"github.com/blackwell-systems/studypulse/internal/store"
)

var trackCompare bool

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot headline metrics and compare over time",
	Long: `Compute the current analytics report, store its headline metrics as a
snapshot, and optionally compare against the previous snapshot to see
which metrics improved or regressed.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().BoolVar(&trackCompare, "compare", false, "Compare against the previous snapshot")
	rootCmd.AddCommand(trackCmd)
}

// headlineMetrics flattens a report into name-value pairs for snapshotting.
func headlineMetrics(report *analytics.Report) []store.MetricRow {
	return []store.MetricRow{
		{Name: "total_events", Value: float64(report.TotalEvents)},
		{Name: "total_minutes", Value: float64(report.Metrics.TotalMinutes)},
		{Name: "completion_rate", Value: report.Metrics.CompletionRate},
		{Name: "current_streak", Value: float64(report.Streak.Current)},
		{Name: "longest_streak", Value: float64(report.Streak.Longest)},
		{Name: "focus_score", Value: report.Patterns.FocusScore},
		{Name: "consistency", Value: report.Patterns.Consistency},
		{Name: "efficiency", Value: report.Insights.EfficiencyScore},
		{Name: "weekly_productivity", Value: report.Metrics.WeeklyProductivity},
		{Name: "burnout_indicators", Value: float64(len(report.Insights.Burnout.Indicators)), Detail: report.Insights.Burnout.Level},
		{Name: "rest_days_needed", Value: float64(report.Insights.Burnout.RestDaysNeeded)},
		{Name: "critical_weak_areas", Value: float64(len(report.WeakAreas.Critical))},
	}
}

func runTrack(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext("")
	if err != nil {
		return err
	}
	report, err := rc.generate()
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshotID, err := db.CreateSnapshot(report.GeneratedAt, "track", appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	for _, m := range headlineMetrics(report) {
		if err := db.InsertAggregateMetric(snapshotID, m.Name, m.Value, m.Detail); err != nil {
			return fmt.Errorf("storing metric %s: %w", m.Name, err)
		}
	}
	fmt.Printf("Snapshot #%d stored (%d metrics)\n", snapshotID, len(headlineMetrics(report)))

	if !trackCompare {
		return nil
	}

	current, err := db.GetLatestSnapshot()
	if err != nil {
		return err
	}
	previous, err := db.GetSnapshotN(2)
	if err != nil {
		return err
	}
	if previous == nil {
		fmt.Println("No previous snapshot to compare against.")
		return nil
	}

	diff, err := db.DiffSnapshots(previous, current)
	if err != nil {
		return fmt.Errorf("diffing snapshots: %w", err)
	}

	if flagJSON {
		return printJSON(diff)
	}

	fmt.Println(output.Section("Snapshot Comparison"))
	fmt.Println()
	table := output.NewTable("Metric", "Previous", "Current", "Trend").AlignRight(1, 2)
	for _, d := range diff.Deltas {
		// The store already classified the delta; recover the
		// higher-is-better orientation so the arrow color matches.
		higherIsBetter := (d.Delta > 0) == (d.Direction == "improved")
		table.AddRow(
			d.Name,
			fmt.Sprintf("%.2f", d.Previous),
			fmt.Sprintf("%.2f", d.Current),
			output.TrendArrow(d.Delta, higherIsBetter),
		)
	}
	fmt.Println(table.Render())
	return nil
}
