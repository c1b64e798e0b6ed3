package app

import (
	"github.com/spf13/cobra"
)

// The sub-report commands expose each analytics section individually.
// Every one computes from the same filtered event window the full report
// would use.

var (
	patternsFile  string
	metricsFile   string
	insightsFile  string
	recommendFile string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Time-of-day, category, and weekly study patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext(patternsFile)
		if err != nil {
			return err
		}
		report, err := rc.generate()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(report.Patterns)
		}
		renderPatterns(&report.Patterns)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Streaks, completion rate, and study-time sums",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext(metricsFile)
		if err != nil {
			return err
		}
		report, err := rc.generate()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(struct {
				Metrics any `json:"metrics"`
				Streak  any `json:"streak"`
			}{report.Metrics, report.Streak})
		}
		renderMetrics(report)
		return nil
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Peak hours, burnout risk, and productivity trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext(insightsFile)
		if err != nil {
			return err
		}
		report, err := rc.generate()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(report.Insights)
		}
		renderInsights(&report.Insights)
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ranked, deduplicated study recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext(recommendFile)
		if err != nil {
			return err
		}
		report, err := rc.generate()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(report.Recommendations)
		}
		renderRecommendations(report.Recommendations)
		return nil
	},
}

func init() {
	patternsCmd.Flags().StringVar(&patternsFile, "file", "", "Read events from a JSONL file instead of the database")
	metricsCmd.Flags().StringVar(&metricsFile, "file", "", "Read events from a JSONL file instead of the database")
	insightsCmd.Flags().StringVar(&insightsFile, "file", "", "Read events from a JSONL file instead of the database")
	recommendCmd.Flags().StringVar(&recommendFile, "file", "", "Read events from a JSONL file instead of the database")

	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(recommendCmd)
}
