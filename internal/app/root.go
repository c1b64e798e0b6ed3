// Package app contains the Cobra command tree for studypulse.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "studypulse",
	Short: "Behavioral analytics for study sessions",
	Long: `studypulse turns a history of study-session completion events into
behavioral analytics: when and how you study best, where you are weak,
how consistent and at-risk-of-burnout you are, and what to work on next.

Run a subcommand to compute a report over your stored events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("studypulse", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  report     Full analytics report over the trailing window")
		fmt.Println("  patterns   Time-of-day, category, and weekly study patterns")
		fmt.Println("  metrics    Streaks, completion rate, and study-time sums")
		fmt.Println("  insights   Peak hours, burnout risk, and productivity trend")
		fmt.Println("  recommend  Ranked, deduplicated study recommendations")
		fmt.Println("  import     Load completion events from a JSONL export")
		fmt.Println("  track      Snapshot headline metrics and compare over time")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/studypulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
