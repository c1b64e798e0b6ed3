package app

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/studypulse/internal/analytics"
	"github.com/blackwell-systems/studypulse/internal/output"
)

var reportFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full analytics report over the trailing window",
	Long: `Compute the composite analytics report: study patterns, performance
metrics, streaks, weak areas, productivity insights, and ranked
recommendations, over the trailing analysis window.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFile, "file", "", "Read events from a JSONL file instead of the database")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(reportFile)
	if err != nil {
		return err
	}
	report, err := rc.generate()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(report)
	}

	renderPatterns(&report.Patterns)
	renderMetrics(report)
	renderWeakAreas(&report.WeakAreas)
	renderInsights(&report.Insights)
	renderRecommendations(report.Recommendations)
	return nil
}

func renderPatterns(p *analytics.StudyPatterns) {
	fmt.Println(output.Section("Study Patterns"))
	fmt.Println()

	if len(p.TimeDistribution) == 0 {
		fmt.Println(" No study time logged in the analysis window.")
		return
	}

	segments := []string{
		analytics.SegmentEarlyMorning,
		analytics.SegmentMorning,
		analytics.SegmentAfternoon,
		analytics.SegmentEvening,
		analytics.SegmentNight,
	}
	for _, seg := range segments {
		frac, ok := p.TimeDistribution[seg]
		if !ok {
			continue
		}
		fmt.Println(output.Metric(seg, output.ScoreBar(frac, 20)))
	}
	fmt.Println()
	fmt.Println(output.Metric("peak hour", fmt.Sprintf("%02d:00", p.PeakHour)))
	fmt.Println(output.Metric("peak day", p.PeakDay.String()))
	fmt.Println(output.Metric("focus score", output.ScoreBar(p.FocusScore, 20)))
	fmt.Println(output.Metric("consistency", output.ScoreBar(p.Consistency, 20)))

	if len(p.Categories) > 0 {
		fmt.Println()
		table := output.NewTable("Category", "Accuracy", "Minutes", "Events").AlignRight(1, 2, 3)
		names := make([]string, 0, len(p.Categories))
		for name := range p.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			perf := p.Categories[name]
			table.AddRow(
				name,
				fmt.Sprintf("%.0f%%", perf.Score*100),
				fmt.Sprintf("%d", perf.TotalMinutes),
				fmt.Sprintf("%d", perf.Events),
			)
		}
		fmt.Println(table.Render())
	}
}

func renderMetrics(r *analytics.Report) {
	fmt.Println(output.Section("Performance Metrics"))
	fmt.Println()
	fmt.Println(output.Metric("completion rate", fmt.Sprintf("%.0f%%", r.Metrics.CompletionRate*100)))
	fmt.Println(output.Metric("current streak", fmt.Sprintf("%d days", r.Streak.Current)))
	fmt.Println(output.Metric("longest streak", fmt.Sprintf("%d days", r.Streak.Longest)))
	fmt.Println(output.Metric("study days", fmt.Sprintf("%d", r.Streak.StudyDays)))
	fmt.Println(output.Metric("today", fmt.Sprintf("%d min", r.Metrics.TodayMinutes)))
	fmt.Println(output.Metric("this week", fmt.Sprintf("%d min", r.Metrics.WeekMinutes)))
	fmt.Println(output.Metric("weekly productivity", output.ScoreBar(r.Metrics.WeeklyProductivity, 20)))
}

func renderWeakAreas(w *analytics.WeakAreaAnalysis) {
	if len(w.Critical) == 0 && len(w.Improving) == 0 && len(w.Mastered) == 0 {
		return
	}
	fmt.Println(output.Section("Weak Areas"))
	fmt.Println()

	table := output.NewTable("Category", "Error rate", "Tier", "Focus").AlignRight(1)
	addAreas := func(areas []analytics.WeakArea, tier string) {
		for _, area := range areas {
			table.AddRow(
				area.Category,
				fmt.Sprintf("%.0f%%", area.ErrorRate*100),
				tier,
				area.RecommendedFocus,
			)
		}
	}
	addAreas(w.Critical, "critical")
	addAreas(w.Improving, "improving")
	addAreas(w.Mastered, "mastered")
	fmt.Println(table.Render())
}

func renderInsights(ins *analytics.ProductivityInsights) {
	fmt.Println(output.Section("Productivity Insights"))
	fmt.Println()

	if len(ins.PeakHours) > 0 {
		hours := ""
		for i, h := range ins.PeakHours {
			if i > 0 {
				hours += ", "
			}
			hours += fmt.Sprintf("%02d:00", h)
		}
		fmt.Println(output.Metric("peak hours", hours))
	}
	fmt.Println(output.Metric("efficiency", output.ScoreBar(ins.EfficiencyScore, 20)))
	if ins.OptimalBreakMinutes > 0 {
		fmt.Println(output.Metric("break after", fmt.Sprintf("%d min", ins.OptimalBreakMinutes)))
	}

	fmt.Println(output.Metric("burnout risk", styleBurnout(ins.Burnout.Level)))
	for _, indicator := range ins.Burnout.Indicators {
		fmt.Printf("   %s %s\n", output.StyleWarning.Render("!"), indicator)
	}
	if ins.Burnout.RestDaysNeeded > 0 {
		fmt.Println(output.Metric("rest days needed", fmt.Sprintf("%d", ins.Burnout.RestDaysNeeded)))
	}
	for _, rec := range ins.Burnout.Recommendations {
		fmt.Printf("   %s %s\n", output.StyleMuted.Render("·"), rec)
	}

	if len(ins.WeeklyTrend) > 0 {
		fmt.Println()
		table := output.NewTable("Week", "Hours", "Done", "Accuracy", "Productivity").AlignRight(1, 2, 3, 4)
		for _, week := range ins.WeeklyTrend {
			table.AddRow(
				week.WeekStart.Format("2006-01-02"),
				fmt.Sprintf("%.1f", week.HoursStudied),
				fmt.Sprintf("%d", week.TasksCompleted),
				fmt.Sprintf("%.0f%%", week.Accuracy*100),
				fmt.Sprintf("%.2f", week.Productivity),
			)
		}
		fmt.Println(table.Render())
	}

	if len(ins.EnergyByWeekday) > 0 {
		for day := time.Sunday; day <= time.Saturday; day++ {
			if energy, ok := ins.EnergyByWeekday[day]; ok {
				fmt.Println(output.Metric(day.String(), output.ScoreBar(energy, 20)))
			}
		}
	}
}

func styleBurnout(level string) string {
	switch level {
	case analytics.BurnoutHigh:
		return output.StyleError.Render("HIGH")
	case analytics.BurnoutMedium:
		return output.StyleWarning.Render("MEDIUM")
	default:
		return output.StyleSuccess.Render("LOW")
	}
}
