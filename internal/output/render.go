package output

import (
	"fmt"
	"strings"
)

// renderWidth is the target width for section rules and tables,
// configurable via output.width.
var renderWidth = 80

// SetWidth sets the rendering width. Values below 40 are ignored so
// tables stay legible.
func SetWidth(w int) {
	if w >= 40 {
		renderWidth = w
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", renderWidth-2))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// ScoreBar renders a visual bar for a score in [0, 1].
// Example: "████████░░ 0.80"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(score * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.2f", score)))
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
// The higherIsBetter parameter controls which direction is colored good.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.2f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.2f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Metric renders a labeled metric line: a padded label and a bold value.
func Metric(label, value string) string {
	return fmt.Sprintf(" %s %s", StyleLabel.Render(label), StyleBold.Render(value))
}
