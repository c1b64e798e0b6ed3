package output

import (
	"strings"
	"testing"
)

func init() {
	SetNoColor(true)
}

func TestScoreBar(t *testing.T) {
	bar := ScoreBar(0.8, 10)
	if !strings.Contains(bar, "0.80") {
		t.Errorf("expected numeric score in %q", bar)
	}
	if got := strings.Count(bar, "█"); got != 8 {
		t.Errorf("expected 8 filled cells, got %d in %q", got, bar)
	}
	if got := strings.Count(bar, "░"); got != 2 {
		t.Errorf("expected 2 empty cells, got %d in %q", got, bar)
	}
}

func TestScoreBar_Clamped(t *testing.T) {
	if bar := ScoreBar(1.5, 10); strings.Count(bar, "█") != 10 {
		t.Errorf("over-range score should fill the bar: %q", bar)
	}
	if bar := ScoreBar(-0.5, 10); strings.Count(bar, "░") != 10 {
		t.Errorf("negative score should leave the bar empty: %q", bar)
	}
}

func TestTrendArrow(t *testing.T) {
	if got := TrendArrow(0.1, true); !strings.Contains(got, "▲ +0.10") {
		t.Errorf("expected up arrow, got %q", got)
	}
	if got := TrendArrow(-0.1, true); !strings.Contains(got, "▼ -0.10") {
		t.Errorf("expected down arrow, got %q", got)
	}
	if got := TrendArrow(0, true); !strings.Contains(got, "─") {
		t.Errorf("expected dash for no change, got %q", got)
	}
}

func TestSection(t *testing.T) {
	if got := Section("Study Patterns"); !strings.Contains(got, "Study Patterns") {
		t.Errorf("expected title in section header, got %q", got)
	}
}

func TestSetWidth_SectionRule(t *testing.T) {
	SetWidth(60)
	defer SetWidth(80)

	if got := strings.Count(Section("Metrics"), "─"); got != 58 {
		t.Errorf("expected a 58-cell rule at width 60, got %d", got)
	}
}

func TestSetWidth_RejectsNarrow(t *testing.T) {
	SetWidth(10)
	defer SetWidth(80)

	if got := strings.Count(Section("Metrics"), "─"); got != 78 {
		t.Errorf("expected width 10 to be ignored, got a %d-cell rule", got)
	}
}

func TestTable(t *testing.T) {
	table := NewTable("Category", "Accuracy")
	table.AddRow("algebra", "0.85")
	table.AddRow("reading comprehension", "0.92")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Category") || !strings.Contains(lines[0], "Accuracy") {
		t.Errorf("missing headers in %q", lines[0])
	}
	// Columns padded to the widest cell.
	if !strings.Contains(lines[2], "algebra               ") {
		t.Errorf("expected padded cell in %q", lines[2])
	}
}

func TestTable_AlignRight(t *testing.T) {
	table := NewTable("Category", "Accuracy").AlignRight(1)
	table.AddRow("algebra", "85%")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// "Accuracy" is 8 wide, so the value sits flush right.
	if !strings.HasSuffix(lines[2], "     85%") {
		t.Errorf("expected right-aligned value in %q", lines[2])
	}
}

func TestTable_FitsConfiguredWidth(t *testing.T) {
	SetWidth(40)
	defer SetWidth(80)

	table := NewTable("Category", "Focus")
	table.AddRow(strings.Repeat("a", 60), "light_review")

	out := table.Render()
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.Count(line, "a") > 40 {
			t.Errorf("expected oversized cell narrowed to the output width, got %d a's", strings.Count(line, "a"))
		}
	}
	if !strings.Contains(out, "…") {
		t.Error("expected truncated cell to be marked")
	}
}
