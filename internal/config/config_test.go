package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// A missing config file is not an error; defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultWindowDays, cfg.WindowDays)
	assert.Equal(t, DefaultAnalytics.RecencyDecay, cfg.Analytics.RecencyDecay)
	assert.Equal(t, DefaultGoals.WeeklyMinutes, cfg.Goals.WeeklyMinutes)
	assert.Equal(t, DefaultGoals.MonthlyMinutes, cfg.Goals.MonthlyMinutes)
	assert.Equal(t, DefaultBurnout.MaxWeeklyHours, cfg.Burnout.MaxWeeklyHours)
	assert.Equal(t, DefaultBurnout.MinAccuracy, cfg.Burnout.MinAccuracy)
	assert.Equal(t, DefaultBurnout.MinConsistency, cfg.Burnout.MinConsistency)
	assert.Empty(t, cfg.Planner.SuggestionsPath)
	assert.True(t, cfg.Output.Color)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	content := `timezone: America/New_York
window_days: 30
analytics:
  recency_decay: 0.1
goals:
  weekly_minutes: 600
burnout:
  max_weekly_hours: 20
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, 30, cfg.WindowDays)
	assert.Equal(t, 0.1, cfg.Analytics.RecencyDecay)
	assert.Equal(t, 600, cfg.Goals.WeeklyMinutes)
	assert.Equal(t, 20.0, cfg.Burnout.MaxWeeklyHours)

	// Keys the file omits still fall back to defaults.
	assert.Equal(t, DefaultGoals.MonthlyMinutes, cfg.Goals.MonthlyMinutes)
	assert.Equal(t, DefaultBurnout.MinAccuracy, cfg.Burnout.MinAccuracy)
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Local"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Local", loc.String())

	cfg.Timezone = "Europe/Berlin"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	cfg.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}
