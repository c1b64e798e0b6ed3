// Package config provides configuration loading and defaults for studypulse.
package config

// DefaultConfigDir is the default location for studypulse configuration.
const DefaultConfigDir = "~/.config/studypulse"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "studypulse.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultTimezone is the IANA zone used for day and week boundaries when
// none is configured. "Local" resolves to the host zone.
const DefaultTimezone = "Local"

// DefaultWindowDays is the trailing analysis window in calendar days.
const DefaultWindowDays = 90

// DefaultAnalytics holds the default analytics tuning knobs.
var DefaultAnalytics = Analytics{
	RecencyDecay: 0.05,
}

// DefaultGoals holds the default study targets.
var DefaultGoals = Goals{
	WeeklyMinutes:  300,
	MonthlyMinutes: 1200,
}

// DefaultBurnout holds the default burnout classification cutoffs.
var DefaultBurnout = Burnout{
	MaxWeeklyHours: 25,
	MinAccuracy:    0.65,
	MinConsistency: 0.5,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
