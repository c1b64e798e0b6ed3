package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level studypulse configuration.
type Config struct {
	Timezone   string    `mapstructure:"timezone"`
	WindowDays int       `mapstructure:"window_days"`
	Analytics  Analytics `mapstructure:"analytics"`
	Goals      Goals     `mapstructure:"goals"`
	Burnout    Burnout   `mapstructure:"burnout"`
	Planner    Planner   `mapstructure:"planner"`
	Output     Output    `mapstructure:"output"`
}

// Analytics holds tuning knobs for the analytics engine.
type Analytics struct {
	// RecencyDecay is the per-hour decay rate applied to hourly
	// productivity weights.
	RecencyDecay float64 `mapstructure:"recency_decay"`
}

// Goals defines the learner's study targets.
type Goals struct {
	WeeklyMinutes  int      `mapstructure:"weekly_minutes"`
	MonthlyMinutes int      `mapstructure:"monthly_minutes"`
	Categories     []string `mapstructure:"categories"`
}

// Burnout defines the burnout classification cutoffs.
type Burnout struct {
	MaxWeeklyHours float64 `mapstructure:"max_weekly_hours"`
	MinAccuracy    float64 `mapstructure:"min_accuracy"`
	MinConsistency float64 `mapstructure:"min_consistency"`
}

// Planner configures the optional external suggestion source.
type Planner struct {
	// SuggestionsPath points at a JSON file of planner-proposed
	// suggestions. Empty disables the source.
	SuggestionsPath string `mapstructure:"suggestions_path"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("window_days", DefaultWindowDays)
	v.SetDefault("analytics.recency_decay", DefaultAnalytics.RecencyDecay)
	v.SetDefault("goals.weekly_minutes", DefaultGoals.WeeklyMinutes)
	v.SetDefault("goals.monthly_minutes", DefaultGoals.MonthlyMinutes)
	v.SetDefault("goals.categories", []string{})
	v.SetDefault("burnout.max_weekly_hours", DefaultBurnout.MaxWeeklyHours)
	v.SetDefault("burnout.min_accuracy", DefaultBurnout.MinAccuracy)
	v.SetDefault("burnout.min_consistency", DefaultBurnout.MinConsistency)
	v.SetDefault("planner.suggestions_path", "")
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Planner.SuggestionsPath = expandPath(cfg.Planner.SuggestionsPath)

	return &cfg, nil
}

// Location resolves the configured IANA time zone. "Local" or an empty
// value resolves to the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
