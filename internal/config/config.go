package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration, stored as YAML at
// ~/.tempo/config.yaml.
type Config struct {
	// DayStartHour and DayEndHour bound the visible daily window of the
	// week view, in whole hours of the local day.
	DayStartHour int `yaml:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour"`

	// PixelsPerMinute scales the week view vertically.
	PixelsPerMinute float64 `yaml:"pixels_per_minute"`

	// MaxVisibleLanes caps how many side-by-side columns a day shows
	// before overlapping items collapse into a single aggregate block.
	MaxVisibleLanes int `yaml:"max_visible_lanes"`

	// WeekStart is the first day of the week: "monday" or "sunday".
	WeekStart string `yaml:"week_start"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DayStartHour:    8,
		DayEndHour:      21,
		PixelsPerMinute: 1.0,
		MaxVisibleLanes: 3,
		WeekStart:       "monday",
	}
}

// Normalize fills missing or out-of-range values with defaults so a
// partially filled config still behaves.
func (c *Config) Normalize() {
	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		c.DayStartHour = 8
	}
	if c.DayEndHour <= c.DayStartHour || c.DayEndHour > 24 {
		c.DayEndHour = 21
		if c.DayEndHour <= c.DayStartHour {
			c.DayEndHour = 24
		}
	}
	if c.PixelsPerMinute <= 0 {
		c.PixelsPerMinute = 1.0
	}
	if c.MaxVisibleLanes < 1 {
		c.MaxVisibleLanes = 3
	}
	switch c.WeekStart {
	case "monday", "sunday":
	default:
		c.WeekStart = "monday"
	}
}

// WeekStartDay maps the configured week start onto a time.Weekday.
func (c *Config) WeekStartDay() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// DefaultPath returns the standard config location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".tempo", "config.yaml"), nil
}

// Load reads configuration from the given YAML path. A missing file is
// not an error: the defaults are written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration to path, creating the parent directory
// if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
