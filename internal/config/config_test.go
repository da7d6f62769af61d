package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.DayStartHour)
	assert.Equal(t, 21, cfg.DayEndHour)
	assert.Equal(t, 1.0, cfg.PixelsPerMinute)
	assert.Equal(t, 3, cfg.MaxVisibleLanes)
	assert.Equal(t, time.Monday, cfg.WeekStartDay())

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults are persisted on first load")
}

func TestLoad_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "day_start_hour: 6\nday_end_hour: 22\npixels_per_minute: 2.5\nmax_visible_lanes: 5\nweek_start: sunday\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.DayStartHour)
	assert.Equal(t, 22, cfg.DayEndHour)
	assert.Equal(t, 2.5, cfg.PixelsPerMinute)
	assert.Equal(t, 5, cfg.MaxVisibleLanes)
	assert.Equal(t, time.Sunday, cfg.WeekStartDay())
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day_start_hour: 7\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.DayStartHour)
	assert.Equal(t, 21, cfg.DayEndHour)
	assert.Equal(t, 1.0, cfg.PixelsPerMinute)
	assert.Equal(t, "monday", cfg.WeekStart)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day_start_hour: [nope"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestNormalize_RejectsBadValues(t *testing.T) {
	cfg := &Config{
		DayStartHour:    -5,
		DayEndHour:      3,
		PixelsPerMinute: -1,
		MaxVisibleLanes: 0,
		WeekStart:       "caturday",
	}
	cfg.Normalize()

	assert.Equal(t, 8, cfg.DayStartHour)
	assert.Equal(t, 21, cfg.DayEndHour)
	assert.Equal(t, 1.0, cfg.PixelsPerMinute)
	assert.Equal(t, 3, cfg.MaxVisibleLanes)
	assert.Equal(t, "monday", cfg.WeekStart)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.DayEndHour = 23
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 23, loaded.DayEndHour)
}
