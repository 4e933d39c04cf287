package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "comparator", cfg.Scheduler.SortMode)
	assert.Equal(t, "identity", cfg.Scheduler.Transform)
	assert.Equal(t, 30, cfg.Scheduler.TravelMinutes)
	assert.False(t, cfg.Scheduler.Prune)
	assert.False(t, cfg.Scheduler.Lenient)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, cfg.Scheduler.Week)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COMBINATOR_ENV", EnvProduction)
	t.Setenv("COMBINATOR_LOG_FORMAT", "json")
	t.Setenv("COMBINATOR_SORT_MODE", "quicksort")
	t.Setenv("COMBINATOR_PRUNE", "true")
	t.Setenv("COMBINATOR_TRAVEL_MINUTES", "45")
	t.Setenv("COMBINATOR_WEEK", "mon, sat")

	cfg, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "quicksort", cfg.Scheduler.SortMode)
	assert.True(t, cfg.Scheduler.Prune)
	assert.Equal(t, 45, cfg.Scheduler.TravelMinutes)
	assert.Equal(t, []time.Weekday{time.Monday, time.Saturday}, cfg.Scheduler.Week)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("Week", func(t *testing.T) {
		t.Setenv("COMBINATOR_WEEK", "monday,someday")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid week")
	})

	t.Run("Travel minutes", func(t *testing.T) {
		t.Setenv("COMBINATOR_TRAVEL_MINUTES", "-5")
		_, err := Load()
		assert.NotNil(t, err)
	})
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , ,b "))
}
