package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/limaJavier/combinations/pkg/model"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix = "COMBINATOR"
)

type Config struct {
	Env       string
	Log       LogConfig
	Scheduler SchedulerConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SchedulerConfig carries the defaults of the scheduling pipeline. Command line flags take precedence over them
type SchedulerConfig struct {
	SortMode      string
	Prune         bool
	Lenient       bool
	Transform     string
	TravelMinutes int
	Week          []time.Weekday
}

// Load reads the configuration from the environment (optionally seeded by a .env file). Every key is prefixed with COMBINATOR_
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	week, err := parseWeek(v.GetString("WEEK"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Scheduler: SchedulerConfig{
			SortMode:      v.GetString("SORT_MODE"),
			Prune:         v.GetBool("PRUNE"),
			Lenient:       v.GetBool("LENIENT"),
			Transform:     v.GetString("TRANSFORM"),
			TravelMinutes: v.GetInt("TRAVEL_MINUTES"),
			Week:          week,
		},
	}

	if cfg.Scheduler.TravelMinutes < 0 {
		return nil, fmt.Errorf("travel minutes must not be negative: %v", cfg.Scheduler.TravelMinutes)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("SORT_MODE", "comparator")
	v.SetDefault("PRUNE", false)
	v.SetDefault("LENIENT", false)
	v.SetDefault("TRANSFORM", "identity")
	v.SetDefault("TRAVEL_MINUTES", 30)
	v.SetDefault("WEEK", "monday,tuesday,wednesday,thursday,friday")
}

func parseWeek(value string) ([]time.Weekday, error) {
	week := make([]time.Weekday, 0, 7)
	for _, name := range splitAndTrim(value) {
		day, err := model.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("invalid week configuration: %w", err)
		}
		week = append(week, day)
	}
	return week, nil
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
