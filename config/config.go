package config

import (
	"github.com/spf13/viper"
)

// Config holds the knobs for the solver and shell. Values come from
// environment variables prefixed with PEGSOL_ (e.g. PEGSOL_THREADS),
// falling back to the defaults below.
type Config struct {
	// LogLevel is one of debug, info, warn, disabled.
	LogLevel string
	// Threads is the number of parallel search workers; 1 keeps the
	// search deterministic.
	Threads int
	// DeadSetMemFraction is the share of total system memory the
	// dead-position memoization set may occupy.
	DeadSetMemFraction float64
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("pegsol")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("threads", 1)
	v.SetDefault("deadset_mem_fraction", 0.25)

	c := &Config{
		LogLevel:           v.GetString("log_level"),
		Threads:            v.GetInt("threads"),
		DeadSetMemFraction: v.GetFloat64("deadset_mem_fraction"),
	}
	return c, nil
}
