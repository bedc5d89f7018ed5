// Package config loads the bridgesim configuration from defaults, an
// optional config file and BRIDGESIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. BRIDGESIM_TRAFFIC_NORTH_COUNT for traffic.north.count.
const EnvPrefix = "BRIDGESIM"

// Config represents the complete bridgesim configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Traffic TrafficConfig `mapstructure:"traffic" yaml:"traffic"`
}

// LogConfig controls logging output
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "console" for human-readable lines or "json"
	Format string `mapstructure:"format" yaml:"format"`
}

// TrafficConfig describes the population sent across the bridge
type TrafficConfig struct {
	// Seed makes arrival and dwell times reproducible
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
	// TimeScale multiplies every arrival and dwell time; 0 disables delays
	TimeScale   float64      `mapstructure:"time_scale" yaml:"time_scale"`
	North       StreamConfig `mapstructure:"north" yaml:"north"`
	South       StreamConfig `mapstructure:"south" yaml:"south"`
	Pedestrians StreamConfig `mapstructure:"pedestrians" yaml:"pedestrians"`
}

// StreamConfig describes one traffic class
type StreamConfig struct {
	// Count is the number of entities generated
	Count int `mapstructure:"count" yaml:"count"`
	// Arrival is the mean of the exponential inter-arrival time
	Arrival time.Duration `mapstructure:"arrival" yaml:"arrival"`
	// DwellMean and DwellStdDev parametrize the normal time spent on the bridge
	DwellMean   time.Duration `mapstructure:"dwell_mean" yaml:"dwell_mean"`
	DwellStdDev time.Duration `mapstructure:"dwell_stddev" yaml:"dwell_stddev"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Traffic: TrafficConfig{
			Seed:      1,
			TimeScale: 1,
			North: StreamConfig{
				Count:       200,
				Arrival:     500 * time.Millisecond,
				DwellMean:   time.Second,
				DwellStdDev: 500 * time.Millisecond,
			},
			South: StreamConfig{
				Count:       200,
				Arrival:     500 * time.Millisecond,
				DwellMean:   time.Second,
				DwellStdDev: 500 * time.Millisecond,
			},
			Pedestrians: StreamConfig{
				Count:       30,
				Arrival:     5 * time.Second,
				DwellMean:   30 * time.Second,
				DwellStdDev: 10 * time.Second,
			},
		},
	}
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("traffic.seed", d.Traffic.Seed)
	v.SetDefault("traffic.time_scale", d.Traffic.TimeScale)
	for name, s := range map[string]StreamConfig{
		"north":       d.Traffic.North,
		"south":       d.Traffic.South,
		"pedestrians": d.Traffic.Pedestrians,
	} {
		prefix := "traffic." + name + "."
		v.SetDefault(prefix+"count", s.Count)
		v.SetDefault(prefix+"arrival", s.Arrival)
		v.SetDefault(prefix+"dwell_mean", s.DwellMean)
		v.SetDefault(prefix+"dwell_stddev", s.DwellStdDev)
	}
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return cfg, nil
}

// Load builds the configuration from defaults, the optional file at path and
// the environment.
func Load(path string) (*Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return Decode(v)
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
