package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "traffic.north.count")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"trace", "debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"console", "json"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateLog()...)
	errors = append(errors, c.validateTraffic()...)
	return errors
}

func (c *Config) validateLog() []ValidationError {
	var errors []ValidationError
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Log.Format)) {
		errors = append(errors, ValidationError{
			Field:   "log.format",
			Value:   c.Log.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}
	return errors
}

func (c *Config) validateTraffic() []ValidationError {
	var errors []ValidationError
	if c.Traffic.TimeScale < 0 {
		errors = append(errors, ValidationError{
			Field:   "traffic.time_scale",
			Value:   c.Traffic.TimeScale,
			Message: "must be non-negative",
		})
	}
	errors = append(errors, validateStream("traffic.north", c.Traffic.North)...)
	errors = append(errors, validateStream("traffic.south", c.Traffic.South)...)
	errors = append(errors, validateStream("traffic.pedestrians", c.Traffic.Pedestrians)...)
	return errors
}

func validateStream(prefix string, s StreamConfig) []ValidationError {
	var errors []ValidationError
	if s.Count < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".count",
			Value:   s.Count,
			Message: "must be non-negative",
		})
	}
	if s.Arrival < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".arrival",
			Value:   s.Arrival,
			Message: "must be non-negative",
		})
	}
	if s.DwellMean < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".dwell_mean",
			Value:   s.DwellMean,
			Message: "must be non-negative",
		})
	}
	if s.DwellStdDev < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".dwell_stddev",
			Value:   s.DwellStdDev,
			Message: "must be non-negative",
		})
	}
	return errors
}
