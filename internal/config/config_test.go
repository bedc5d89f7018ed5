package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, 200, cfg.Traffic.North.Count)
	assert.Equal(t, 30, cfg.Traffic.Pedestrians.Count)
	assert.Equal(t, 5*time.Second, cfg.Traffic.Pedestrians.Arrival)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridgesim.yaml")
	cfg := `
log:
  level: debug
  format: json
traffic:
  seed: 42
  time_scale: 0.01
  north:
    count: 3
    arrival: 100ms
  pedestrians:
    dwell_mean: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, "json", got.Log.Format)
	assert.Equal(t, uint64(42), got.Traffic.Seed)
	assert.InDelta(t, 0.01, got.Traffic.TimeScale, 1e-9)
	assert.Equal(t, 3, got.Traffic.North.Count)
	assert.Equal(t, 100*time.Millisecond, got.Traffic.North.Arrival)
	// untouched keys keep their defaults
	assert.Equal(t, time.Second, got.Traffic.North.DwellMean)
	assert.Equal(t, 200, got.Traffic.South.Count)
	assert.Equal(t, 2*time.Second, got.Traffic.Pedestrians.DwellMean)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BRIDGESIM_TRAFFIC_SOUTH_COUNT", "7")
	t.Setenv("BRIDGESIM_LOG_LEVEL", "warn")

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Traffic.South.Count)
	assert.Equal(t, "warn", got.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/bridgesim.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("BRIDGESIM_LOG_LEVEL", "loud")
	t.Setenv("BRIDGESIM_TRAFFIC_PEDESTRIANS_COUNT", "-1")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "2 validation errors")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "traffic.pedestrians.count")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate())

	cfg.Log.Format = "xml"
	cfg.Traffic.TimeScale = -1
	cfg.Traffic.North.Arrival = -time.Second
	cfg.Traffic.South.DwellStdDev = -time.Second

	errs := cfg.Validate()
	require.Len(t, errs, 4)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{
		"log.format",
		"traffic.time_scale",
		"traffic.north.arrival",
		"traffic.south.dwell_stddev",
	}, fields)
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "", ValidationErrors(nil).Error())

	one := ValidationErrors{{Field: "log.level", Value: "x", Message: "bad"}}
	assert.Equal(t, "log.level: bad (got: x)", one.Error())
}
