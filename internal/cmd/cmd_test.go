package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/llxisdsh/bridge/internal/config"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "bridgesim", root.Use)

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["run"])
	assert.True(t, names["config"])
}

func TestRunCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(NewRootCommand(),
		"run", "--time-scale", "0", "--north", "4", "--south", "3", "--pedestrians", "5",
		"--log-format", "json", "--log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, stdout, "CROSSINGS")
	assert.Regexp(t, `car-north\s+4\s`, stdout)
	assert.Regexp(t, `car-south\s+3\s`, stdout)
	assert.Regexp(t, `pedestrian\s+5\s`, stdout)
	assert.Contains(t, stderr, `"message":"simulation finished"`)
	assert.Contains(t, stderr, `"crossings":12`)
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	_, _, err := executeCommand(NewRootCommand(), "run", "--north", "-2", "--time-scale", "0")
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridgesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("traffic:\n  pedestrians:\n    count: 9\n"), 0644))

	stdout, _, err := executeCommand(NewRootCommand(), "config", "--config", path, "--log-level", "debug")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 9, got.Traffic.Pedestrians.Count)
	assert.Equal(t, 200, got.Traffic.North.Count)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, config.Default().Traffic.Pedestrians.DwellMean, got.Traffic.Pedestrians.DwellMean)
}
