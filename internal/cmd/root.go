// Package cmd implements the bridgesim command line.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/llxisdsh/bridge/internal/config"
)

// NewRootCommand builds the bridgesim command tree around a fresh viper
// instance.
func NewRootCommand() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "bridgesim",
		Short: "Simulate traffic over a single-lane bridge",
		Long: `bridgesim sends northbound cars, southbound cars and pedestrians over a
single-lane bridge guarded by a monitor. Only one class uses the bridge at a
time: one car per direction, or up to three pedestrians.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "log format: console or json")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newRunCommand(v), newConfigCommand(v))
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig reads the file named by --config, if any, and decodes the
// effective configuration.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	if err := config.ReadFile(v, v.GetString("config")); err != nil {
		return nil, err
	}
	return config.Decode(v)
}
