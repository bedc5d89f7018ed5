package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/llxisdsh/bridge"
	"github.com/llxisdsh/bridge/internal/logging"
	"github.com/llxisdsh/bridge/internal/traffic"
)

func newRunCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send the configured traffic over the bridge",
		Long: `Run spawns one goroutine per car and pedestrian, arriving at random
intervals, and waits until every one of them has crossed. Interrupting the
run stops new arrivals; entities already waiting still cross.

Set --time-scale 0 to drop all arrival and crossing delays.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd.Context(), v, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.Uint64("seed", 0, "seed for arrival and crossing times")
	f.Float64("time-scale", 0, "multiplier applied to every delay (0 disables delays)")
	f.Int("north", 0, "number of northbound cars")
	f.Int("south", 0, "number of southbound cars")
	f.Int("pedestrians", 0, "number of pedestrians")
	_ = v.BindPFlag("traffic.seed", f.Lookup("seed"))
	_ = v.BindPFlag("traffic.time_scale", f.Lookup("time-scale"))
	_ = v.BindPFlag("traffic.north.count", f.Lookup("north"))
	_ = v.BindPFlag("traffic.south.count", f.Lookup("south"))
	_ = v.BindPFlag("traffic.pedestrians.count", f.Lookup("pedestrians"))

	return cmd
}

func runSimulation(ctx context.Context, v *viper.Viper, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	log := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	m := bridge.NewMonitor()
	sim, err := traffic.New(m, cfg.Traffic, log)
	if err != nil {
		return fmt.Errorf("failed to create simulator: %w", err)
	}
	defer sim.Close()

	runErr := sim.Run(ctx)
	if err := printSummary(stdout, sim.Ledger().Summary()); err != nil {
		return err
	}
	return runErr
}

func printSummary(w io.Writer, summary []traffic.ClassSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tCROSSINGS\tMEAN WAIT\tMAX WAIT\tMAX DWELL")
	for _, s := range summary {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", s.Class, s.Crossings, s.MeanWait(), s.MaxWait, s.MaxDwell)
	}
	return tw.Flush()
}
