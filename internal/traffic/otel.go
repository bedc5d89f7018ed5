package traffic

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/llxisdsh/bridge"
)

const instrumentationName = "github.com/llxisdsh/bridge/internal/traffic"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// instruments holds the simulator's OTel metrics.
type instruments struct {
	crossings metric.Int64Counter
	wait      metric.Float64Histogram
	occupancy metric.Int64ObservableGauge
	waiting   metric.Int64ObservableGauge
	reg       metric.Registration

	attrs [len(bridge.Classes)]metric.MeasurementOption
}

// newInstruments creates the metrics against the global meter provider
// (no-op if not configured). The gauges observe m on every collection.
func newInstruments(m *bridge.Monitor) (*instruments, error) {
	mt := meter()
	in := &instruments{}
	for i, c := range bridge.Classes {
		in.attrs[i] = metric.WithAttributes(attribute.String("class", c.String()))
	}

	var err error
	in.crossings, err = mt.Int64Counter(
		"bridge.crossings",
		metric.WithDescription("Total entities that crossed the bridge"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating crossings counter: %w", err)
	}

	in.wait, err = mt.Float64Histogram(
		"bridge.wait",
		metric.WithDescription("Time entities waited to enter the bridge"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wait histogram: %w", err)
	}

	in.occupancy, err = mt.Int64ObservableGauge(
		"bridge.occupancy",
		metric.WithDescription("Entities currently on the bridge"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating occupancy gauge: %w", err)
	}

	in.waiting, err = mt.Int64ObservableGauge(
		"bridge.waiting",
		metric.WithDescription("Entities blocked waiting to enter the bridge"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating waiting gauge: %w", err)
	}

	in.reg, err = mt.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			s := m.Snapshot()
			for i, c := range bridge.Classes {
				o.ObserveInt64(in.occupancy, int64(s.Active(c)), in.attrs[i])
				o.ObserveInt64(in.waiting, int64(s.Waiting(c)), in.attrs[i])
			}
			return nil
		},
		in.occupancy, in.waiting,
	)
	if err != nil {
		return nil, fmt.Errorf("registering bridge callback: %w", err)
	}

	return in, nil
}

func (in *instruments) recordTrip(ctx context.Context, t Trip) {
	attrs := in.attrs[t.ID.Class]
	in.crossings.Add(ctx, 1, attrs)
	in.wait.Record(ctx, t.Wait().Seconds(), attrs)
}

func (in *instruments) close() error {
	return in.reg.Unregister()
}
