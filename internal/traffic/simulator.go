package traffic

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/bridge"
	"github.com/llxisdsh/bridge/internal/config"
)

// ErrInvariant is wrapped by Run when an entity saw the bridge in a state
// breaking mutual exclusion or a capacity bound.
var ErrInvariant = errors.New("bridge invariant violated")

// Simulator sends the configured population of cars and pedestrians across
// a shared monitor.
//
// Each class has its own generator goroutine that spawns one goroutine per
// entity at exponentially distributed intervals. Every entity requests the
// bridge, stays on it for a normally distributed time and leaves.
type Simulator struct {
	monitor *bridge.Monitor
	cfg     config.TrafficConfig
	log     zerolog.Logger
	ledger  *Ledger
	metrics *instruments
}

// New creates a Simulator driving m.
func New(m *bridge.Monitor, cfg config.TrafficConfig, log zerolog.Logger) (*Simulator, error) {
	in, err := newInstruments(m)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		monitor: m,
		cfg:     cfg,
		log:     log,
		ledger:  &Ledger{},
		metrics: in,
	}, nil
}

// Ledger returns the trips recorded so far.
func (s *Simulator) Ledger() *Ledger {
	return s.ledger
}

// Close releases the simulator's metric callbacks.
func (s *Simulator) Close() error {
	return s.metrics.close()
}

func (s *Simulator) stream(c bridge.Class) config.StreamConfig {
	switch c {
	case bridge.CarNorth:
		return s.cfg.North
	case bridge.CarSouth:
		return s.cfg.South
	default:
		return s.cfg.Pedestrians
	}
}

// Run generates all traffic and waits until every entity has crossed.
//
// Cancelling ctx stops the generators; entities already on their way still
// finish their crossing, since an enter call cannot be abandoned. Run then
// returns the context's error.
func (s *Simulator) Run(ctx context.Context) error {
	start := time.Now()
	s.log.Info().
		Int("north", s.cfg.North.Count).
		Int("south", s.cfg.South.Count).
		Int("pedestrians", s.cfg.Pedestrians.Count).
		Float64("time_scale", s.cfg.TimeScale).
		Msg("simulation started")

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range bridge.Classes {
		stream := s.stream(c)
		// One source per generator: rand.Rand is not safe for concurrent use.
		r := rand.New(rand.NewPCG(s.cfg.Seed, uint64(c)))
		g.Go(func() error {
			return s.generate(gctx, c, stream, r)
		})
	}
	err := g.Wait()

	s.log.Info().
		Int("crossings", s.ledger.Len()).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("simulation finished")
	return err
}

func (s *Simulator) generate(ctx context.Context, c bridge.Class, stream config.StreamConfig, r *rand.Rand) error {
	var entities errgroup.Group
	for seq := 1; seq <= stream.Count; seq++ {
		id := EntityID{Class: c, Seq: seq}
		dwell := scale(normal(r, stream.DwellMean, stream.DwellStdDev), s.cfg.TimeScale)
		entities.Go(func() error {
			return s.cross(ctx, id, dwell)
		})

		if err := sleep(ctx, scale(exponential(r, stream.Arrival), s.cfg.TimeScale)); err != nil {
			s.log.Warn().
				Stringer("class", c).
				Int("generated", seq).
				Msg("generator stopped")
			break
		}
	}
	if err := entities.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// cross takes one entity over the bridge.
func (s *Simulator) cross(ctx context.Context, id EntityID, dwell time.Duration) error {
	log := s.log.With().Stringer("entity", id).Logger()
	trip := Trip{ID: id}

	s.trace(log, "wants to enter")
	trip.Requested = time.Now()
	s.monitor.Enter(id.Class)
	trip.Entered = time.Now()

	// The snapshot is taken after enter returned, so another entity may
	// already have joined; the invariants must hold regardless.
	st := s.monitor.Snapshot()
	logState(log.Debug(), st).Msg("enters the bridge")
	verr := st.Validate()

	if dwell > 0 {
		time.Sleep(dwell)
	}

	s.trace(log, "leaving the bridge")
	s.monitor.Leave(id.Class)
	trip.Left = time.Now()
	s.trace(log, "out of the bridge")

	s.ledger.Record(trip)
	s.metrics.recordTrip(ctx, trip)

	if verr != nil {
		log.Error().Err(verr).Msg("bridge invariants violated")
		return fmt.Errorf("%s: %w: %w", id, ErrInvariant, verr)
	}
	return nil
}

// trace logs a transition with the current bridge state at debug level. The
// snapshot is only taken when debug logging is enabled.
func (s *Simulator) trace(log zerolog.Logger, msg string) {
	if e := log.Debug(); e.Enabled() {
		logState(e, s.monitor.Snapshot()).Msg(msg)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
