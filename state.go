package bridge

import (
	"errors"
	"fmt"
)

const (
	// CarCapacity is the number of cars per direction allowed on the bridge.
	CarCapacity = 1
	// PedestrianCapacity is the number of pedestrians allowed on the bridge.
	PedestrianCapacity = 3
)

// State is a copy of the monitor's shared counters.
//
// The monitor owns the live instance; callers only ever see snapshots
// returned by Monitor.Snapshot.
type State struct {
	ActiveNorth       int
	ActiveSouth       int
	ActivePedestrians int

	WaitingNorth       int
	WaitingSouth       int
	WaitingPedestrians int

	Turn Turn
}

// Total returns the number of entities currently on the bridge.
func (s *State) Total() int {
	return s.ActiveNorth + s.ActiveSouth + s.ActivePedestrians
}

// Active returns the number of class c entities on the bridge.
func (s *State) Active(c Class) int {
	return *s.active(c)
}

// Waiting returns the number of class c entities blocked in an enter call.
func (s *State) Waiting(c Class) int {
	return *s.waiting(c)
}

func (s *State) active(c Class) *int {
	switch c {
	case CarNorth:
		return &s.ActiveNorth
	case CarSouth:
		return &s.ActiveSouth
	default:
		return &s.ActivePedestrians
	}
}

func (s *State) waiting(c Class) *int {
	switch c {
	case CarNorth:
		return &s.WaitingNorth
	case CarSouth:
		return &s.WaitingSouth
	default:
		return &s.WaitingPedestrians
	}
}

// admits is the admission predicate of class c.
func (s *State) admits(c Class) bool {
	switch c {
	case CarNorth:
		return s.ActivePedestrians == 0 &&
			s.ActiveSouth == 0 &&
			s.ActiveNorth < CarCapacity &&
			s.Turn.favors(CarNorth)
	case CarSouth:
		return s.ActivePedestrians == 0 &&
			s.ActiveNorth == 0 &&
			s.ActiveSouth < CarCapacity &&
			s.Turn.favors(CarSouth)
	default:
		return s.ActivePedestrians < PedestrianCapacity &&
			s.ActiveNorth == 0 &&
			s.ActiveSouth == 0 &&
			s.Turn.favors(Pedestrian)
	}
}

// Admits reports whether an entity of class c would be let onto the bridge
// in state s.
func (s State) Admits(c Class) bool {
	return s.admits(c)
}

// Validate checks the bridge invariants and returns every violation found,
// joined into a single error. It returns nil for a consistent state.
func (s State) Validate() error {
	var errs []error

	occupied := 0
	for _, c := range Classes {
		if s.Active(c) > 0 {
			occupied++
		}
		if s.Active(c) < 0 {
			errs = append(errs, fmt.Errorf("negative active count for %s: %d", c, s.Active(c)))
		}
		if s.Waiting(c) < 0 {
			errs = append(errs, fmt.Errorf("negative waiting count for %s: %d", c, s.Waiting(c)))
		}
		if s.Active(c) > c.Capacity() {
			errs = append(errs, fmt.Errorf("%s over capacity: %d > %d", c, s.Active(c), c.Capacity()))
		}
	}
	if occupied > 1 {
		errs = append(errs, fmt.Errorf("classes share the bridge: north=%d south=%d pedestrians=%d",
			s.ActiveNorth, s.ActiveSouth, s.ActivePedestrians))
	}
	if s.Turn > TurnPedestrian {
		errs = append(errs, fmt.Errorf("unknown turn %d", uint8(s.Turn)))
	}
	return errors.Join(errs...)
}

func (s State) String() string {
	return fmt.Sprintf("bridge: %d on | north %d (waiting %d) | south %d (waiting %d) | pedestrians %d (waiting %d) | turn %s",
		s.Total(),
		s.ActiveNorth, s.WaitingNorth,
		s.ActiveSouth, s.WaitingSouth,
		s.ActivePedestrians, s.WaitingPedestrians,
		s.Turn)
}
