package traffic

import (
	"github.com/rs/zerolog"

	"github.com/llxisdsh/bridge"
)

// stateObject renders a bridge snapshot as a nested log object.
type stateObject bridge.State

func (o stateObject) MarshalZerologObject(e *zerolog.Event) {
	s := bridge.State(o)
	e.Int("on", s.Total()).
		Int("north", s.ActiveNorth).
		Int("north_waiting", s.WaitingNorth).
		Int("south", s.ActiveSouth).
		Int("south_waiting", s.WaitingSouth).
		Int("pedestrians", s.ActivePedestrians).
		Int("pedestrians_waiting", s.WaitingPedestrians).
		Stringer("turn", s.Turn)
}

func logState(e *zerolog.Event, s bridge.State) *zerolog.Event {
	return e.Object("bridge", stateObject(s))
}
