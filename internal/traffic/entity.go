// Package traffic drives cars and pedestrians across a bridge.Monitor the way
// real traffic would: random arrivals, random time spent on the bridge, one
// goroutine per entity.
package traffic

import (
	"fmt"
	"time"

	"github.com/llxisdsh/bridge"
)

// EntityID identifies one car or pedestrian of a run.
type EntityID struct {
	Class bridge.Class
	Seq   int
}

func (id EntityID) String() string {
	return fmt.Sprintf("%s#%d", id.Class, id.Seq)
}

// Trip is the record of one crossing.
type Trip struct {
	ID        EntityID
	Requested time.Time // called enter
	Entered   time.Time // enter returned
	Left      time.Time // leave returned
}

// Wait is how long the entity was blocked before entering.
func (t Trip) Wait() time.Duration {
	return t.Entered.Sub(t.Requested)
}

// Dwell is how long the entity stayed on the bridge.
func (t Trip) Dwell() time.Duration {
	return t.Left.Sub(t.Entered)
}
