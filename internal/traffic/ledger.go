package traffic

import (
	"time"

	"github.com/llxisdsh/pb"

	"github.com/llxisdsh/bridge"
)

// Ledger collects the trips of a run. Entities record concurrently.
//
// It is zero-value usable.
type Ledger struct {
	// written by every entity goroutine, read by Summary mid-run
	trips pb.HashTrieMap[EntityID, Trip]
}

// Record stores t, replacing any earlier trip of the same entity.
func (l *Ledger) Record(t Trip) {
	l.trips.Store(t.ID, t)
}

// Trip returns the recorded trip of id.
func (l *Ledger) Trip(id EntityID) (Trip, bool) {
	return l.trips.Load(id)
}

// Len returns the number of recorded trips.
func (l *Ledger) Len() int {
	return l.trips.Size()
}

// ClassSummary aggregates the trips of one class.
type ClassSummary struct {
	Class     bridge.Class
	Crossings int
	TotalWait time.Duration
	MaxWait   time.Duration
	MaxDwell  time.Duration
}

// MeanWait is the average time an entity of the class waited to enter.
func (s ClassSummary) MeanWait() time.Duration {
	if s.Crossings == 0 {
		return 0
	}
	return s.TotalWait / time.Duration(s.Crossings)
}

// Summary aggregates the recorded trips per class, in bridge.Classes order.
func (l *Ledger) Summary() []ClassSummary {
	out := make([]ClassSummary, len(bridge.Classes))
	for i, c := range bridge.Classes {
		out[i].Class = c
	}
	l.trips.Range(func(_ EntityID, t Trip) bool {
		s := &out[t.ID.Class]
		s.Crossings++
		w := t.Wait()
		s.TotalWait += w
		s.MaxWait = max(s.MaxWait, w)
		s.MaxDwell = max(s.MaxDwell, t.Dwell())
		return true
	})
	return out
}
