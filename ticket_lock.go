package bridge

import (
	"runtime"
	"sync/atomic"
	"time"
)

// ticketLock is the monitor's mutex: a FIFO spin lock.
//
// Entities enter the monitor in the order they called lock, so a goroutine
// returning from a condition wait is not overtaken by a stream of newcomers
// on its way back into the critical section.
//
// Every critical section of the monitor touches a handful of counters, which
// keeps spinning cheap. It implements sync.Locker so sync.Cond can use it.
type ticketLock struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
}

func (l *ticketLock) Lock() {
	my := l.next.Add(1) - 1
	var spins int
	for l.serving.Load() != my {
		backoff(&spins)
	}
}

func (l *ticketLock) Unlock() {
	l.serving.Add(1)
}

const (
	maxYields  = 16
	sleepAfter = 50 * time.Microsecond
)

// backoff yields the processor for the first few rounds, then sleeps.
func backoff(spins *int) {
	if *spins < maxYields {
		*spins++
		runtime.Gosched()
		return
	}
	*spins = 0
	time.Sleep(sleepAfter)
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
