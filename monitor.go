// Package bridge coordinates a single-lane bridge shared by northbound cars,
// southbound cars and pedestrians.
//
// A Monitor admits one class at a time: at most one car per direction and at
// most three pedestrians, never mixed. When an entity leaves, the monitor
// hands the turn to a class that is waiting, so no class can hold the bridge
// forever while another queues.
package bridge

import (
	"sync"
)

// Monitor guards the bridge state with one lock and one condition per class.
//
// Usage:
//
//	m := bridge.NewMonitor()
//	// car goroutine
//	m.EnterCar(bridge.North)
//	drive()
//	m.LeaveCar(bridge.North)
//	// pedestrian goroutine
//	m.CrossPedestrian(walk)
//
// Enter calls block until the class's admission predicate holds; leave calls
// never block beyond acquiring the lock. Waiters of a class are woken all at
// once and re-check their predicate, so there is no FIFO order within a class.
//
// It is zero-value usable. A Monitor must not be copied after first use.
type Monitor struct {
	_     noCopy
	mu    ticketLock
	conds [numClasses]sync.Cond
	state State
}

// NewMonitor creates a Monitor with an empty bridge and no turn.
func NewMonitor() *Monitor {
	m := &Monitor{}
	m.init()
	return m
}

// init binds the conditions to the lock. Must be called with mu held or
// before the monitor is shared.
func (m *Monitor) init() {
	if m.conds[0].L != nil {
		return
	}
	for i := range m.conds {
		m.conds[i].L = &m.mu
	}
}

func (m *Monitor) lock() {
	m.mu.Lock()
	m.init()
}

// enter blocks until class c is admitted and records it on the bridge.
func (m *Monitor) enter(c Class) {
	c.mustValid()
	m.lock()
	m.state.arrive(c)
	for !m.state.admits(c) {
		m.conds[c].Wait()
	}
	m.state.admit(c)
	m.mu.Unlock()
}

// leave records that a class c entity left and wakes the classes that may
// now proceed: the one handed the turn, and c itself.
func (m *Monitor) leave(c Class) {
	c.mustValid()
	m.lock()
	defer m.mu.Unlock()
	if next, ok := m.state.depart(c); ok && next != c {
		m.conds[next].Broadcast()
	}
	m.conds[c].Broadcast()
}

// EnterCar blocks until a car heading in d may drive onto the bridge.
// It panics if d is neither North nor South.
func (m *Monitor) EnterCar(d Direction) {
	m.enter(d.Class())
}

// LeaveCar records that a car heading in d left the bridge.
// It panics if d is invalid or no such car is on the bridge.
func (m *Monitor) LeaveCar(d Direction) {
	m.leave(d.Class())
}

// EnterPedestrian blocks until a pedestrian may walk onto the bridge.
func (m *Monitor) EnterPedestrian() {
	m.enter(Pedestrian)
}

// LeavePedestrian records that a pedestrian left the bridge.
// It panics if no pedestrian is on the bridge.
func (m *Monitor) LeavePedestrian() {
	m.leave(Pedestrian)
}

// Enter blocks until an entity of class c is admitted.
// It panics, without touching the bridge state, if c is not one of Classes.
func (m *Monitor) Enter(c Class) {
	m.enter(c)
}

// Leave records that an entity of class c left the bridge.
// It panics if c is not one of Classes or no entity of c is on the bridge.
func (m *Monitor) Leave(c Class) {
	m.leave(c)
}

// CrossCar drives a car heading in d across the bridge: it enters, calls
// occupy, and leaves even if occupy panics.
func (m *Monitor) CrossCar(d Direction, occupy func()) {
	m.cross(d.Class(), occupy)
}

// CrossPedestrian walks a pedestrian across the bridge, like CrossCar.
func (m *Monitor) CrossPedestrian(occupy func()) {
	m.cross(Pedestrian, occupy)
}

func (m *Monitor) cross(c Class, occupy func()) {
	m.enter(c)
	defer m.leave(c)
	if occupy != nil {
		occupy()
	}
}

// Snapshot returns a consistent copy of the bridge state.
func (m *Monitor) Snapshot() State {
	m.lock()
	s := m.state
	m.mu.Unlock()
	return s
}

func (m *Monitor) String() string {
	s := m.Snapshot()
	return s.String()
}
