package bridge

import "fmt"

// Direction is the heading of a car on the bridge.
type Direction uint8

const (
	North Direction = iota
	South
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Class returns the traffic class of a car heading in d.
// It panics if d is neither North nor South.
func (d Direction) Class() Class {
	switch d {
	case North:
		return CarNorth
	case South:
		return CarSouth
	default:
		panic("bridge: invalid direction " + d.String())
	}
}

// Class is one of the three traffic categories sharing the bridge.
// Each class has its own capacity and its own wait queue.
type Class uint8

const (
	CarNorth Class = iota
	CarSouth
	Pedestrian

	numClasses = 3
)

// Classes lists every traffic class in index order.
var Classes = [numClasses]Class{CarNorth, CarSouth, Pedestrian}

// mustValid panics unless c is one of Classes.
func (c Class) mustValid() {
	if c >= numClasses {
		panic("bridge: invalid class " + c.String())
	}
}

func (c Class) String() string {
	switch c {
	case CarNorth:
		return "car-north"
	case CarSouth:
		return "car-south"
	case Pedestrian:
		return "pedestrian"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Capacity is the number of entities of class c allowed on the bridge at once.
func (c Class) Capacity() int {
	if c == Pedestrian {
		return PedestrianCapacity
	}
	return CarCapacity
}

// Turn returns the turn value that favors c.
func (c Class) Turn() Turn {
	switch c {
	case CarNorth:
		return TurnNorth
	case CarSouth:
		return TurnSouth
	default:
		return TurnPedestrian
	}
}

// Turn records which class is favored for admission once the bridge frees up.
//
// It is advisory: a turn never admits anyone on its own, it only narrows which
// waiters may pass their predicate. TurnNone lets whichever class comes first.
type Turn uint8

const (
	TurnNone Turn = iota
	TurnNorth
	TurnSouth
	TurnPedestrian
)

func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "none"
	case TurnNorth:
		return "north"
	case TurnSouth:
		return "south"
	case TurnPedestrian:
		return "pedestrian"
	default:
		return fmt.Sprintf("Turn(%d)", uint8(t))
	}
}

// favors reports whether t lets class c through (its own turn or no turn).
func (t Turn) favors(c Class) bool {
	return t == TurnNone || t == c.Turn()
}
