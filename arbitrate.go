package bridge

// handoff is the order in which waiting classes are offered the turn when an
// entity of the indexing class leaves. A departing north car prefers south,
// a departing south car prefers pedestrians, a departing pedestrian prefers
// north; the leaving class itself always comes last.
var handoff = [numClasses][numClasses]Class{
	CarNorth:   {CarSouth, Pedestrian, CarNorth},
	CarSouth:   {Pedestrian, CarNorth, CarSouth},
	Pedestrian: {CarNorth, CarSouth, Pedestrian},
}

// arrive registers a class c entity that wants to enter.
func (s *State) arrive(c Class) {
	*s.waiting(c)++
}

// admit moves an admitted class c entity from waiting to active.
func (s *State) admit(c Class) {
	*s.waiting(c)--
	*s.active(c)++
}

// depart removes a class c entity from the bridge and hands the turn to the
// first class in handoff order that has waiters. It returns that class and
// true, or false when nobody waits.
//
// With nobody waiting, the turn is cleared once no entity of c remains on the
// bridge; while some still cross, the turn is left as is.
func (s *State) depart(c Class) (Class, bool) {
	n := s.active(c)
	if *n <= 0 {
		panic("bridge: leave without matching enter for " + c.String())
	}
	*n--

	for _, next := range handoff[c] {
		if s.Waiting(next) > 0 {
			s.Turn = next.Turn()
			return next, true
		}
	}
	if *n == 0 {
		s.Turn = TurnNone
	}
	return c, false
}
