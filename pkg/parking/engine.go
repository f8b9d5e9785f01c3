package parking

// Engine implements park and unpark against a Grid.
type Engine struct {
	grid    *Grid
	metrics *Metrics
}

// NewEngine creates an allocation engine for the given grid.
func NewEngine(grid *Grid) *Engine {
	return &Engine{grid: grid}
}

// WithMetrics attaches Prometheus collectors to the engine and returns it.
// A nil Metrics leaves the engine unchanged; recording is a no-op without
// collectors.
func (e *Engine) WithMetrics(m *Metrics) *Engine {
	e.metrics = m
	return e
}

// Grid returns the grid the engine allocates against.
func (e *Engine) Grid() *Grid { return e.grid }

// Park places a vehicle in the free bay nearest to a pedestrian exit and
// returns its index.
//
// The search expands outward from the registered exits in rings of
// increasing radius. At each radius every exit is visited in registration
// order, testing the bay radius positions to its left before the bay
// radius positions to its right; the first matching bay wins. An exit at
// index 0 additionally claims the adjacent bay 1 directly whenever that
// bay is a free general bay, skipping the vehicle-type check: index 0 is
// the structure entrance and its neighbour behaves as a catch-all first
// bay.
//
// The tag 'D' denotes a disabled vehicle and matches only disabled
// reserved bays; every other tag matches only general bays. The reserved
// characters '=', '@' and 'U' are rejected with ErrInvalidVehicleTag.
//
// Park returns ErrNoBayAvailable when the structure is full, when no
// reachable bay matches the vehicle type, or when no pedestrian exit is
// registered (the search has no anchor).
func (e *Engine) Park(tag byte) (int, error) {
	if reservedTag(tag) {
		return -1, ErrInvalidVehicleTag
	}

	g := e.grid
	if g.AvailableBays() == 0 || len(g.exits) == 0 {
		e.record(parkOutcomeRejected)
		return -1, ErrNoBayAvailable
	}

	for radius := 1; ; radius++ {
		// The search stops once a whole radius pass finds every exit's
		// candidate pair out of bounds: no further ring can reach a bay
		// an earlier one could not.
		anyInBounds := false

		for _, exit := range g.exits {
			if exit == 0 && g.total > 1 && g.bays[1].State == BayFree {
				g.occupy(1, tag)
				e.record(parkOutcomeParked)
				return 1, nil
			}

			if left := exit - radius; g.inBounds(left) {
				anyInBounds = true
				if e.tryOccupy(left, tag) {
					return left, nil
				}
			}
			if right := exit + radius; g.inBounds(right) {
				anyInBounds = true
				if e.tryOccupy(right, tag) {
					return right, nil
				}
			}
		}

		if !anyInBounds {
			e.record(parkOutcomeRejected)
			return -1, ErrNoBayAvailable
		}
	}
}

// tryOccupy parks the vehicle at index when the bay matches its type.
func (e *Engine) tryOccupy(index int, tag byte) bool {
	bay := e.grid.bays[index]
	if tag == DisabledTag {
		if bay.State != BayDisabledFree {
			return false
		}
	} else if bay.State != BayFree {
		return false
	}
	e.grid.occupy(index, tag)
	e.record(parkOutcomeParked)
	return true
}

// Unpark removes the vehicle at the given index. It reports false without
// changing state when the bay is already vacant or is a pedestrian exit,
// and returns ErrInvalidBayIndex when the index lies outside the grid.
func (e *Engine) Unpark(index int) (bool, error) {
	g := e.grid
	if !g.inBounds(index) {
		return false, ErrInvalidBayIndex
	}

	switch g.bays[index].State {
	case BayFree, BayDisabledFree, BayPedestrianExit:
		e.recordUnpark(unparkOutcomeVacant)
		return false, nil
	}

	g.release(index)
	e.recordUnpark(unparkOutcomeRemoved)
	return true, nil
}

func (e *Engine) record(outcome string) {
	if e.metrics == nil {
		return
	}
	e.metrics.parkTotal.WithLabelValues(outcome).Inc()
	e.updateGauges()
}

func (e *Engine) recordUnpark(outcome string) {
	if e.metrics == nil {
		return
	}
	e.metrics.unparkTotal.WithLabelValues(outcome).Inc()
	e.updateGauges()
}

func (e *Engine) updateGauges() {
	e.metrics.parkedCars.Set(float64(e.grid.ParkedCars()))
	e.metrics.availableBays.Set(float64(e.grid.AvailableBays()))
}
