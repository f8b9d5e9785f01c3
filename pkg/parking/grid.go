package parking

// Grid owns the ordered bay states of one laneSize x laneSize parking
// structure and the counters derived from them. It is constructed once and
// then mutated only through the Engine.
type Grid struct {
	laneSize int
	total    int

	// exits keeps registration order; the ring search visits exits in
	// this order at every radius.
	exits []int

	// exitSet and disabled give O(1) membership classification.
	exitSet  map[int]struct{}
	disabled map[int]struct{}

	bays   []Bay
	parked int
}

// NewGrid builds a grid from a lane size, pedestrian-exit indices and
// disabled-bay indices. It returns a *ConfigError when the lane size is
// not positive, an index lies outside [0, laneSize*laneSize), an index is
// listed twice, or an index is both an exit and a disabled bay.
func NewGrid(laneSize int, pedestrianExits, disabledBays []int) (*Grid, error) {
	if laneSize < 1 {
		return nil, newConfigError("lane_size", laneSize, "must be at least 1")
	}
	total := laneSize * laneSize

	g := &Grid{
		laneSize: laneSize,
		total:    total,
		exitSet:  make(map[int]struct{}, len(pedestrianExits)),
		disabled: make(map[int]struct{}, len(disabledBays)),
		bays:     make([]Bay, total),
	}

	for _, i := range pedestrianExits {
		if i < 0 || i >= total {
			return nil, newConfigError("pedestrian_exits", i, "index out of range")
		}
		if _, dup := g.exitSet[i]; dup {
			return nil, newConfigError("pedestrian_exits", i, "index listed twice")
		}
		g.exitSet[i] = struct{}{}
		g.exits = append(g.exits, i)
		g.bays[i] = Bay{State: BayPedestrianExit}
	}

	for _, i := range disabledBays {
		if i < 0 || i >= total {
			return nil, newConfigError("disabled_bays", i, "index out of range")
		}
		if _, dup := g.disabled[i]; dup {
			return nil, newConfigError("disabled_bays", i, "index listed twice")
		}
		if _, clash := g.exitSet[i]; clash {
			return nil, newConfigError("disabled_bays", i, "index is already a pedestrian exit")
		}
		g.disabled[i] = struct{}{}
		g.bays[i] = Bay{State: BayDisabledFree}
	}

	return g, nil
}

// LaneSize returns the side length of the square grid.
func (g *Grid) LaneSize() int { return g.laneSize }

// Total returns the total bay count, laneSize squared.
func (g *Grid) Total() int { return g.total }

// ParkedCars returns the number of bays currently holding a vehicle.
func (g *Grid) ParkedCars() int { return g.parked }

// PedestrianExits returns the exit indices in registration order. The
// returned slice is a copy.
func (g *Grid) PedestrianExits() []int {
	out := make([]int, len(g.exits))
	copy(out, g.exits)
	return out
}

// AvailableBays returns total minus pedestrian exits minus parked cars.
//
// This is a general-capacity metric, not a type-aware one: disabled-only
// bays count as available even for callers that cannot park on them. A
// non-disabled vehicle may therefore see a positive count and still get
// ErrNoBayAvailable from Park.
func (g *Grid) AvailableBays() int {
	return g.total - len(g.exits) - g.parked
}

// BayAt returns the bay at the given linear index.
func (g *Grid) BayAt(index int) (Bay, error) {
	if !g.inBounds(index) {
		return Bay{}, ErrInvalidBayIndex
	}
	return g.bays[index], nil
}

func (g *Grid) inBounds(index int) bool {
	return index >= 0 && index < g.total
}

// occupy stamps a vehicle into the bay at index. The caller has already
// established that the bay accepts the vehicle.
func (g *Grid) occupy(index int, tag byte) {
	if tag == DisabledTag && g.bays[index].State == BayDisabledFree {
		g.bays[index] = Bay{State: BayDisabledTaken}
	} else {
		g.bays[index] = Bay{State: BayOccupied, Tag: tag}
	}
	g.parked++
}

// release vacates the bay at index, restoring its empty state.
func (g *Grid) release(index int) {
	if _, ok := g.disabled[index]; ok {
		g.bays[index] = Bay{State: BayDisabledFree}
	} else {
		g.bays[index] = Bay{State: BayFree}
	}
	g.parked--
}
