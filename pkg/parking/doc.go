// Package parking models a square parking structure as a flat sequence of
// labeled bays and provides allocation against it.
//
// # Overview
//
// The package is built from three collaborators sharing one data structure:
//
//   - Grid: the ordered bay states and the counters derived from them
//   - Engine: park/unpark, with a ring search anchored at pedestrian exits
//   - Renderer: a two-dimensional snake-ordered text diagram of the grid
//
// A grid is laneSize x laneSize bays, addressed by a zero-based linear
// index in row-major order. Some bays are pedestrian exits (never
// allocatable), some are reserved for disabled vehicles, the rest are
// general bays.
//
// # Usage
//
//	grid, err := parking.NewBuilder().
//	    WithSquareSize(4).
//	    WithPedestrianExit(8).
//	    WithDisabledBay(5).
//	    Build()
//	if err != nil {
//	    return err
//	}
//
//	engine := parking.NewEngine(grid)
//	bay, err := engine.Park('C')
//	if errors.Is(err, parking.ErrNoBayAvailable) {
//	    // structure is full (or has no reachable matching bay)
//	}
//
//	fmt.Print(parking.NewRenderer(grid).Render())
//
// # Allocation policy
//
// Park searches outward from the registered pedestrian exits in rings of
// increasing radius, testing the bay to the left of each exit before the
// bay to its right. Ties are broken by exit registration order, then
// left-before-right. The vehicle tag 'D' denotes a disabled vehicle and
// matches only disabled-reserved bays; any other tag matches only general
// bays.
//
// # Thread safety
//
// A Grid and its Engine are not safe for concurrent use. Every operation
// is synchronous and completes before returning; callers that share a grid
// across goroutines must serialize access externally (the HTTP server in
// pkg/server guards its grid with a single mutex).
package parking
