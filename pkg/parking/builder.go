package parking

// Builder assembles the three grid parameters in any order and constructs
// the grid. Validation happens once, in Build.
type Builder struct {
	laneSize        int
	pedestrianExits []int
	disabledBays    []int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSquareSize sets the lane size; the grid is laneSize x laneSize.
func (b *Builder) WithSquareSize(laneSize int) *Builder {
	b.laneSize = laneSize
	return b
}

// WithPedestrianExit registers a pedestrian exit at the given linear
// index. Registration order is the ring search's tie-break order.
func (b *Builder) WithPedestrianExit(index int) *Builder {
	b.pedestrianExits = append(b.pedestrianExits, index)
	return b
}

// WithDisabledBay reserves the bay at the given linear index for disabled
// vehicles.
func (b *Builder) WithDisabledBay(index int) *Builder {
	b.disabledBays = append(b.disabledBays, index)
	return b
}

// Build validates the collected parameters and constructs the grid.
func (b *Builder) Build() (*Grid, error) {
	return NewGrid(b.laneSize, b.pedestrianExits, b.disabledBays)
}
