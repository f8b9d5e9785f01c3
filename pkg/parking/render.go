package parking

import "strings"

// Renderer serializes a Grid into a two-dimensional text diagram.
type Renderer struct {
	grid *Grid
}

// NewRenderer creates a renderer for the given grid.
func NewRenderer(grid *Grid) *Renderer {
	return &Renderer{grid: grid}
}

// Render returns laneSize lines of laneSize characters each, one line per
// lane, each terminated by a newline. Lanes alternate direction: lane 0
// reads its bays in ascending index order, lane 1 in descending order, and
// so on, reflecting vehicles making a U-turn at the end of each lane
// rather than returning to the starting side.
//
// Bays render as '=' (pedestrian exit), '@' (free disabled bay), 'D'
// (taken disabled bay), 'U' (free general bay), or the parked vehicle's
// tag.
func (r *Renderer) Render() string {
	g := r.grid
	var sb strings.Builder
	sb.Grow(g.total + g.laneSize)

	for row := 0; row < g.laneSize; row++ {
		for _, i := range rowIndices(g.laneSize, row) {
			sb.WriteByte(g.bays[i].Marker())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lanes returns the diagram as one string per lane, without newlines.
func (r *Renderer) Lanes() []string {
	lines := strings.Split(r.Render(), "\n")
	return lines[:r.grid.laneSize]
}

// rowIndices returns the linear bay indices of one lane in traversal
// order: ascending for even rows, descending for odd rows. Each lane
// covers exactly the contiguous range [row*laneSize, (row+1)*laneSize).
func rowIndices(laneSize, row int) []int {
	indices := make([]int, laneSize)
	start := row * laneSize
	if row%2 == 0 {
		for step := 0; step < laneSize; step++ {
			indices[step] = start + step
		}
	} else {
		end := start + laneSize - 1
		for step := 0; step < laneSize; step++ {
			indices[step] = end - step
		}
	}
	return indices
}
