// Package spatial buckets a normalised point cloud for point-insertion
// ordering.
package spatial

import (
	"github.com/hatchtri/delaunay/types"
)

// PointBinGrid partitions the unit square into cellsPerSide x cellsPerSide
// cells and buckets points into them so that a boustrophedon walk over
// the cells visits spatially close points consecutively. Feeding a mesh
// builder points in this order keeps the point-location walk short,
// since each new point tends to land near the triangle most recently
// touched.
type PointBinGrid struct {
	cells        [][]types.Vector2
	cellsPerSide int
}

// CellsPerSide returns ceil(numPoints^(1/4)), the grid resolution the
// bin grid's constructor should use for a point set of the given size.
func CellsPerSide(numPoints int) int {
	if numPoints < 1 {
		return 1
	}
	n := 1
	for n*n*n*n < numPoints {
		n++
	}
	return n
}

// NewPointBinGrid creates an empty bin grid over the unit square with
// the given resolution.
func NewPointBinGrid(cellsPerSide int) *PointBinGrid {
	if cellsPerSide < 1 {
		cellsPerSide = 1
	}
	return &PointBinGrid{
		cells:        make([][]types.Vector2, cellsPerSide*cellsPerSide),
		cellsPerSide: cellsPerSide,
	}
}

// Add buckets p, assumed to already lie in the unit square, into its
// cell. A 0.99 shrink factor guarantees that a point exactly on the
// upper boundary (x or y == 1) still maps inside the grid rather than
// one cell past it.
func (g *PointBinGrid) Add(p types.Vector2) {
	n := float32(g.cellsPerSide)
	row := int(0.99 * n * p.Y)
	col := int(0.99 * n * p.X)
	if row >= g.cellsPerSide {
		row = g.cellsPerSide - 1
	}
	if col >= g.cellsPerSide {
		col = g.cellsPerSide - 1
	}
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}

	// Boustrophedon: even rows left-to-right, odd rows right-to-left.
	//   6 7 8 ->
	//   5 4 3 <-
	//   0 1 2 ->
	var bin int
	if row%2 == 0 {
		bin = row*g.cellsPerSide + col
	} else {
		bin = (row+1)*g.cellsPerSide - col - 1
	}

	g.cells[bin] = append(g.cells[bin], p)
}

// Ordered flattens the grid's cells in boustrophedon bin order,
// preserving each cell's insertion order.
func (g *PointBinGrid) Ordered() []types.Vector2 {
	total := 0
	for _, c := range g.cells {
		total += len(c)
	}
	out := make([]types.Vector2, 0, total)
	for _, c := range g.cells {
		out = append(out, c...)
	}
	return out
}

// Order buckets every point in pts into a bin grid sized for len(pts)
// and returns them in boustrophedon order. This is the entry point the
// construction driver uses.
func Order(pts []types.Vector2) []types.Vector2 {
	g := NewPointBinGrid(CellsPerSide(len(pts)))
	for _, p := range pts {
		g.Add(p)
	}
	return g.Ordered()
}
