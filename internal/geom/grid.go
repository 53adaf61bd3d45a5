package geom

import "math"

// MaxGridCells caps the number of grid cells along one axis. When the bounds
// would need more, the cell size grows instead.
const MaxGridCells = 1024

// SpatialGrid is a uniform grid for broad-phase culling over a bounded area.
// Items are inserted by position and index, then nearby items can be queried
// in O(1) per cell via a 3x3 neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// items so that every candidate pair is found within the 3x3 neighborhood.
type SpatialGrid struct {
	origin      Point
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between passes (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering the rectangle from lo to hi.
// cellSize should be >= the maximum interaction distance of the inserted items.
func NewSpatialGrid(lo, hi Point, cellSize float64) *SpatialGrid {
	width := hi.X - lo.X
	height := hi.Y - lo.Y

	// Bounds too wide to measure collapse into a single cell.
	if !isFinite(width) || !isFinite(height) || !isFinite(cellSize) {
		return &SpatialGrid{
			origin:   lo,
			cellSize: math.Inf(1),
			cols:     1,
			rows:     1,
			cells:    make([]gridCell, 1),
		}
	}

	if !(cellSize > 0) {
		cellSize = math.Max(1, math.Max(width, height))
	}
	if limit := math.Max(width, height) / MaxGridCells; cellSize < limit {
		cellSize = limit
	}

	cols := int(math.Floor(width/cellSize)) + 1
	rows := int(math.Floor(height/cellSize)) + 1
	if cols > MaxGridCells {
		cols = MaxGridCells
	}
	if rows > MaxGridCells {
		rows = MaxGridCells
	}

	return &SpatialGrid{
		origin:      lo,
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// CellSize returns the edge length of one cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(p Point, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. Cells outside the grid are skipped.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Point, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols

		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}

			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *SpatialGrid) posToCell(p Point) (col, row int) {
	col = clampCell((p.X-g.origin.X)*g.invCellSize, g.cols)
	row = clampCell((p.Y-g.origin.Y)*g.invCellSize, g.rows)
	return col, row
}

// clampCell truncates a fractional cell coordinate into [0, n). The check runs
// before the conversion so NaN and out of range values never reach int().
func clampCell(v float64, n int) int {
	switch {
	case !(v >= 0):
		return 0
	case v >= float64(n):
		return n - 1
	}
	return int(v)
}
