package mapgrid

import "fmt"

// Grid is an immutable rectangular occupancy grid.
// Cells are stored row-major; (0,0) is the top-left corner.
type Grid struct {
	width, height int
	blocked       []bool // row-major occupancy, true = impassable
}

// New constructs a Grid from a non-empty rectangular matrix of tiles.
// The input is copied; the Grid never aliases caller memory.
// Returns ErrEmptyGrid if rows has no rows or no columns, and a wrapped
// ErrFormat if any row length differs from the first row's.
// Complexity: O(W×H) time and memory.
func New(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:   w,
		height:  h,
		blocked: make([]bool, w*h),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrFormat, y, len(row), w)
		}
		for x, t := range row {
			g.blocked[y*w+x] = t == Blocked
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Blocked reports whether the cell at (x,y) is impassable.
// Out-of-bounds coordinates are Blocked, matching the fail-safe rule
// used for unknown tile symbols.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}

	return g.blocked[y*g.width+x]
}

// Free reports whether the cell at (x,y) is traversable.
func (g *Grid) Free(x, y int) bool { return !g.Blocked(x, y) }

// Index maps (x,y) to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// FreeCells returns the number of traversable cells.
// Complexity: O(W×H).
func (g *Grid) FreeCells() int {
	var n int
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}

	return n
}
