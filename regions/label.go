package regions

import "github.com/danwein8/mapfbench/mapgrid"

// Unlabeled is the CompID value of every blocked cell.
const Unlabeled = -1

// neighborOffsets is the fixed 4-neighborhood: N, E, S, W. No diagonals.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Labeling is the result of partitioning a grid's free cells.
// Components partition the free-cell set exactly: every free cell belongs
// to exactly one component, and no blocked cell belongs to any.
type Labeling struct {
	// CompID maps each row-major cell index to its component id,
	// or Unlabeled for blocked cells.
	CompID []int
	// Components lists each component's cells, indexed by component id.
	// Ids follow row-major discovery order starting at 0.
	Components [][]mapgrid.Cell
}

// Label partitions the free cells of g into connected components under
// 4-directional adjacency. Flood fill uses an explicit stack rather than
// recursion; cells are marked when pushed so each is visited exactly once.
// Complexity: O(W×H) time and memory.
func Label(g *mapgrid.Grid) *Labeling {
	w, h := g.Width(), g.Height()
	lab := &Labeling{
		CompID: make([]int, w*h),
	}
	for i := range lab.CompID {
		lab.CompID[i] = Unlabeled
	}

	var stack []mapgrid.Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.Blocked(x, y) || lab.CompID[g.Index(x, y)] != Unlabeled {
				continue
			}
			id := len(lab.Components)
			var cells []mapgrid.Cell

			stack = append(stack[:0], mapgrid.Cell{X: x, Y: y})
			lab.CompID[g.Index(x, y)] = id
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cells = append(cells, c)
				for _, d := range neighborOffsets {
					nx, ny := c.X+d[0], c.Y+d[1]
					if g.Blocked(nx, ny) {
						continue
					}
					if ni := g.Index(nx, ny); lab.CompID[ni] == Unlabeled {
						lab.CompID[ni] = id
						stack = append(stack, mapgrid.Cell{X: nx, Y: ny})
					}
				}
			}
			lab.Components = append(lab.Components, cells)
		}
	}

	return lab
}

// ComponentOf returns the component id of cell c in g's labeling,
// or Unlabeled if c is blocked.
func (l *Labeling) ComponentOf(g *mapgrid.Grid, c mapgrid.Cell) int {
	if !g.InBounds(c.X, c.Y) {
		return Unlabeled
	}

	return l.CompID[g.Index(c.X, c.Y)]
}

// SameComponent reports whether a and b are free cells of one component.
func (l *Labeling) SameComponent(g *mapgrid.Grid, a, b mapgrid.Cell) bool {
	ca := l.ComponentOf(g, a)

	return ca != Unlabeled && ca == l.ComponentOf(g, b)
}
