package scenario

import (
	"fmt"
	"math/rand"

	"github.com/danwein8/mapfbench/mapgrid"
	"github.com/danwein8/mapfbench/regions"
)

// minPoolCells is the smallest component that can host an agent:
// a start and a goal cannot coincide.
const minPoolCells = 2

// Generate assigns a start and a goal cell to each of agents agents on g.
//
// The grid's free cells are labeled fresh into connected components
// (4-directional); components with fewer than 2 cells are discarded. Each
// agent then, in order:
//
//  1. selects one component uniformly at random from those still holding
//     ≥ 2 cells — uniform over components, not weighted by size;
//  2. draws start, then goal, uniformly without replacement from that
//     component's remaining cells, removing each at the moment of
//     assignment.
//
// Removal at assignment time makes the invariants structural: no cell is
// issued twice within the scenario, start ≠ goal, and both always share a
// component. Returns ErrAgentCount for agents < 1 and
// ErrInsufficientCapacity when no eligible component remains, before the
// first agent or mid-run. On error the returned Scenario is nil — never a
// partial result.
//
// Without an Option the generation is deterministic under the default
// seed; pass WithSeed or WithRNG for reproducible or entropy-driven runs.
//
// Complexity: O(W×H + agents×components) time, O(W×H) memory.
func Generate(g *mapgrid.Grid, agents int, opts ...Option) (Scenario, error) {
	if agents < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrAgentCount, agents)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(0)
	}

	// Working pools are scratch copies; the labeling itself stays intact.
	lab := regions.Label(g)
	pools := make([][]mapgrid.Cell, 0, len(lab.Components))
	for _, comp := range lab.Components {
		if len(comp) >= minPoolCells {
			pools = append(pools, append([]mapgrid.Cell(nil), comp...))
		}
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("%w: no connected free region with at least %d cells", ErrInsufficientCapacity, minPoolCells)
	}

	out := make(Scenario, 0, agents)
	for agent := 0; agent < agents; agent++ {
		// Components shrink as cells are consumed; re-filter before each pick.
		eligible := pools[:0]
		for _, p := range pools {
			if len(p) >= minPoolCells {
				eligible = append(eligible, p)
			}
		}
		pools = eligible
		if len(pools) == 0 {
			return nil, fmt.Errorf("%w: placed %d of %d agents", ErrInsufficientCapacity, agent, agents)
		}

		ci := rng.Intn(len(pools))
		var start, goal mapgrid.Cell
		start, pools[ci] = drawCell(pools[ci], rng)
		goal, pools[ci] = drawCell(pools[ci], rng)
		out = append(out, Entry{Start: start, Goal: goal})
	}

	return out, nil
}

// drawCell removes and returns one uniformly random cell from pool via
// index-swap removal. The caller guarantees pool is non-empty.
// Complexity: O(1).
func drawCell(pool []mapgrid.Cell, rng *rand.Rand) (mapgrid.Cell, []mapgrid.Cell) {
	i := rng.Intn(len(pool))
	c := pool[i]
	last := len(pool) - 1
	pool[i] = pool[last]

	return c, pool[:last]
}
