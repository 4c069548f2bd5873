// Package mapfbench prepares benchmark inputs for multi-agent pathfinding
// (MAPF) solvers: it converts ASCII grid maps into a compact binary grid
// format and generates randomized, reachability-safe start/goal scenarios
// for a configurable number of agents.
//
// What the module provides:
//
//   - mapgrid/  — ASCII map parsing, tile classification (free vs. blocked),
//     and the canonical binary grid encoding shared by all downstream tools.
//   - regions/  — connected-component labeling of free cells under
//     4-directional adjacency, via an explicit-stack flood fill.
//   - scenario/ — the constrained random start/goal generator: every pair
//     lies inside one connected free region, and no cell is issued twice
//     within a scenario file.
//   - cmd/mapfgen — the batch driver: sweep a directory of maps, emit binary
//     grids, then one scenario file per (map, agent-count) pair.
//
// The generator is fully deterministic under an explicit seed; there is no
// hidden global random state. See scenario.WithSeed and scenario.DeriveSeed.
//
//	go get github.com/danwein8/mapfbench
package mapfbench
