// Package regions partitions the free cells of a mapgrid.Grid into
// connected components under 4-directional adjacency.
//
// What:
//
//   - Label scans the grid in row-major order and flood-fills each
//     still-unlabeled free cell's region with an explicit work-list
//     (iterative depth-first), so recursion depth never limits grid size.
//   - Component ids are assigned in discovery order starting at 0. The
//     order carries no meaning, but it is deterministic for a given grid,
//     which reproducible tests depend on.
//
// Why:
//
//   - The scenario generator must place an agent's start and goal inside
//     one mutually reachable free region; components are exactly those
//     regions.
//
// A grid with zero free cells yields zero components; that is not an error
// at this layer.
//
// Complexity: O(W×H) time and memory — each cell is visited once.
package regions
