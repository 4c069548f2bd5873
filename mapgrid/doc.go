// Package mapgrid parses ASCII benchmark map files and encodes them as
// binary occupancy grids.
//
// What:
//
//   - Tile classifies one map symbol as Free or Blocked; unrecognized
//     symbols are Blocked (fail-safe).
//   - Grid wraps a rectangular width×height occupancy matrix, row-major,
//     origin top-left, immutable once built.
//   - ParseMap reads the four-line ASCII map header (type, "height N",
//     "width N", separator) followed by height tile rows.
//   - EncodeBinary emits the canonical binary grid format: a
//     "<width> <height>" dimensions line, then height rows of '0'/'1'.
//     Width precedes height on that line, the inverse of the source
//     header's order; downstream consumers depend on this.
//
// Why:
//
//   - One canonical on-disk grid shape shared by the component labeler,
//     the scenario generator, and external solvers.
//   - Fail-safe classification: a typo in a map file can only shrink the
//     traversable area, never open a wall.
//
// Errors:
//
//   - ErrFormat: malformed header, unparsable or negative dimensions,
//     row length not equal to the declared width, truncated file.
//   - ErrEmptyGrid: a declared dimension of zero.
//
// Complexity: parsing and encoding are O(W×H) time and memory.
package mapgrid
