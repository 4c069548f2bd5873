// Package mapgrid defines the grid value types and sentinel errors shared
// by the parsers and encoders in this package.
package mapgrid

import "errors"

// Sentinel errors for map and grid file handling.
var (
	// ErrFormat indicates a malformed map or binary grid file: a missing or
	// unparsable header line, a negative dimension, a row whose length does
	// not match the declared width, or a truncated body. Wrapped errors
	// carry the offending line and values; match with errors.Is.
	ErrFormat = errors.New("mapgrid: malformed map file")

	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("mapgrid: grid must have at least one row and one column")
)

// Tile is the classification of a single map cell.
type Tile uint8

const (
	// Free marks a traversable cell.
	Free Tile = iota
	// Blocked marks an impassable cell.
	Blocked
)

// ClassifyTile maps one source map symbol to a Tile.
// '.' and 'G' are Free; '@', 'O', 'T', 'S', 'W' are Blocked.
// Every other symbol is Blocked — the fail-safe default: an unknown glyph
// must never widen the traversable area.
func ClassifyTile(c byte) Tile {
	switch c {
	case '.', 'G':
		return Free
	default:
		return Blocked
	}
}

// Cell identifies one grid cell by its (X, Y) coordinates,
// 0 ≤ X < width, 0 ≤ Y < height, origin at the top-left corner.
type Cell struct {
	X, Y int
}
