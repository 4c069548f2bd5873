package mapgrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danwein8/mapfbench/mapgrid"
)

// sampleMap exercises every documented tile symbol.
const sampleMap = "octile\n" +
	"height 3\n" +
	"width 4\n" +
	"map\n" +
	".G@.\n" +
	"T.SW\n" +
	"..OG\n"

// TestParseMap_Classification parses a map covering all known symbols and
// verifies each cell's occupancy.
func TestParseMap_Classification(t *testing.T) {
	g, err := mapgrid.ParseMap(strings.NewReader(sampleMap))
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())

	free := []mapgrid.Cell{{0, 0}, {1, 0}, {3, 0}, {1, 1}, {0, 2}, {1, 2}, {3, 2}}
	blocked := []mapgrid.Cell{{2, 0}, {0, 1}, {2, 1}, {3, 1}, {2, 2}}
	for _, c := range free {
		assert.True(t, g.Free(c.X, c.Y), "cell (%d,%d) should be free", c.X, c.Y)
	}
	for _, c := range blocked {
		assert.True(t, g.Blocked(c.X, c.Y), "cell (%d,%d) should be blocked", c.X, c.Y)
	}
	assert.Equal(t, 7, g.FreeCells())
}

// TestClassifyTile_FailSafe checks the symbol table, and that every
// unrecognized symbol falls back to Blocked.
func TestClassifyTile_FailSafe(t *testing.T) {
	for _, c := range []byte{'.', 'G'} {
		assert.Equal(t, mapgrid.Free, mapgrid.ClassifyTile(c), "symbol %q", c)
	}
	for _, c := range []byte{'@', 'O', 'T', 'S', 'W'} {
		assert.Equal(t, mapgrid.Blocked, mapgrid.ClassifyTile(c), "symbol %q", c)
	}
	// Unknown symbols must never open a wall.
	for _, c := range []byte{'x', '?', '#', '0', ' ', 'g'} {
		assert.Equal(t, mapgrid.Blocked, mapgrid.ClassifyTile(c), "unknown symbol %q", c)
	}
}

// TestParseMap_HeaderErrors walks through malformed headers; each must be
// a FormatError, never a silent default.
func TestParseMap_HeaderErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing height", "octile\n"},
		{"wrong height key", "octile\nhight 3\nwidth 4\nmap\n"},
		{"non-integer height", "octile\nheight three\nwidth 4\nmap\n"},
		{"negative width", "octile\nheight 3\nwidth -4\nmap\n"},
		{"missing separator", "octile\nheight 3\nwidth 4\n"},
		{"height with extra field", "octile\nheight 3 3\nwidth 4\nmap\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapgrid.ParseMap(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, mapgrid.ErrFormat)
		})
	}
}

// TestParseMap_RowLengthMismatch ensures a declared width of 5 with a
// 4-character data row is rejected.
func TestParseMap_RowLengthMismatch(t *testing.T) {
	input := "octile\nheight 1\nwidth 5\nmap\n....\n"
	_, err := mapgrid.ParseMap(strings.NewReader(input))
	assert.ErrorIs(t, err, mapgrid.ErrFormat)
}

// TestParseMap_TruncatedBody ensures fewer data rows than the declared
// height is a FormatError.
func TestParseMap_TruncatedBody(t *testing.T) {
	input := "octile\nheight 3\nwidth 2\nmap\n..\n..\n"
	_, err := mapgrid.ParseMap(strings.NewReader(input))
	assert.ErrorIs(t, err, mapgrid.ErrFormat)
}

// TestParseMap_ZeroDimension ensures a zero height or width yields
// ErrEmptyGrid rather than an empty grid value.
func TestParseMap_ZeroDimension(t *testing.T) {
	input := "octile\nheight 0\nwidth 4\nmap\n"
	_, err := mapgrid.ParseMap(strings.NewReader(input))
	assert.ErrorIs(t, err, mapgrid.ErrEmptyGrid)
}

// TestParseMap_CRLF accepts Windows line endings without widening rows.
func TestParseMap_CRLF(t *testing.T) {
	input := "octile\r\nheight 2\r\nwidth 3\r\nmap\r\n...\r\n.@.\r\n"
	g, err := mapgrid.ParseMap(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.True(t, g.Blocked(1, 1))
	assert.Equal(t, 5, g.FreeCells())
}

// TestLoadMap_MissingFile propagates the underlying I/O error.
func TestLoadMap_MissingFile(t *testing.T) {
	_, err := mapgrid.LoadMap("no/such/file.map")
	assert.Error(t, err)
}
