package mapgrid_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danwein8/mapfbench/mapgrid"
)

// TestEncodeBinary_WidthFirst checks the exact encoded bytes, in
// particular that the dimensions line is "<width> <height>" — the inverse
// of the source header's height/width order.
func TestEncodeBinary_WidthFirst(t *testing.T) {
	input := "octile\nheight 2\nwidth 3\nmap\n.@.\nT.G\n"
	g, err := mapgrid.ParseMap(strings.NewReader(input))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, g.EncodeBinary(&sb))
	assert.Equal(t, "3 2\n010\n100\n", sb.String())
}

// TestBinaryRoundTrip encodes a parsed map and decodes it back,
// comparing every cell.
func TestBinaryRoundTrip(t *testing.T) {
	g, err := mapgrid.ParseMap(strings.NewReader(sampleMap))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, g.EncodeBinary(&sb))
	back, err := mapgrid.ParseBinary(strings.NewReader(sb.String()))
	require.NoError(t, err)

	require.Equal(t, g.Width(), back.Width())
	require.Equal(t, g.Height(), back.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, g.Blocked(x, y), back.Blocked(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestParseBinary_Errors covers malformed binary grid files.
func TestParseBinary_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"one-field dimensions", "3\n000\n"},
		{"non-integer width", "a 2\n000\n000\n"},
		{"negative height", "3 -2\n000\n"},
		{"invalid digit", "3 1\n012\n"},
		{"short row", "3 2\n000\n00\n"},
		{"truncated body", "3 2\n000\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapgrid.ParseBinary(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, mapgrid.ErrFormat)
		})
	}

	_, err := mapgrid.ParseBinary(strings.NewReader("0 3\n"))
	assert.ErrorIs(t, err, mapgrid.ErrEmptyGrid)
}

// TestConvertMap converts a source map on disk and checks the written
// binary grid byte for byte.
func TestConvertMap(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "arena.map")
	outPath := filepath.Join(dir, "arena_binary.map")
	src := "octile\nheight 2\nwidth 4\nmap\n.G@.\nTS.W\n"
	require.NoError(t, os.WriteFile(inPath, []byte(src), 0o644))

	g, err := mapgrid.ConvertMap(inPath, outPath)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "4 2\n0010\n1101\n", string(data))
}

// TestConvertMap_NoPartialOutput ensures a row-length failure leaves no
// output file behind.
func TestConvertMap_NoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "bad.map")
	outPath := filepath.Join(dir, "bad_binary.map")
	src := "octile\nheight 2\nwidth 5\nmap\n.....\n....\n"
	require.NoError(t, os.WriteFile(inPath, []byte(src), 0o644))

	_, err := mapgrid.ConvertMap(inPath, outPath)
	require.ErrorIs(t, err, mapgrid.ErrFormat)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output file may exist after a failed conversion")
}
