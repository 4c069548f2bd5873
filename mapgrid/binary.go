package mapgrid

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseBinary reads a binary grid: a "<width> <height>" dimensions line
// followed by height rows of width characters, each '0' (free) or '1'
// (blocked). The inverse of EncodeBinary.
// Complexity: O(W×H) time and memory.
func ParseBinary(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	dims, err := nextLine(sc, "dimensions")
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(dims)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: want \"<width> <height>\" line, got %q", ErrFormat, dims)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil || width < 0 {
		return nil, fmt.Errorf("%w: width must be a non-negative integer, got %q", ErrFormat, fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height < 0 {
		return nil, fmt.Errorf("%w: height must be a non-negative integer, got %q", ErrFormat, fields[1])
	}
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}
	for y := 0; y < height; y++ {
		row, err := nextLine(sc, fmt.Sprintf("grid row %d", y))
		if err != nil {
			return nil, err
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d length %d does not equal width %d", ErrFormat, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '0':
				// free
			case '1':
				g.blocked[y*width+x] = true
			default:
				return nil, fmt.Errorf("%w: row %d column %d: invalid cell %q, want '0' or '1'", ErrFormat, y, x, row[x])
			}
		}
	}

	return g, nil
}

// LoadBinary opens and parses the binary grid file at path.
func LoadBinary(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapgrid: %w", err)
	}
	defer f.Close()

	g, err := ParseBinary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// EncodeBinary writes the grid in binary grid format: the first line is
// "<width> <height>" — width first, the inverse of the ASCII header's
// height/width order; downstream consumers rely on this — followed by
// height rows of '0'/'1' characters.
// Complexity: O(W×H).
func (g *Grid) EncodeBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.width, g.height); err != nil {
		return err
	}
	row := make([]byte, g.width+1)
	row[g.width] = '\n'
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[y*g.width+x] {
				row[x] = '1'
			} else {
				row[x] = '0'
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteBinaryFile encodes g fully in memory and only then creates path,
// so a failure can never leave a truncated grid file behind.
func WriteBinaryFile(g *Grid, path string) error {
	var buf bytes.Buffer
	if err := g.EncodeBinary(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("mapgrid: %w", err)
	}

	return nil
}

// ConvertMap parses the ASCII map at inPath and writes its binary grid to
// outPath. The map is parsed completely before any output is produced; on
// error no output file is created and the returned grid is nil.
func ConvertMap(inPath, outPath string) (*Grid, error) {
	g, err := LoadMap(inPath)
	if err != nil {
		return nil, err
	}
	if err = WriteBinaryFile(g, outPath); err != nil {
		return nil, err
	}

	return g, nil
}
