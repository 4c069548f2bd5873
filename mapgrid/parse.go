package mapgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single map row; benchmark maps top out well below this.
const maxLineBytes = 1 << 20

// ParseMap reads an ASCII map: a four-line header — a type token (ignored),
// "height <N>", "width <N>", a separator line — followed by exactly height
// rows of width tile symbols. Rows are classified via ClassifyTile.
// Any header or row violation is a wrapped ErrFormat; nothing is returned
// on failure. Trailing content after the last row is ignored.
// Complexity: O(W×H) time and memory.
func ParseMap(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	if _, err := nextLine(sc, "type"); err != nil {
		return nil, err
	}
	height, err := headerInt(sc, "height")
	if err != nil {
		return nil, err
	}
	width, err := headerInt(sc, "width")
	if err != nil {
		return nil, err
	}
	if _, err = nextLine(sc, "separator"); err != nil {
		return nil, err
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
		row, err := nextLine(sc, fmt.Sprintf("data row %d", y))
		if err != nil {
			return nil, err
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d length %d does not equal width %d", ErrFormat, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			g.blocked[y*width+x] = ClassifyTile(row[x]) == Blocked
		}
	}

	return g, nil
}

// LoadMap opens and parses the ASCII map at path.
func LoadMap(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapgrid: %w", err)
	}
	defer f.Close()

	g, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// nextLine returns the next line, stripped of a trailing '\r', or a wrapped
// ErrFormat naming the expected content when the input ends early.
func nextLine(sc *bufio.Scanner, what string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("mapgrid: read %s: %w", what, err)
		}

		return "", fmt.Errorf("%w: missing %s line", ErrFormat, what)
	}

	return strings.TrimRight(sc.Text(), "\r"), nil
}

// headerInt parses a header line of the form "<key> <N>" and returns N.
// N must be a non-negative integer and key must match exactly.
func headerInt(sc *bufio.Scanner, key string) (int, error) {
	line, err := nextLine(sc, key)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != key {
		return 0, fmt.Errorf("%w: want %q line, got %q", ErrFormat, key+" <N>", line)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrFormat, key, fields[1])
	}

	return n, nil
}
