package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/imece/terrain"
)

// Load reads rows*cols whitespace-separated integers from r in row-major
// order and builds a Grid. Elevation ranges are not validated.
//
// Errors: ErrBadDimensions, ErrBadToken (wrapped, with position),
// ErrShortData (wrapped, with count), or the reader's own error.
func Load(r io.Reader, rows, cols int) (*terrain.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	values := make([][]int, rows)
	read := 0
	for row := 0; row < rows; row++ {
		values[row] = make([]int, cols)
		for col := 0; col < cols; col++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("gridio: read after %d values: %w", read, err)
				}
				return nil, fmt.Errorf("%w: got %d, want %d", ErrShortData, read, rows*cols)
			}
			v, err := strconv.Atoi(sc.Text())
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadToken, sc.Text(), row, col)
			}
			values[row][col] = v
			read++
		}
	}

	return terrain.NewGrid(values)
}

// LoadFile opens path, decompressing by extension, and calls Load.
func LoadFile(path string, rows, cols int) (g *terrain.Grid, err error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: open %s: %w", path, err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			g, err = nil, fmt.Errorf("gridio: close %s: %w", path, cerr)
		}
	}()

	return Load(rc, rows, cols)
}
