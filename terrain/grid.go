package terrain

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// [row][column]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &Grid{height: h, width: w, cells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the elevation of c. The caller guarantees InBounds(c).
func (g *Grid) At(c Cell) int {
	return g.cells[c.Row][c.Col]
}

// Elevation returns the elevation of c, or ErrOutOfBounds.
func (g *Grid) Elevation(c Cell) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.height, g.width)
	}

	return g.cells[c.Row][c.Col], nil
}

// Rows returns a deep copy of the elevations, indexed [row][column].
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		out[r] = make([]int, g.width)
		copy(out[r], g.cells[r])
	}

	return out
}

// MinMax returns the lowest and highest elevation in the grid.
func (g *Grid) MinMax() (lo, hi int) {
	lo, hi = g.cells[0][0], g.cells[0][0]
	for _, row := range g.cells {
		for _, e := range row {
			if e < lo {
				lo = e
			}
			if e > hi {
				hi = e
			}
		}
	}

	return lo, hi
}

// Neighbors appends to buf the in-bounds neighbours of c in direction rank
// order and returns the extended slice. Cells on an edge or corner simply
// have fewer entries.
func (g *Grid) Neighbors(c Cell, buf []Offset) []Offset {
	for _, o := range offsets {
		if g.InBounds(Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}) {
			buf = append(buf, o)
		}
	}

	return buf
}

// Grayscale rescales every elevation linearly onto 0..255 using the grid's
// observed min and max: v = int((e-min) / ((max-min)/255)).
// A flat grid maps to all zeros.
// Complexity: O(H×W).
func (g *Grid) Grayscale() [][]uint8 {
	lo, hi := g.MinMax()
	interval := float64(hi-lo) / 255.0
	out := make([][]uint8, g.height)
	for r, row := range g.cells {
		out[r] = make([]uint8, g.width)
		if interval == 0 {
			continue
		}
		for c, e := range row {
			out[r][c] = uint8(int(float64(e-lo) / interval))
		}
	}

	return out
}

// index maps c to a row-major index: Row*width + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}

// Index maps c to its row-major index. The caller guarantees InBounds(c).
func (g *Grid) Index(c Cell) int { return g.index(c) }

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}
