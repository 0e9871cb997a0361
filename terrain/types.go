package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("terrain: cell out of bounds")
)

// Cell is a grid position in the internal (row, column) convention.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Point is a grid position in the external (column, row) convention used by
// image coordinates: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// ToCell transposes an external Point into an internal Cell.
func ToCell(p Point) Cell {
	return Cell{Row: p.Y, Col: p.X}
}

// ToPoint transposes an internal Cell into an external Point.
func ToPoint(c Cell) Point {
	return Point{X: c.Col, Y: c.Row}
}

// Direction identifies one of the eight compass neighbours of a cell.
type Direction int

// Directions in their fixed rank. The rank is the order in which equally
// high neighbours are examined by the searches.
const (
	South Direction = iota
	West
	North
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
)

// Offset is a (row, column) delta for a Direction.
type Offset struct {
	Dir        Direction
	DRow, DCol int
}

// Diagonal reports whether the offset changes both row and column.
func (o Offset) Diagonal() bool {
	return o.DRow != 0 && o.DCol != 0
}

// offsets is indexed by Direction.
var offsets = [8]Offset{
	{South, 1, 0},
	{West, 0, -1},
	{North, -1, 0},
	{East, 0, 1},
	{NorthWest, -1, -1},
	{SouthEast, 1, 1},
	{NorthEast, -1, 1},
	{SouthWest, 1, -1},
}

// Offsets returns the eight neighbour offsets in direction rank order.
// The returned array is a copy.
func Offsets() [8]Offset {
	return offsets
}

// Step returns the cell one step from c in direction d.
func (c Cell) Step(d Direction) Cell {
	o := offsets[d]
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Grid is an immutable rectangular elevation map.
// cells[r][c] holds the elevation of Cell{r, c}.
type Grid struct {
	height, width int
	cells         [][]int
}
