// Package escape computes a fast greedy route that leaves the map
// eastward, one column per step, always taking the forward neighbour with
// the smallest absolute elevation change.
//
// At every step the three forward candidates are compared:
//
//	NE  (row-1, col+1)
//	E   (row,   col+1)
//	SE  (row+1, col+1)
//
// East wins if its change is ≤ both others; otherwise north-east wins if
// its change is ≤ south-east's; otherwise south-east. The preference order
// E > NE > SE is fixed.
//
// Near the north or south edge a candidate may not exist. By default it is
// simply left out of the comparison (rows never wrap), so the route always
// reaches the last column. WithStrictHeadroom turns a missing candidate
// into ErrNoHeadroom instead.
//
// Complexity: O(W) time, O(W) memory for the returned path.
package escape

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/imece/terrain"
)

// Sentinel errors for escape routes.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed in.
	ErrNilGrid = errors.New("escape: grid is nil")
	// ErrStartOutOfBounds indicates that the start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("escape: start cell out of bounds")
	// ErrNoHeadroom indicates, under WithStrictHeadroom, that a step lacked a
	// north-east or south-east candidate.
	ErrNoHeadroom = errors.New("escape: no row above or below for a forward step")
)

// Options configures Path.
type Options struct {
	// StrictHeadroom rejects routes that touch the north or south edge
	// before reaching the last column.
	StrictHeadroom bool
}

// Option represents a functional option for configuring Path.
type Option func(*Options)

// WithStrictHeadroom requires a row above and below the current cell at
// every step, failing with ErrNoHeadroom otherwise.
func WithStrictHeadroom() Option {
	return func(o *Options) {
		o.StrictHeadroom = true
	}
}

// DefaultOptions returns the defaults: missing candidates are skipped.
func DefaultOptions() Options {
	return Options{}
}

// absent stands in for the change towards a candidate outside the grid.
const absent = math.MaxInt

// Path returns the greedy eastward route from start to the last column,
// both inclusive. The result always has Width()-start.Col cells, each one
// column east of the previous.
func Path(g *terrain.Grid, start terrain.Cell, opts ...Option) ([]terrain.Cell, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	steps := g.Width() - 1 - start.Col
	path := make([]terrain.Cell, 0, steps+1)
	path = append(path, start)

	cur := start
	for i := 0; i < steps; i++ {
		base := g.At(cur)
		east := cur.Step(terrain.East)
		ne := cur.Step(terrain.NorthEast)
		se := cur.Step(terrain.SouthEast)

		if cfg.StrictHeadroom && (!g.InBounds(ne) || !g.InBounds(se)) {
			return nil, fmt.Errorf("%w: step %d from %v", ErrNoHeadroom, i+1, cur)
		}

		dE := change(g, base, east)
		dNE := change(g, base, ne)
		dSE := change(g, base, se)

		switch {
		case dE <= dNE && dE <= dSE:
			cur = east
		case dNE <= dSE:
			cur = ne
		default:
			cur = se
		}
		path = append(path, cur)
	}

	return path, nil
}

// change is |elev(c) - base|, or absent when c is off the grid.
func change(g *terrain.Grid, base int, c terrain.Cell) int {
	if !g.InBounds(c) {
		return absent
	}

	return abs(g.At(c) - base)
}

// Cost sums the absolute elevation change between consecutive cells of
// path. It is always ≥ 0; empty and single-cell paths cost 0.
func Cost(g *terrain.Grid, path []terrain.Cell) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	total := 0
	for i, c := range path {
		if !g.InBounds(c) {
			return 0, fmt.Errorf("path[%d]: %w: %v", i, terrain.ErrOutOfBounds, c)
		}
		if i > 0 {
			total += abs(g.At(c) - g.At(path[i-1]))
		}
	}

	return total, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
