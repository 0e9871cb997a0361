package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/imece/terrain"
)

// Sentinel errors returned by the search and by PathCost.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed in.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start cell out of bounds")

	// ErrEndOutOfBounds indicates that the end cell is outside the grid.
	ErrEndOutOfBounds = errors.New("dijkstra: end cell out of bounds")

	// ErrBrokenPath indicates that two consecutive path cells are not 8-neighbours.
	ErrBrokenPath = errors.New("dijkstra: consecutive path cells are not adjacent")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures the search.
//
// MaxCost – optional budget; cells whose cost would exceed it are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxCost float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost caps the total route cost. A destination that cannot be reached
// within the budget yields the empty path.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - MaxCost: +Inf (explore the whole reachable region if needed).
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
	}
}

// Result is the outcome of one search.
type Result struct {
	// Path is the route from start to end inclusive, or empty for "no path".
	Path []terrain.Cell
	// Cost is the cost-table value at end: 0 if start == end, +Inf if unreachable.
	Cost float64
	// Settled counts the cells whose cost was finalised before the search stopped.
	Settled int
}

// Found reports whether the search produced a non-empty path.
func (r Result) Found() bool {
	return len(r.Path) > 0
}
