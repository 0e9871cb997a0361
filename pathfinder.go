package imece

import (
	"errors"

	"github.com/katalvlaran/imece/cost"
	"github.com/katalvlaran/imece/dijkstra"
	"github.com/katalvlaran/imece/escape"
	"github.com/katalvlaran/imece/terrain"
)

// ErrNilGrid indicates that New was given a nil grid.
var ErrNilGrid = errors.New("imece: grid is nil")

// PathFinder binds an elevation grid to a cost model. Both are fixed at
// construction and never mutated, so one PathFinder may serve concurrent
// callers.
type PathFinder struct {
	grid   *terrain.Grid
	params cost.Params
}

// New validates p and returns a PathFinder over g.
func New(g *terrain.Grid, p cost.Params) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &PathFinder{grid: g, params: p}, nil
}

// Grid returns the underlying elevation grid.
func (pf *PathFinder) Grid() *terrain.Grid { return pf.grid }

// Params returns the cost model.
func (pf *PathFinder) Params() cost.Params { return pf.params }

// MostEfficientPath returns the minimum-cost route from start to end in
// (column, row) points, both endpoints included. The result is empty when
// end is unreachable or equals start.
func (pf *PathFinder) MostEfficientPath(start, end terrain.Point, opts ...dijkstra.Option) ([]terrain.Point, error) {
	res, err := dijkstra.ShortestPath(pf.grid, pf.params, terrain.ToCell(start), terrain.ToCell(end), opts...)
	if err != nil {
		return nil, err
	}

	return toPoints(res.Path), nil
}

// MostEfficientPathCost returns the total fuel-plus-climb cost of path,
// which may come from MostEfficientPath or from anywhere else.
func (pf *PathFinder) MostEfficientPathCost(path []terrain.Point) (float64, error) {
	return dijkstra.PathCost(pf.grid, pf.params, toCells(path))
}

// LowestElevationEscapePath returns the greedy eastward route from start to
// the last column in (column, row) points.
func (pf *PathFinder) LowestElevationEscapePath(start terrain.Point, opts ...escape.Option) ([]terrain.Point, error) {
	path, err := escape.Path(pf.grid, terrain.ToCell(start), opts...)
	if err != nil {
		return nil, err
	}

	return toPoints(path), nil
}

// LowestElevationEscapePathCost returns the total absolute elevation change
// along path.
func (pf *PathFinder) LowestElevationEscapePathCost(path []terrain.Point) (int, error) {
	return escape.Cost(pf.grid, toCells(path))
}

func toCells(pts []terrain.Point) []terrain.Cell {
	if len(pts) == 0 {
		return nil
	}
	out := make([]terrain.Cell, len(pts))
	for i, p := range pts {
		out[i] = terrain.ToCell(p)
	}

	return out
}

// toPoints keeps an empty route as a non-nil empty slice so callers can
// range over it and test len(path) == 0 alike.
func toPoints(cells []terrain.Cell) []terrain.Point {
	out := make([]terrain.Point, len(cells))
	for i, c := range cells {
		out[i] = terrain.ToPoint(c)
	}

	return out
}
