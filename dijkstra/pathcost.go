package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/imece/cost"
	"github.com/katalvlaran/imece/terrain"
)

// PathCost recomputes the total cost of path under p by summing
// cost.Params.StepCost over consecutive cells, in path order. The sum is
// accumulated exactly as the search accumulates it, so for any path
// produced by ShortestPath the result equals Result.Cost bit for bit.
//
// The ceiling is not enforced; an externally supplied path through high
// cells is still costed. Empty and single-cell paths cost 0.
//
// Errors: ErrNilGrid, terrain.ErrOutOfBounds (wrapped) for off-grid cells,
// ErrBrokenPath for consecutive cells that are not distinct 8-neighbours.
func PathCost(g *terrain.Grid, p cost.Params, path []terrain.Cell) (float64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	for i, c := range path {
		if !g.InBounds(c) {
			return 0, fmt.Errorf("path[%d]: %w: %v", i, terrain.ErrOutOfBounds, c)
		}
	}

	total := 0.0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if !cost.Adjacent(from, to) {
			return 0, fmt.Errorf("%w: path[%d]=%v, path[%d]=%v", ErrBrokenPath, i-1, from, i, to)
		}
		total += p.StepCost(g, from, to)
	}

	return total, nil
}
