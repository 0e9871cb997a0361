// Package dijkstra finds the minimum-cost route between two cells of an
// elevation grid under the fuel-plus-climb cost model of package cost.
//
// Overview:
//
//   - The grid is an implicit 8-connected graph: neighbours are enumerated
//     on the fly from terrain.Offsets, clamped by a single bounds check, so no
//     graph structure is materialised.
//   - A cell may be entered only if its elevation is strictly below
//     Params.MaxFlyingHeight. The origin cell is never checked.
//   - Edge weights are non-negative, so the search stops as soon as the
//     destination is settled.
//
// Determinism:
//
//   - Neighbours of a settled cell are examined in ascending elevation, equal
//     elevations in terrain direction rank (S, W, N, E, NW, SE, NE, SW).
//   - Relaxation is strict (<): the first-examined route to a cost keeps the
//     predecessor.
//   - Every heap entry is stamped with a push sequence number; the heap
//     orders by (cost, sequence), so equal costs pop in push order on any runtime.
//
// Results:
//
//   - Result.Path runs from start to end inclusive, in (row, col) cells.
//   - An empty Path means "no path": the destination is unreachable, lies
//     beyond WithMaxCost, or equals the start.
//   - Result.Cost is the cost-table value at end (0 when start == end,
//     +Inf when unreachable). PathCost(Result.Path) reproduces it exactly.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = H×W; each cell has at most 8 edges.
//   - Space: O(V) for the cost, predecessor and settled tables, plus O(8V)
//     worst-case heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          grid pointer is nil.
//   - ErrStartOutOfBounds: start lies outside the grid.
//   - ErrEndOutOfBounds:   end lies outside the grid.
//   - ErrBrokenPath:       PathCost received consecutive cells that are not 8-neighbours.
//   - ErrBadMaxCost:       WithMaxCost received a negative or NaN cap (via panic).
//   - cost.ErrBadCeiling etc.: Params failed validation.
//
// Thread safety:
//
//   - All working state is allocated per call; concurrent searches over the
//     same Grid and Params are safe as long as neither is mutated, and
//     neither exposes a mutator.
package dijkstra
