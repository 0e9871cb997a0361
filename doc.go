// Package imece plans flights across a fixed elevation grid.
//
// What:
//
//   - MostEfficientPath: the minimum-cost route between two cells, where every
//     step costs fuel (√2 on diagonals) plus a charge per unit climbed, and no
//     cell at or above the flight ceiling may be entered.
//   - LowestElevationEscapePath: a fast greedy route that moves exactly one
//     column east per step, taking the smoothest of the three forward cells.
//
// Coordinates:
//
//	PathFinder speaks the external (X=column, Y=row) convention of image
//	coordinates, as terrain.Point. Everything underneath speaks (row, col) as
//	terrain.Cell. The transposition happens only at PathFinder's entry and
//	exit points.
//
// Results:
//
//	An empty path means "no path": the destination is unreachable, or it
//	equals the start. Callers must check for emptiness before using a route.
//
// Under the hood:
//
//	terrain/  — immutable elevation grid, cells, neighbour offsets, flyable regions
//	cost/     — the fuel-plus-climb edge cost and its validated parameters
//	dijkstra/ — shortest-path search with ceiling, early exit and deterministic ties
//	escape/   — greedy eastward route and its elevation-change cost
//	gridio/   — loading grids from (optionally compressed) text, grayscale export
//	render/   — grayscale map and path overlays as images
//	config/   — environment and .env configuration for cmd/imece
//
// Quick ASCII example (ceiling 3, unit costs):
//
//	1 1 1     S · ·
//	1 5 1  →  · ▲ ·     cost 2+√2, the peak ▲ is never entered
//	1 1 1     · · E
//
//	go get github.com/katalvlaran/imece
package imece
