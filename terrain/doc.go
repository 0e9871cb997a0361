// Package terrain holds the immutable elevation grid that every search in
// imece runs over.
//
// What:
//
//   - Grid wraps a rectangular [][]int of elevations, deep-copied on construction.
//   - Cell addresses a grid position as (Row, Col); it is the only coordinate
//     convention used inside the engines.
//   - Point is the external (X=column, Y=row) convention used by rendering and by
//     the public facade. ToCell and ToPoint are the only conversions between the two.
//   - Offsets enumerates the eight compass directions in a fixed rank, so
//     boundary handling is a single InBounds check instead of per-edge branches.
//   - FlyableRegions groups cells strictly below an elevation ceiling into
//     8-connected regions.
//   - Grayscale rescales elevations linearly onto 0..255 using the observed min/max.
//
// Complexity:
//
//   - NewGrid:        O(H×W) time and memory.
//   - At, InBounds:   O(1).
//   - FlyableRegions: O(H×W×8), Memory: O(H×W).
//   - Grayscale:      O(H×W).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside [0,H)×[0,W).
package terrain
