package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imece/terrain"
)

// TestFlyableRegions_Wall verifies that a full-height ridge splits the map in two.
func TestFlyableRegions_Wall(t *testing.T) {
	g, err := terrain.NewGrid([][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 9, 1},
	})
	require.NoError(t, err)

	regions := g.FlyableRegions(5)
	require.Len(t, regions, 2, "ridge at column 1 must split the map")
	assert.Len(t, regions[0], 3)
	assert.Len(t, regions[1], 3)
	assert.Equal(t, terrain.Cell{Row: 0, Col: 0}, g.Coordinate(regions[0][0]))
	assert.Equal(t, terrain.Cell{Row: 0, Col: 2}, g.Coordinate(regions[1][0]))

	// Raising the ceiling opens the ridge.
	assert.Len(t, g.FlyableRegions(10), 1)
}

// TestFlyableRegions_DiagonalLink checks that regions are 8-connected.
func TestFlyableRegions_DiagonalLink(t *testing.T) {
	g, err := terrain.NewGrid([][]int{
		{1, 9},
		{9, 1},
	})
	require.NoError(t, err)
	assert.Len(t, g.FlyableRegions(5), 1, "diagonal cells share a region")
}

// TestFlyableRegions_CeilingIsExclusive checks that cells at exactly the ceiling are excluded.
func TestFlyableRegions_CeilingIsExclusive(t *testing.T) {
	g, err := terrain.NewGrid([][]int{{3, 3, 3}})
	require.NoError(t, err)
	assert.Empty(t, g.FlyableRegions(3))
	assert.Len(t, g.FlyableRegions(4), 1)
}

// TestSameRegion covers reachable, walled, high-origin and out-of-bounds queries.
func TestSameRegion(t *testing.T) {
	g, err := terrain.NewGrid([][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 6, 1},
	})
	require.NoError(t, err)

	a := terrain.Cell{Row: 0, Col: 0}
	b := terrain.Cell{Row: 0, Col: 2}
	assert.False(t, g.SameRegion(a, b, 5), "ridge blocks the route")
	assert.False(t, g.SameRegion(a, b, 6), "saddle at exactly the ceiling is closed")
	assert.True(t, g.SameRegion(a, b, 7), "saddle opens once below the ceiling")
	assert.False(t, g.SameRegion(terrain.Cell{Row: 0, Col: 1}, b, 5), "high origin")
	assert.False(t, g.SameRegion(a, terrain.Cell{Row: 0, Col: 1}, 5), "high destination")
	assert.True(t, g.SameRegion(a, a, 0), "a cell reaches itself")
	assert.False(t, g.SameRegion(a, terrain.Cell{Row: 3, Col: 0}, 5))
}
