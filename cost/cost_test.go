package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imece/cost"
	"github.com/katalvlaran/imece/terrain"
)

// TestNewParams_Validation checks every rejected configuration and its sentinel.
func TestNewParams_Validation(t *testing.T) {
	cases := []struct {
		name        string
		ceiling     int
		fuel, climb float64
		wantErr     error
	}{
		{"ZeroCeiling", 0, 1, 1, cost.ErrBadCeiling},
		{"NegativeCeiling", -3, 1, 1, cost.ErrBadCeiling},
		{"NegativeFuel", 10, -0.5, 1, cost.ErrNegativeFuelCost},
		{"NegativeClimb", 10, 1, -2, cost.ErrNegativeClimbCost},
		{"NaNFuel", 10, math.NaN(), 1, cost.ErrNonFinite},
		{"InfClimb", 10, 1, math.Inf(1), cost.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cost.NewParams(tc.ceiling, tc.fuel, tc.climb)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	p, err := cost.NewParams(10, 0, 0)
	require.NoError(t, err, "zero coefficients are allowed")
	assert.Equal(t, 10, p.MaxFlyingHeight)
}

// TestEdgeCost covers orthogonal/diagonal distance and the climb-only charge.
func TestEdgeCost(t *testing.T) {
	p := cost.Params{MaxFlyingHeight: 100, FuelCostPerUnit: 2, ClimbingCostPerUnit: 3}

	assert.Equal(t, 2.0, p.EdgeCost(5, 5, false), "level orthogonal")
	assert.InDelta(t, 2*math.Sqrt2, p.EdgeCost(5, 5, true), 1e-12, "level diagonal")
	assert.Equal(t, 2.0, p.EdgeCost(9, 1, false), "descent is free")
	assert.Equal(t, 2.0+4*3, p.EdgeCost(1, 5, false), "climb of 4")
	assert.InDelta(t, 2*math.Sqrt2+4*3, p.EdgeCost(1, 5, true), 1e-12, "diagonal climb of 4")
}

// TestPassable pins the exclusive ceiling.
func TestPassable(t *testing.T) {
	p := cost.Params{MaxFlyingHeight: 3}
	assert.True(t, p.Passable(2))
	assert.False(t, p.Passable(3), "ceiling itself is impassable")
	assert.False(t, p.Passable(4))
}

// TestStepCost_Adjacency checks StepCost, IsDiagonal and Adjacent on real cells.
func TestStepCost_Adjacency(t *testing.T) {
	g, err := terrain.NewGrid([][]int{
		{1, 1, 1},
		{1, 5, 1},
	})
	require.NoError(t, err)
	p := cost.Params{MaxFlyingHeight: 10, FuelCostPerUnit: 1, ClimbingCostPerUnit: 1}

	a := terrain.Cell{Row: 0, Col: 0}
	center := terrain.Cell{Row: 1, Col: 1}
	assert.True(t, cost.IsDiagonal(a, center))
	assert.InDelta(t, math.Sqrt2+4, p.StepCost(g, a, center), 1e-12)
	assert.InDelta(t, math.Sqrt2, p.StepCost(g, center, a), 1e-12)

	assert.True(t, cost.Adjacent(a, center))
	assert.False(t, cost.Adjacent(a, a), "a cell is not its own neighbour")
	assert.False(t, cost.Adjacent(a, terrain.Cell{Row: 0, Col: 2}))
}
