// Package cost defines the traversal cost between adjacent grid cells:
// a distance-weighted fuel charge plus a charge for every unit climbed,
// bounded by an exclusive flight ceiling.
//
//	cost(a→b) = d × FuelCostPerUnit + max(0, elev(b)−elev(a)) × ClimbingCostPerUnit
//	d = √2 for diagonal steps, 1 otherwise
//
// A step into a cell whose elevation is ≥ MaxFlyingHeight does not exist.
// Descending or level flight costs fuel only.
//
// Every function here is pure; Params is a value and safe to share.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/imece/terrain"
)

// Sentinel errors returned by Params validation.
var (
	// ErrBadCeiling indicates MaxFlyingHeight is zero or negative.
	ErrBadCeiling = errors.New("cost: MaxFlyingHeight must be positive")
	// ErrNegativeFuelCost indicates FuelCostPerUnit < 0.
	ErrNegativeFuelCost = errors.New("cost: FuelCostPerUnit must be non-negative")
	// ErrNegativeClimbCost indicates ClimbingCostPerUnit < 0.
	ErrNegativeClimbCost = errors.New("cost: ClimbingCostPerUnit must be non-negative")
	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("cost: coefficients must be finite")
)

// Sqrt2 is the distance factor of a diagonal step.
const Sqrt2 = math.Sqrt2

// Params configures the cost model. It is set once and shared read-only.
//
// MaxFlyingHeight     – exclusive ceiling; cells at or above it are impassable.
// FuelCostPerUnit     – cost per unit of distance travelled.
// ClimbingCostPerUnit – cost per unit of elevation gained.
type Params struct {
	MaxFlyingHeight     int
	FuelCostPerUnit     float64
	ClimbingCostPerUnit float64
}

// NewParams builds and validates a Params.
func NewParams(maxFlyingHeight int, fuelCostPerUnit, climbingCostPerUnit float64) (Params, error) {
	p := Params{
		MaxFlyingHeight:     maxFlyingHeight,
		FuelCostPerUnit:     fuelCostPerUnit,
		ClimbingCostPerUnit: climbingCostPerUnit,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// Validate checks the ceiling and both coefficients.
// Order: ceiling -> finiteness -> fuel sign -> climb sign.
func (p Params) Validate() error {
	if p.MaxFlyingHeight <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCeiling, p.MaxFlyingHeight)
	}
	if !isFinite(p.FuelCostPerUnit) || !isFinite(p.ClimbingCostPerUnit) {
		return ErrNonFinite
	}
	if p.FuelCostPerUnit < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeFuelCost, p.FuelCostPerUnit)
	}
	if p.ClimbingCostPerUnit < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeClimbCost, p.ClimbingCostPerUnit)
	}

	return nil
}

// Passable reports whether a cell of the given elevation may be entered.
// The ceiling is exclusive.
func (p Params) Passable(elevation int) bool {
	return elevation < p.MaxFlyingHeight
}

// EdgeCost returns the cost of moving from elevation from to elevation to.
// It does not apply the ceiling; see Passable.
func (p Params) EdgeCost(from, to int, diagonal bool) float64 {
	dist := 1.0
	if diagonal {
		dist = Sqrt2
	}
	climb := 0
	if to > from {
		climb = to - from
	}

	return dist*p.FuelCostPerUnit + float64(climb)*p.ClimbingCostPerUnit
}

// StepCost is EdgeCost between two adjacent in-bounds cells of g.
// Both the search and path re-costing go through here so they agree.
func (p Params) StepCost(g *terrain.Grid, from, to terrain.Cell) float64 {
	return p.EdgeCost(g.At(from), g.At(to), IsDiagonal(from, to))
}

// IsDiagonal reports whether a and b differ in both row and column.
func IsDiagonal(a, b terrain.Cell) bool {
	return a.Row != b.Row && a.Col != b.Col
}

// Adjacent reports whether a and b are distinct 8-neighbours.
func Adjacent(a, b terrain.Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr == 0 && dc == 0 {
		return false
	}

	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
