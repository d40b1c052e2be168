package relax_test

import (
	"testing"

	"github.com/avoskre/monarchs/relax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveExact_TwoPoints certifies the integral optimum of the smallest
// non-trivial instance: two points at distance 1, one center serving
// both (cost 1, center may be either point).
func TestSolveExact_TwoPoints(t *testing.T) {
	m := lineMetric(t, 2)
	inst := relax.Instance{M: m, K: 1, P: 1, MinLoad: 1, MaxLoad: 2}

	sol, err := relax.SolveExact(inst, relax.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sol.Cost, 1e-9)
	assert.InDelta(t, 1.0, sol.Y[0]+sol.Y[1], 1e-9, "exactly one open center")
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := sol.Xat(i, j)
			assert.True(t, v == 0 || v == 1, "x[%d,%d] must be integral, got %v", i, j, v)
		}
	}
}

// TestSolveExact_LowerBoundForcesSpread verifies that a per-center lower
// bound can make adding a center more expensive: on a 4-point unit line,
// k=2 with ℓ=2 must split the points 2/2.
func TestSolveExact_LowerBoundForcesSpread(t *testing.T) {
	m := lineMetric(t, 4)
	inst := relax.Instance{M: m, K: 2, P: 1, MinLoad: 2, MaxLoad: 4}

	sol, err := relax.SolveExact(inst, relax.DefaultOptions())
	require.NoError(t, err)

	// Optimal: centers in {0,1} and {2,3}, each serving its pair; cost 2.
	assert.InDelta(t, 2.0, sol.Cost, 1e-9)

	var open int
	for i := 0; i < 4; i++ {
		if sol.Y[i] == 1 {
			load := 0.0
			for j := 0; j < 4; j++ {
				load += sol.Xat(i, j)
			}
			assert.GreaterOrEqual(t, load, 2.0, "center %d load under ℓ", i)
			open++
		}
	}
	assert.Equal(t, 2, open, "exactly k centers open")
}

// TestSolveExact_RelaxationIsLowerBound: the fractional optimum never
// exceeds the integral optimum on the same instance.
func TestSolveExact_RelaxationIsLowerBound(t *testing.T) {
	m := lineMetric(t, 5)
	inst := relax.Instance{M: m, K: 2, P: 1, MinLoad: 1, MaxLoad: 5}
	opts := relax.DefaultOptions()

	frac, err := relax.SolveRelaxation(inst, opts)
	require.NoError(t, err)
	exact, err := relax.SolveExact(inst, opts)
	require.NoError(t, err)

	assert.LessOrEqual(t, frac.Cost, exact.Cost+1e-9)
}

// TestSolveExact_Infeasible propagates infeasibility from the precheck.
func TestSolveExact_Infeasible(t *testing.T) {
	m := lineMetric(t, 3)
	inst := relax.Instance{M: m, K: 3, P: 1, MinLoad: 2, MaxLoad: 3}

	_, err := relax.SolveExact(inst, relax.DefaultOptions())
	assert.ErrorIs(t, err, relax.ErrInfeasible)
}
