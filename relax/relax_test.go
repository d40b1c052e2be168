package relax_test

import (
	"testing"

	"github.com/avoskre/monarchs/metric"
	"github.com/avoskre/monarchs/relax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSolver records the submitted Problem and replies with a canned
// Result, letting formulation tests run without a numeric backend.
type stubSolver struct {
	got    relax.Problem
	result relax.Result
	err    error
}

func (s *stubSolver) Solve(p relax.Problem) (relax.Result, error) {
	s.got = p
	if s.err != nil {
		return relax.Result{}, s.err
	}

	return s.result, nil
}

// lineMetric returns a 1-D metric over points 0..n-1 at unit spacing.
func lineMetric(t *testing.T, n int) *metric.Metric {
	t.Helper()
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i > j {
				d[i][j] = float64(i - j)
			} else {
				d[i][j] = float64(j - i)
			}
		}
	}
	m, err := metric.New(d)
	require.NoError(t, err)

	return m
}

// TestInstance_Validate covers the structural invariants.
func TestInstance_Validate(t *testing.T) {
	m := lineMetric(t, 4)

	assert.ErrorIs(t, relax.Instance{}.Validate(), relax.ErrNilMetric)

	bad := []relax.Instance{
		{M: m, K: 2, P: 0, MinLoad: 1, MaxLoad: 2}, // p < 1
		{M: m, K: 2, P: 3, MinLoad: 1, MaxLoad: 2}, // p > k
		{M: m, K: 2, P: 1, MinLoad: 0, MaxLoad: 2}, // ℓ < 1
		{M: m, K: 2, P: 1, MinLoad: 3, MaxLoad: 2}, // ℓ > L
		{M: m, K: 2, P: 1, MinLoad: 1, MaxLoad: 5}, // L > N
		{M: m, K: 5, P: 1, MinLoad: 1, MaxLoad: 4}, // k > N
	}
	for _, inst := range bad {
		assert.ErrorIs(t, inst.Validate(), relax.ErrBadInstance, "%+v", inst)
	}

	ok := relax.Instance{M: m, K: 2, P: 1, MinLoad: 1, MaxLoad: 4}
	assert.NoError(t, ok.Validate())
}

// TestSolveRelaxation_InfeasiblePrechecks covers scenarios 2 and 3:
// k = 0, ℓ·k > N, and L·k < N·p are rejected before the backend runs.
func TestSolveRelaxation_InfeasiblePrechecks(t *testing.T) {
	m := lineMetric(t, 4)
	opts := relax.DefaultOptions()
	opts.Solver = &stubSolver{} // must never be reached

	_, err := relax.SolveRelaxation(relax.Instance{M: m, K: 0, P: 1, MinLoad: 1, MaxLoad: 4}, opts)
	assert.ErrorIs(t, err, relax.ErrInfeasible, "k=0 must be infeasible")

	_, err = relax.SolveRelaxation(relax.Instance{M: m, K: 2, P: 1, MinLoad: 3, MaxLoad: 4}, opts)
	assert.ErrorIs(t, err, relax.ErrInfeasible, "ℓ·k > N must be infeasible")

	_, err = relax.SolveRelaxation(relax.Instance{M: m, K: 2, P: 2, MinLoad: 1, MaxLoad: 3}, opts)
	assert.ErrorIs(t, err, relax.ErrInfeasible, "L·k < N·p must be infeasible")
}

// TestSolveRelaxation_FormulationShape inspects the submitted Problem:
// variable layout y[0..n) ++ x[i*n+j], the k-equality, per-point rows,
// x ≤ y rows and per-center load rows.
func TestSolveRelaxation_FormulationShape(t *testing.T) {
	const n = 3
	m := lineMetric(t, n)
	nv := n + n*n

	stub := &stubSolver{result: relax.Result{X: make([]float64, nv)}}
	opts := relax.DefaultOptions()
	opts.Solver = stub

	inst := relax.Instance{M: m, K: 2, P: 1, MinLoad: 1, MaxLoad: 3}
	_, err := relax.SolveRelaxation(inst, opts)
	require.NoError(t, err)

	p := stub.got
	require.Len(t, p.Minimize, nv)

	// Objective: zero on the y block, d(i,j) on the x block.
	for i := 0; i < n; i++ {
		assert.Zero(t, p.Minimize[i], "y objective coeff %d", i)
	}
	assert.Equal(t, 2.0, p.Minimize[n+0*n+2], "d(0,2)")
	assert.Equal(t, 1.0, p.Minimize[n+1*n+2], "d(1,2)")

	// Equalities: Σy = k plus one replication row per point.
	require.Len(t, p.EQ, 1+n)
	assert.Equal(t, float64(inst.K), p.EQ[0].RHS)

	// Inequalities: n² coupling rows + 2n load rows.
	assert.Len(t, p.LE, n*n+2*n)

	// Every variable box-bounded to [0,1].
	require.Len(t, p.Bounds, nv)
	for _, b := range p.Bounds {
		assert.Equal(t, relax.Bound{Lower: 0, Upper: 1}, b)
	}
}

// TestSolveRelaxation_BandMode swaps the per-point equality for the
// [⌈p/2⌉, p] band used by the rounding pipeline.
func TestSolveRelaxation_BandMode(t *testing.T) {
	const n = 3
	m := lineMetric(t, n)
	nv := n + n*n

	stub := &stubSolver{result: relax.Result{X: make([]float64, nv)}}
	opts := relax.DefaultOptions()
	opts.Solver = stub
	opts.Band = true

	inst := relax.Instance{M: m, K: 2, P: 2, MinLoad: 1, MaxLoad: 3}
	_, err := relax.SolveRelaxation(inst, opts)
	require.NoError(t, err)

	p := stub.got
	// Only the k-equality stays an equality.
	assert.Len(t, p.EQ, 1)
	// n² coupling + 2n load + 2n band rows.
	assert.Len(t, p.LE, n*n+4*n)

	// The band rows carry RHS p and -⌈p/2⌉.
	assert.Equal(t, 2.0, p.LE[0].RHS, "band upper RHS")
	assert.Equal(t, -1.0, p.LE[1].RHS, "band lower RHS")

	// Odd p rounds the lower bound up: ⌈3/2⌉ = 2.
	inst = relax.Instance{M: m, K: 3, P: 3, MinLoad: 1, MaxLoad: 3}
	_, err = relax.SolveRelaxation(inst, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stub.got.LE[0].RHS, "odd-p band upper RHS")
	assert.Equal(t, -2.0, stub.got.LE[1].RHS, "odd-p band lower RHS")
}

// TestSolveRelaxation_ClampsNoise verifies near-0/near-1 backend values
// are snapped so downstream stages see clean weights.
func TestSolveRelaxation_ClampsNoise(t *testing.T) {
	const n = 2
	m := lineMetric(t, n)
	nv := n + n*n

	x := make([]float64, nv)
	x[0] = 1 - 1e-10 // y[0] ≈ 1
	x[1] = 1e-11     // y[1] ≈ 0
	x[n] = 0.5       // x[0,0] genuinely fractional
	stub := &stubSolver{result: relax.Result{X: x, Objective: 1.0000000004}}

	opts := relax.DefaultOptions()
	opts.Solver = stub
	frac, err := relax.SolveRelaxation(relax.Instance{M: m, K: 1, P: 1, MinLoad: 1, MaxLoad: 2}, opts)
	require.NoError(t, err)

	assert.Equal(t, 1.0, frac.Y[0])
	assert.Equal(t, 0.0, frac.Y[1])
	assert.Equal(t, 0.5, frac.Xat(0, 0))
	assert.Equal(t, 1.0, frac.Cost, "cost stabilized to 1e-9")
}

// TestSolveRelaxation_BackendErrorsPassThrough ensures solver sentinels
// surface untranslated.
func TestSolveRelaxation_BackendErrorsPassThrough(t *testing.T) {
	m := lineMetric(t, 2)
	opts := relax.DefaultOptions()
	opts.Solver = &stubSolver{err: relax.ErrSolverLimit}

	_, err := relax.SolveRelaxation(relax.Instance{M: m, K: 1, P: 1, MinLoad: 1, MaxLoad: 2}, opts)
	assert.ErrorIs(t, err, relax.ErrSolverLimit)
}
