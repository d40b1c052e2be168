package relax

import (
	"math"

	"github.com/avoskre/monarchs/metric"
)

// Instance bundles a clustering problem: choose K centers over M's points,
// assign every point to exactly P of them, each open center serving
// between MinLoad and MaxLoad points.
type Instance struct {
	M       *metric.Metric
	K       int // number of centers
	P       int // replication factor
	MinLoad int // ℓ
	MaxLoad int // L
}

// Validate enforces the structural invariants 1 ≤ P ≤ K and
// 1 ≤ MinLoad ≤ MaxLoad ≤ N. K = 0 is structurally valid here and
// rejected as infeasible at solve time.
func (in Instance) Validate() error {
	if in.M == nil {
		return ErrNilMetric
	}
	n := in.M.Size()
	if in.K < 0 || in.K > n {
		return ErrBadInstance
	}
	if in.K > 0 && (in.P < 1 || in.P > in.K) {
		return ErrBadInstance
	}
	if in.MinLoad < 1 || in.MinLoad > in.MaxLoad || in.MaxLoad > n {
		return ErrBadInstance
	}

	return nil
}

// Fractional is the relaxation output: center-open weights Y[i] and
// assignment weights X in row-major layout X[i*n+j], plus the objective.
// Values are 0/1 when produced by the exact path.
type Fractional struct {
	N    int
	Y    []float64
	X    []float64
	Cost float64
}

// Xat returns the assignment weight of center i to point j.
// Indices are assumed valid; this is a hot-path accessor.
func (f *Fractional) Xat(i, j int) float64 { return f.X[i*f.N+j] }

// Variable layout inside the flat LP vector: y[0..n), then x[i*n+j].
func yVar(i int) int       { return i }
func xVar(n, i, j int) int { return n + i*n + j }
func numVars(n int) int    { return n + n*n }

// buildProblem translates inst into the interchange Problem.
// band selects the per-point [⌈p/2⌉, p] band instead of Σx = p.
func buildProblem(inst Instance, band bool, opts Options) Problem {
	n := inst.M.Size()
	nv := numVars(n)
	var (
		i, j int
		c    = make([]float64, nv)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c[xVar(n, i, j)] = inst.M.MustDistance(i, j)
		}
	}

	// Row counts: k-equality (1), per-point rows (n or 2n), x ≤ y (n²),
	// per-center load rows (2n).
	le := make([]Row, 0, n*n+4*n)
	eq := make([]Row, 0, n+1)

	// Σ_i y[i] = k.
	row := make([]float64, nv)
	for i = 0; i < n; i++ {
		row[yVar(i)] = 1
	}
	eq = append(eq, Row{Coeffs: row, RHS: float64(inst.K)})

	// Per point j: replication.
	for j = 0; j < n; j++ {
		up := make([]float64, nv)
		for i = 0; i < n; i++ {
			up[xVar(n, i, j)] = 1
		}
		if band {
			lo := make([]float64, nv)
			for i = 0; i < n; i++ {
				lo[xVar(n, i, j)] = -1
			}
			le = append(le,
				Row{Coeffs: up, RHS: float64(inst.P)},
				Row{Coeffs: lo, RHS: -math.Ceil(float64(inst.P) / 2)},
			)
		} else {
			eq = append(eq, Row{Coeffs: up, RHS: float64(inst.P)})
		}
	}

	// x[i,j] ≤ y[i].
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			r := make([]float64, nv)
			r[xVar(n, i, j)] = 1
			r[yVar(i)] = -1
			le = append(le, Row{Coeffs: r, RHS: 0})
		}
	}

	// Per center i: ℓ·y[i] ≤ Σ_j x[i,j] ≤ L·y[i].
	for i = 0; i < n; i++ {
		up := make([]float64, nv)
		lo := make([]float64, nv)
		for j = 0; j < n; j++ {
			up[xVar(n, i, j)] = 1
			lo[xVar(n, i, j)] = -1
		}
		up[yVar(i)] = -float64(inst.MaxLoad)
		lo[yVar(i)] = float64(inst.MinLoad)
		le = append(le,
			Row{Coeffs: up, RHS: 0},
			Row{Coeffs: lo, RHS: 0},
		)
	}

	bounds := make([]Bound, nv)
	for i = 0; i < nv; i++ {
		bounds[i] = Bound{Lower: 0, Upper: 1}
	}

	return Problem{
		Minimize: c,
		LE:       le,
		EQ:       eq,
		Bounds:   bounds,
		MaxIter:  opts.MaxIter,
		Tol:      opts.Tol,
		Verbose:  opts.Verbose,
		Threads:  opts.Threads,
	}
}

// precheckFeasible rejects instances no LP run can satisfy:
// k = 0 (points still require p ≥ 1 assignments), ℓ·k > N (lower bounds
// cannot be met by k centers over N points), L·k < N·p (total capacity
// below total demand).
func precheckFeasible(inst Instance) error {
	n := inst.M.Size()
	if inst.K == 0 {
		return ErrInfeasible
	}
	if inst.MinLoad*inst.K > n {
		return ErrInfeasible
	}
	if inst.MaxLoad*inst.K < n*inst.P {
		return ErrInfeasible
	}

	return nil
}

// SolveRelaxation builds the fractional program for inst and submits it
// to the solver collaborator.
//
// Errors: ErrBadInstance/ErrNilMetric on malformed input; ErrInfeasible
// when the precheck or the backend rules out any solution; the backend
// sentinels otherwise.
//
// Complexity: O(N²) rows of N+N² coefficients to build, plus the backend.
func SolveRelaxation(inst Instance, opts Options) (*Fractional, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if err := precheckFeasible(inst); err != nil {
		return nil, err
	}
	opts.normalize()

	res, err := opts.Solver.Solve(buildProblem(inst, opts.Band, opts))
	if err != nil {
		return nil, err
	}

	return unpack(inst.M.Size(), res, opts.Eps), nil
}

// unpack splits the flat LP vector into Y and X, clamping numeric noise
// outside [0,1] and stabilizing the reported cost.
func unpack(n int, res Result, eps float64) *Fractional {
	f := &Fractional{
		N:    n,
		Y:    make([]float64, n),
		X:    make([]float64, n*n),
		Cost: round1e9(res.Objective),
	}
	var (
		idx int
		v   float64
	)
	for idx = 0; idx < n; idx++ {
		f.Y[idx] = clamp01(res.X[yVar(idx)], eps)
	}
	for idx = 0; idx < n*n; idx++ {
		v = res.X[n+idx]
		f.X[idx] = clamp01(v, eps)
	}

	return f
}

func clamp01(v, eps float64) float64 {
	if v < eps && v > -eps {
		return 0
	}
	if v > 1-eps && v < 1+eps {
		return 1
	}

	return v
}

// round1e9 stabilizes costs to 1e−9 to prevent FP drift across platforms.
func round1e9(v float64) float64 { return math.Round(v*1e9) / 1e9 }
