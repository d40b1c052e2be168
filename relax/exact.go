// Package relax — exact path: branch-and-bound over the LP relaxation.
//
// SolveExact certifies the integral optimum of the clustering program by
// depth-first branch-and-bound: each node solves the LP relaxation with a
// subset of variables fixed to 0 or 1 via their box bounds; the LP value
// is an admissible lower bound, so any node whose relaxation reaches the
// incumbent is pruned. Branching is deterministic: the most fractional
// variable, y variables before x, lowest index on ties; the 1-branch is
// explored first to reach good incumbents early.
//
// Intended as a correctness oracle on toy instances (worst case is
// exponential in the variable count); the approximation pipeline never
// calls it.

package relax

import (
	"errors"
	"math"
	"time"
)

// exactEngine holds all search data and policies. A dedicated engine
// struct (instead of anonymous closures) keeps dependencies explicit and
// hot-path state predictable.
type exactEngine struct {
	n      int
	solver Solver
	eps    float64

	// Template problem; per-node solves only swap the Bounds slice.
	base Problem

	// Per-variable fixing: -1 free, 0 or 1 pinned.
	fixed []int8

	// Time budget
	useDeadline bool
	deadline    time.Time

	// Incumbent
	bestX    []float64
	bestCost float64
	foundAny bool
}

// solveNode solves the relaxation under the current fixings.
func (e *exactEngine) solveNode() (Result, error) {
	nv := numVars(e.n)
	bounds := make([]Bound, nv)
	for i := 0; i < nv; i++ {
		switch e.fixed[i] {
		case 0:
			bounds[i] = Bound{Lower: 0, Upper: 0}
		case 1:
			bounds[i] = Bound{Lower: 1, Upper: 1}
		default:
			bounds[i] = Bound{Lower: 0, Upper: 1}
		}
	}
	p := e.base
	p.Bounds = bounds

	return e.solver.Solve(p)
}

// pickBranchVar returns the index of the most fractional free variable,
// preferring y variables over x and lower indices on ties; -1 when the
// relaxation is already integral within eps.
func (e *exactEngine) pickBranchVar(x []float64) int {
	var (
		best     = -1
		bestFrac float64
		frac     float64
		i        int
	)
	scan := func(lo, hi int) {
		for i = lo; i < hi; i++ {
			if e.fixed[i] != -1 {
				continue
			}
			frac = math.Abs(x[i] - math.Round(x[i]))
			if frac <= e.eps {
				continue
			}
			if frac > bestFrac {
				bestFrac, best = frac, i
			}
		}
	}
	scan(0, e.n) // y block first
	if best >= 0 {
		return best
	}
	scan(e.n, numVars(e.n)) // then the x block

	return best
}

// dfs explores the fixing tree; returns a non-nil error only for backend
// failures and deadline expiry (ErrSolverLimit). Infeasible nodes prune.
func (e *exactEngine) dfs() error {
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrSolverLimit
	}

	res, err := e.solveNode()
	switch {
	case err == nil:
		// proceed
	case errors.Is(err, ErrInfeasible):
		return nil // dead branch
	default:
		return err
	}

	// Prune by lower bound against the incumbent.
	if e.foundAny && res.Objective >= e.bestCost-e.eps {
		return nil
	}

	v := e.pickBranchVar(res.X)
	if v < 0 {
		// Integral solution; commit as the new incumbent.
		e.bestX = append(e.bestX[:0], res.X...)
		e.bestCost = res.Objective
		e.foundAny = true

		return nil
	}

	// 1-branch first: opening centers early tightens the incumbent.
	for _, pin := range []int8{1, 0} {
		e.fixed[v] = pin
		if err = e.dfs(); err != nil {
			e.fixed[v] = -1

			return err
		}
	}
	e.fixed[v] = -1

	return nil
}

// SolveExact solves the clustering program with binary y and x.
// The returned Fractional holds exact 0/1 values and the integral optimum.
//
// Errors: ErrBadInstance/ErrNilMetric, ErrInfeasible when no integral
// solution exists, ErrSolverLimit when Options.TimeLimit expires, plus
// backend sentinels.
func SolveExact(inst Instance, opts Options) (*Fractional, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if err := precheckFeasible(inst); err != nil {
		return nil, err
	}
	opts.normalize()

	e := exactEngine{
		n:      inst.M.Size(),
		solver: opts.Solver,
		eps:    opts.Eps,
	}
	// Exact semantics always use the strict per-point equality.
	e.base = buildProblem(inst, false, opts)
	e.fixed = make([]int8, numVars(e.n))
	for i := range e.fixed {
		e.fixed[i] = -1
	}
	e.bestCost = math.Inf(1)
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	if err := e.dfs(); err != nil {
		return nil, err
	}
	if !e.foundAny {
		return nil, ErrInfeasible
	}

	out := unpack(e.n, Result{X: e.bestX, Objective: e.bestCost}, opts.Eps)
	// Snap residual noise to exact integers.
	for i, v := range out.Y {
		out.Y[i] = math.Round(v)
	}
	for i, v := range out.X {
		out.X[i] = math.Round(v)
	}

	return out, nil
}
