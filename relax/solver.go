package relax

import (
	"fmt"
	"math"

	"github.com/willauld/lpsimplex"
)

// Row is one dense linear constraint: Coeffs·x (≤ or =) RHS.
type Row struct {
	Coeffs []float64
	RHS    float64
}

// Bound is a per-variable box constraint.
type Bound struct {
	Lower, Upper float64
}

// Problem is a linear program in the collaborator interchange form:
// minimize Minimize·x subject to LE rows (≤), EQ rows (=), and Bounds.
// Nil Bounds means the conventional [0, +Inf) for every variable.
type Problem struct {
	Minimize []float64
	LE       []Row
	EQ       []Row
	Bounds   []Bound

	// Backend configuration, passed through unchanged.
	MaxIter int
	Tol     float64
	Verbose bool
	Threads int
}

// Result carries the variable assignment and objective of a solved Problem.
type Result struct {
	X         []float64
	Objective float64
}

// Solver is the external LP collaborator: a blocking call that returns an
// optimal assignment or one of the package sentinels (ErrInfeasible,
// ErrUnbounded, ErrSolverLimit, ErrBackend).
type Solver interface {
	Solve(p Problem) (Result, error)
}

// Simplex is the default Solver, backed by github.com/willauld/lpsimplex
// (a dense primal simplex). It runs single-threaded; Problem.Threads is
// accepted for interface parity and ignored.
type Simplex struct{}

// Backend status codes, as reported by lpsimplex.
const (
	simplexOptimal    = 0
	simplexIterLimit  = 1
	simplexInfeasible = 2
	simplexUnbounded  = 3
)

// Solve converts p into the backend's calling convention and maps the
// backend status onto the package sentinels.
func (Simplex) Solve(p Problem) (Result, error) {
	var (
		aub [][]float64
		bub []float64
		aeq [][]float64
		beq []float64
	)
	if len(p.LE) > 0 {
		aub = make([][]float64, len(p.LE))
		bub = make([]float64, len(p.LE))
		for i, r := range p.LE {
			aub[i] = r.Coeffs
			bub[i] = r.RHS
		}
	}
	if len(p.EQ) > 0 {
		aeq = make([][]float64, len(p.EQ))
		beq = make([]float64, len(p.EQ))
		for i, r := range p.EQ {
			aeq[i] = r.Coeffs
			beq[i] = r.RHS
		}
	}
	var bounds []lpsimplex.Bound
	if p.Bounds != nil {
		bounds = make([]lpsimplex.Bound, len(p.Bounds))
		for i, b := range p.Bounds {
			bounds[i] = lpsimplex.Bound{Lb: b.Lower, Ub: b.Upper}
		}
	}

	maxIter := p.MaxIter
	if maxIter <= 0 {
		maxIter = 4000
	}
	tol := p.Tol
	if tol <= 0 {
		tol = 1e-9
	}

	res := lpsimplex.LPSimplex(
		p.Minimize, aub, bub, aeq, beq, bounds,
		lpsimplex.Callbackfunc(nil), p.Verbose, maxIter, tol, false,
	)
	switch res.Status {
	case simplexOptimal:
		// fall through to the success checks below
	case simplexIterLimit:
		return Result{}, ErrSolverLimit
	case simplexInfeasible:
		return Result{}, ErrInfeasible
	case simplexUnbounded:
		return Result{}, ErrUnbounded
	default:
		return Result{}, fmt.Errorf("%w: status %d: %s", ErrBackend, res.Status, res.Message)
	}
	if !res.Success || res.X == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrBackend, res.Message)
	}
	if math.IsNaN(res.Fun) {
		return Result{}, fmt.Errorf("%w: NaN objective", ErrBackend)
	}

	return Result{X: res.X, Objective: res.Fun}, nil
}
