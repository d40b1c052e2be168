// Package relax: sentinel error set and configuration.

package relax

import (
	"errors"
	"time"
)

var (
	// ErrNilMetric indicates a nil *metric.Metric in an Instance.
	ErrNilMetric = errors.New("relax: metric is nil")

	// ErrBadInstance indicates clustering parameters violating
	// 1 ≤ p ≤ k, 1 ≤ ℓ ≤ L ≤ N.
	ErrBadInstance = errors.New("relax: invalid clustering instance")

	// ErrInfeasible indicates that no solution satisfies the constraints
	// (reported by the backend, or detected by the formulator prechecks
	// such as k = 0, ℓ·k > N, L·k < N·p).
	ErrInfeasible = errors.New("relax: instance is infeasible")

	// ErrUnbounded indicates an unbounded program; with distances ≥ 0 and
	// box-bounded variables this signals a formulation bug, never user input.
	ErrUnbounded = errors.New("relax: program is unbounded")

	// ErrSolverLimit indicates the backend exceeded its iteration budget
	// or the caller-supplied time budget.
	ErrSolverLimit = errors.New("relax: solver budget exceeded")

	// ErrBackend indicates a backend failure that is none of the above;
	// the backend message is attached by wrapping.
	ErrBackend = errors.New("relax: backend failure")
)

// Options configures the formulator and both solve paths.
//
//	– Solver:    the LP collaborator; nil selects the built-in Simplex.
//	– Band:      use the per-point band [⌈p/2⌉, p] instead of Σx = p; this is
//	             the capacity-violating relaxation consumed by the rounding
//	             pipeline and must stay false for the exact path.
//	– MaxIter:   backend iteration budget per LP solve.
//	– Tol:       backend pivot tolerance.
//	– TimeLimit: soft budget for the exact branch-and-bound; zero = none.
//	             Passed through to backends that support one.
//	– Verbose:   backend progress display.
//	– Threads:   backend worker threads; backends without internal
//	             parallelism ignore it.
//	– Eps:       integrality / zero threshold used on returned values.
type Options struct {
	Solver    Solver
	Band      bool
	MaxIter   int
	Tol       float64
	TimeLimit time.Duration
	Verbose   bool
	Threads   int
	Eps       float64
}

// DefaultOptions returns production-safe defaults: built-in Simplex,
// strict per-point equality, 4000 iterations, 1e-9 tolerances.
func DefaultOptions() Options {
	return Options{
		MaxIter: 4000,
		Tol:     1e-9,
		Eps:     1e-6,
	}
}

func (o *Options) normalize() {
	if o.Solver == nil {
		o.Solver = Simplex{}
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 4000
	}
	if o.Tol <= 0 {
		o.Tol = 1e-9
	}
	if o.Eps <= 0 {
		o.Eps = 1e-6
	}
}
