// Package relax formulates the fractional relaxation of lower-bounded,
// replicated k-median clustering and submits it to an LP solver
// collaborator. It also hosts the exact path: the same program with
// binary variables, solved by branch-and-bound over the relaxation.
//
// # Program
//
// For an instance (metric, k, p, ℓ, L) over N points, with y[i] the
// center-open weight of point i and x[i,j] the assignment weight of
// center i to point j:
//
//	minimize   Σ_{i,j} d(i,j)·x[i,j]
//	subject to Σ_i x[i,j]  = p          for every point j   (equality mode)
//	           ⌈p/2⌉ ≤ Σ_i x[i,j] ≤ p     for every point j   (band mode)
//	           x[i,j] ≤ y[i]
//	           ℓ·y[i] ≤ Σ_j x[i,j] ≤ L·y[i]
//	           Σ_i y[i] = k
//	           0 ≤ y, x ≤ 1
//
// Band mode is the looser capacity-violating relaxation consumed by the
// rounding pipeline; equality mode is what the exact path certifies.
//
// # Solver collaborator
//
// Any backend implementing Solver (linear objective + dense constraint
// rows in, variable values out, infeasibility and budget exhaustion as
// sentinels) can be substituted. The default backend is Simplex, built on
// github.com/willauld/lpsimplex; it is invoked as a blocking call and any
// internal parallelism stays invisible to the caller.
//
// # Complexity
//
// The program has N+N² variables and O(N²) rows; the dense simplex
// backend is intended for the instance sizes the exact/approximate
// comparison runs on, not for massive point sets.
//
// Errors (sentinel): ErrBadInstance, ErrInfeasible, ErrUnbounded,
// ErrSolverLimit, ErrBackend; matched with errors.Is.
package relax
