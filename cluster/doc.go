// Package cluster computes near-optimal solutions to lower-bounded,
// replicated k-median clustering: choose k centers over a finite metric,
// assign every point to exactly p of them, every center serving between
// ℓ and L points, minimizing total assignment distance.
//
// # Pipeline
//
// Solve runs the polynomial approximation pipeline:
//
//	relaxation (relax, band mode) → monarch selection (monarch)
//	→ transportation network → integral flow (mincost) → Solution
//
// The transportation network has one node per monarch and per point:
// source → center arcs carry [ℓ, L′] with L′ = min(N, 2·L) (the bounded
// capacity inflation that guarantees an integral feasible flow exists),
// center → point arcs carry capacity 1 at cost d(center, point), and
// point → sink arcs require exactly p units. Transportation polytopes
// are integral, so the min-cost flow rounds the fractional assignment
// without leftover: every point ends on exactly p distinct centers and
// every center's load stays within [ℓ, L′].
//
// SolveExact certifies the true optimum by branch-and-bound over the
// same program (relax.SolveExact) and serves as the correctness baseline
// on toy instances; Objective of an exact solution never exceeds
// Objective of the pipeline's.
//
// All stages are synchronous, single-threaded algorithms over in-memory
// structures; each call owns its fractional solution and partition, and
// only the read-only Metric is shared across calls. Stage errors
// (relax.ErrInfeasible, monarch.ErrRoundingInvariant,
// mincost.ErrInfeasibleFlow, relax.ErrSolverLimit, …) pass through to
// the caller untranslated; no stage silently recovers from
// infeasibility.
//
// # Objective
//
// Objective sums d(center, point) over every assignment of an integral
// Solution, validating the solution's consistency first;
// FractionalObjective scores a relaxation output as Σ x[i,j]·d(i,j).
// Both are pure and idempotent.
package cluster
