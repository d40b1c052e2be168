// Package monarchs computes near-optimal solutions to lower-bounded,
// replicated k-median clustering over finite metric spaces.
//
// Given a metric, a center budget k, a replication factor p and
// per-center load bounds [ℓ, L], the module either certifies the exact
// optimum (on toy instances, by branch-and-bound over the LP) or runs
// the polynomial approximation pipeline: LP relaxation, deterministic
// "monarchs and empires" center rounding, then min-cost-flow assignment
// rounding with a provably bounded capacity inflation.
//
// The work is organized into one package per stage:
//
//	metric/  — finite metrics and the compact distance-graph generator
//	relax/   — LP relaxation formulator, solver collaborator, exact path
//	monarch/ — monarch–empire rounding of fractional center weights
//	mincost/ — min-cost flow with lower bounds + DIMACS codec
//	cluster/ — pipeline orchestration and the objective evaluator
//	cmd/solvemcf — command-line DIMACS min-cost-flow solver
//
// Start with cluster.Solve / cluster.SolveExact; see each package's docs
// for contracts, complexity and error sentinels.
package monarchs
