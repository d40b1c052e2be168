// Package monarch rounds the fractional center-open weights of the
// clustering relaxation into an integral set of exactly k centers
// ("monarchs"), partitioning every fractionally-open center into the
// "empire" of one monarch while keeping assignment mass close to where
// the LP put it.
//
// # Procedure
//
// Every open center (y > eps) starts unprocessed. Repeat:
//
//  1. Among unprocessed centers, pick the one with the largest y as the
//     next monarch; ties break to the lowest point index.
//  2. Every unprocessed center within 2·R of the monarch joins its
//     empire, where R is the monarch's LP service radius
//     Σ_j x[m,j]·d(m,j) / Σ_j x[m,j].
//  3. Mark monarch and empire processed.
//
// The loop ends when k monarchs exist; remaining open centers then join
// the nearest monarch's empire (lowest index on distance ties). If the
// open centers are exhausted before k monarchs are found, the fractional
// solution cannot carry k units of center mass and ErrRoundingInvariant
// is returned. Each round consumes at least one unit of y-mass, so for a
// consistent solution with Σy = k the procedure terminates with exactly
// k monarchs that are mutually farther apart than the capture threshold.
//
// The procedure is fully deterministic and allocates one Partition per
// call; the partition is consumed by the flow-rounding stage and holds
// no reference to per-call LP state.
//
// Complexity: O(k·N) selection plus O(N²) radius/empire scans; O(N) memory.
//
// Errors (sentinel): ErrNilMetric, ErrNilFractional,
// ErrDimensionMismatch, ErrRoundingInvariant; matched with errors.Is.
package monarch
