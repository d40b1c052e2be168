// Package metric models a finite metric space over integer point indices
// 0..N-1, the shared read-only input of every clustering stage.
//
// Two construction paths are offered:
//
//   - New: ingest an explicit N×N distance table. The table is validated
//     for shape, finiteness, symmetry, zero diagonal and the triangle
//     inequality, then copied into an immutable dense buffer.
//
//   - Graph: a compact generator ("distance graph"). Nodes partition the
//     point set, each node carrying a multiplicity (how many points it
//     stands for); edges mark node pairs at distance 1. Build expands the
//     multiplicities into consecutive point indices and materializes all
//     pairwise distances: 0 on the diagonal, 1 across an edge, 2 in every
//     other case — including distinct points of the same node. Such a
//     table is a metric by construction (all off-diagonal values lie in
//     [1,2], so every two-leg detour costs at least as much as the direct
//     hop).
//
// Storage is a single row-major []float64, shared by reference across all
// downstream stages; a Metric is never mutated after construction.
//
// Complexity:
//
//	– New:      O(N³) time (triangle validation), O(N²) memory.
//	– Build:    O(N²) time and memory (N = sum of multiplicities).
//	– Distance: O(1).
//
// Errors (sentinel): see types.go; matched with errors.Is.
package metric
