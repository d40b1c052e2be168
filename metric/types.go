// Package metric: sentinel error set.
//
// All user-triggered error conditions in this package return one of the
// sentinels below; callers match them with errors.Is. Context may be added
// by wrapping with fmt.Errorf("...: %w", ErrX) — the sentinel still matches.

package metric

import "errors"

var (
	// ErrMalformedGraph indicates an invalid distance-graph description:
	// a non-positive node multiplicity, an edge referencing an unknown
	// node, or a self-edge.
	ErrMalformedGraph = errors.New("metric: malformed distance graph")

	// ErrIndexOutOfRange indicates a point index outside [0, Size).
	ErrIndexOutOfRange = errors.New("metric: point index out of range")

	// ErrBadShape indicates a distance table that is empty or non-square.
	ErrBadShape = errors.New("metric: distance table must be square and non-empty")

	// ErrInvalidDistance indicates a NaN, ±Inf or negative distance entry.
	ErrInvalidDistance = errors.New("metric: distance must be finite and non-negative")

	// ErrAsymmetry indicates d(i,j) ≠ d(j,i) beyond the numeric tolerance.
	ErrAsymmetry = errors.New("metric: distance table is not symmetric")

	// ErrNonZeroDiagonal indicates d(i,i) ≠ 0 beyond the numeric tolerance.
	ErrNonZeroDiagonal = errors.New("metric: diagonal must be zero")

	// ErrTriangleViolation indicates d(i,j) > d(i,k)+d(k,j) beyond the
	// numeric tolerance for some triple (i,k,j).
	ErrTriangleViolation = errors.New("metric: triangle inequality violated")

	// ErrNotBuilt indicates a distance-graph query that requires Build()
	// to have completed (e.g. NodePoints before materialization).
	ErrNotBuilt = errors.New("metric: distance graph not built yet")
)

// distEps is the numeric tolerance used by the construction validators.
// Distances differing by less than distEps are considered equal.
const distEps = 1e-9
