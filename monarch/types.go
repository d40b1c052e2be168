// Package monarch: sentinel error set.

package monarch

import "errors"

var (
	// ErrNilMetric indicates a nil metric argument.
	ErrNilMetric = errors.New("monarch: metric is nil")

	// ErrNilFractional indicates a nil fractional solution argument.
	ErrNilFractional = errors.New("monarch: fractional solution is nil")

	// ErrDimensionMismatch indicates a fractional solution sized for a
	// different point set than the metric.
	ErrDimensionMismatch = errors.New("monarch: solution and metric sizes differ")

	// ErrRoundingInvariant indicates the greedy selection could not
	// produce exactly k monarchs — the fractional solution is
	// inconsistent with its stated constraints (e.g. Σy ≠ k).
	ErrRoundingInvariant = errors.New("monarch: cannot select exactly k monarchs")
)

// centerState is the tri-state marker driving the greedy selection.
type centerState uint8

const (
	stateUnprocessed centerState = iota
	stateMonarch
	stateMember
)
