// Package mincost: sentinel error set and configuration.

package mincost

import "errors"

var (
	// ErrBadArc indicates an arc with unknown endpoints, negative lower
	// bound, capacity below the lower bound, or a NaN/Inf cost.
	ErrBadArc = errors.New("mincost: invalid arc")

	// ErrBadNode indicates a node id outside the network.
	ErrBadNode = errors.New("mincost: unknown node")

	// ErrUnbalanced indicates Σ supply ≠ 0 across the network; no
	// circulation can satisfy unbalanced supplies.
	ErrUnbalanced = errors.New("mincost: supplies do not sum to zero")

	// ErrInfeasibleFlow indicates that no flow satisfies all lower
	// bounds, capacities and supplies.
	ErrInfeasibleFlow = errors.New("mincost: no feasible flow")

	// ErrBadDIMACS indicates a malformed DIMACS min-cost-flow document.
	ErrBadDIMACS = errors.New("mincost: malformed DIMACS input")
)

// Options configures Solve.
//   - Eps:     tolerance when comparing path costs (default 1e-9).
//   - Verbose: print each augmentation (diagnostics only).
type Options struct {
	Eps     float64
	Verbose bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Eps: 1e-9}
}

func (o *Options) normalize() {
	if o.Eps <= 0 {
		o.Eps = 1e-9
	}
}
