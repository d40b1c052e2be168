// Package cluster: sentinel error set and configuration.

package cluster

import (
	"errors"

	"github.com/avoskre/monarchs/mincost"
	"github.com/avoskre/monarchs/relax"
)

var (
	// ErrNilMetric indicates a nil metric argument.
	ErrNilMetric = errors.New("cluster: metric is nil")

	// ErrNilSolution indicates a nil solution argument.
	ErrNilSolution = errors.New("cluster: solution is nil")

	// ErrInconsistentSolution indicates a solution whose assignment lists
	// violate its own replication factor, reference out-of-range points,
	// or assign a point to the same center twice.
	ErrInconsistentSolution = errors.New("cluster: inconsistent solution")
)

// Options configures the approximate pipeline and the exact path.
//   - LP:   relaxation/backend options; the pipeline forces Band mode
//     itself, the exact path forces it off.
//   - Flow: min-cost-flow options for the assignment rounding.
//   - Eps:  open-center threshold for monarch selection.
type Options struct {
	LP   relax.Options
	Flow mincost.Options
	Eps  float64
}

// DefaultOptions returns production-safe defaults for both paths.
func DefaultOptions() Options {
	return Options{
		LP:   relax.DefaultOptions(),
		Flow: mincost.DefaultOptions(),
		Eps:  1e-9,
	}
}

// Solution is an integral clustering: exactly the chosen Centers, and
// for every point j the P distinct centers serving it (Assigned[j],
// ascending). Cost is the total assignment distance, stabilized.
type Solution struct {
	Centers  []int
	Assigned [][]int
	P        int
	Cost     float64
}
