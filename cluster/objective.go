package cluster

import (
	"math"

	"github.com/avoskre/monarchs/metric"
	"github.com/avoskre/monarchs/relax"
)

// Objective returns the total assignment distance of an integral
// solution: Σ_j Σ_{i ∈ Assigned[j]} d(i, j). Pure and idempotent.
//
// ErrInconsistentSolution when any point's assignment count differs
// from sol.P, a center index is out of range, or a point is assigned to
// the same center twice.
func Objective(m *metric.Metric, sol *Solution) (float64, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	if sol == nil {
		return 0, ErrNilSolution
	}
	n := m.Size()
	if len(sol.Assigned) != n {
		return 0, ErrInconsistentSolution
	}

	var total float64
	for j, centers := range sol.Assigned {
		if len(centers) != sol.P {
			return 0, ErrInconsistentSolution
		}
		seen := make(map[int]bool, len(centers))
		for _, i := range centers {
			if i < 0 || i >= n || seen[i] {
				return 0, ErrInconsistentSolution
			}
			seen[i] = true
			total += m.MustDistance(i, j)
		}
	}

	return round1e9(total), nil
}

// FractionalObjective scores a relaxation output under the k-median
// objective: Σ_{i,j} x[i,j]·d(i,j).
func FractionalObjective(m *metric.Metric, frac *relax.Fractional) (float64, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	if frac == nil {
		return 0, ErrNilSolution
	}
	n := m.Size()
	if frac.N != n {
		return 0, ErrInconsistentSolution
	}

	var total float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w := frac.Xat(i, j); w > 0 {
				total += w * m.MustDistance(i, j)
			}
		}
	}

	return round1e9(total), nil
}

// round1e9 stabilizes costs to 1e−9 to prevent FP drift across platforms.
func round1e9(v float64) float64 { return math.Round(v*1e9) / 1e9 }
