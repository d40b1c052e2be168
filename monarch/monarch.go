package monarch

import (
	"github.com/avoskre/monarchs/metric"
	"github.com/avoskre/monarchs/relax"
)

// Partition maps every open center of a fractional solution to exactly
// one monarch. Owner[i] is the monarch owning center i (a monarch owns
// itself); -1 marks centers the LP left closed. Radius[m] is the LP
// service radius used as m's capture threshold (meaningful for monarchs
// only).
type Partition struct {
	Monarchs []int
	Owner    []int
	Radius   []float64
}

// Empire returns the centers owned by monarch m, ascending, m included.
func (p *Partition) Empire(m int) []int {
	var out []int
	for i, owner := range p.Owner {
		if owner == m {
			out = append(out, i)
		}
	}

	return out
}

// Build selects exactly k monarchs from the fractional solution frac and
// assigns every open center to one of them. See the package docs for the
// procedure and determinism guarantees.
//
// eps is the open threshold: centers with y ≤ eps are treated as closed.
//
// Errors: ErrNilMetric / ErrNilFractional / ErrDimensionMismatch on
// malformed arguments, ErrRoundingInvariant when the open centers cannot
// yield exactly k monarchs.
func Build(m *metric.Metric, k int, frac *relax.Fractional, eps float64) (*Partition, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if frac == nil {
		return nil, ErrNilFractional
	}
	n := m.Size()
	if frac.N != n || len(frac.Y) != n {
		return nil, ErrDimensionMismatch
	}
	if eps <= 0 {
		eps = 1e-9
	}

	var (
		state    = make([]centerState, n)
		owner    = make([]int, n)
		radius   = make([]float64, n)
		monarchs = make([]int, 0, k)
		open     int
	)
	for i := 0; i < n; i++ {
		owner[i] = -1
		if frac.Y[i] > eps {
			open++
		}
	}

	// Greedy rounds: largest y among unprocessed open centers, lowest
	// index on ties; each round retires at least the monarch itself.
	for len(monarchs) < k {
		next := -1
		for i := 0; i < n; i++ {
			if state[i] != stateUnprocessed || frac.Y[i] <= eps {
				continue
			}
			if next < 0 || frac.Y[i] > frac.Y[next] {
				next = i
			}
		}
		if next < 0 {
			// Open centers exhausted before k monarchs: Σy < k.
			return nil, ErrRoundingInvariant
		}

		state[next] = stateMonarch
		owner[next] = next
		radius[next] = serviceRadius(m, frac, next)
		monarchs = append(monarchs, next)

		// Capture every unprocessed open center within twice the radius.
		threshold := 2 * radius[next]
		for i := 0; i < n; i++ {
			if state[i] != stateUnprocessed || frac.Y[i] <= eps {
				continue
			}
			if m.MustDistance(next, i) <= threshold {
				state[i] = stateMember
				owner[i] = next
			}
		}
	}

	// Stragglers: open centers still unprocessed after k monarchs join
	// the nearest monarch (lowest index on distance ties).
	for i := 0; i < n; i++ {
		if state[i] != stateUnprocessed || frac.Y[i] <= eps {
			continue
		}
		best := monarchs[0]
		for _, mo := range monarchs[1:] {
			if m.MustDistance(mo, i) < m.MustDistance(best, i) {
				best = mo
			}
		}
		state[i] = stateMember
		owner[i] = best
	}

	return &Partition{Monarchs: monarchs, Owner: owner, Radius: radius}, nil
}

// serviceRadius is the mean LP service distance of center i:
// Σ_j x[i,j]·d(i,j) / Σ_j x[i,j]; zero when the center carries no mass.
func serviceRadius(m *metric.Metric, frac *relax.Fractional, i int) float64 {
	var mass, sum float64
	for j := 0; j < frac.N; j++ {
		w := frac.Xat(i, j)
		if w <= 0 {
			continue
		}
		mass += w
		sum += w * m.MustDistance(i, j)
	}
	if mass == 0 {
		return 0
	}

	return sum / mass
}
