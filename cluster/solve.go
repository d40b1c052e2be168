package cluster

import (
	"sort"

	"github.com/avoskre/monarchs/metric"
	"github.com/avoskre/monarchs/mincost"
	"github.com/avoskre/monarchs/monarch"
	"github.com/avoskre/monarchs/relax"
)

// Solve runs the approximation pipeline on (m, k, p, minLoad, maxLoad):
// banded LP relaxation, monarch–empire center rounding, then flow-based
// assignment rounding. The result opens exactly k centers, assigns every
// point to exactly p of them, and keeps every center's load within
// [minLoad, min(N, 2·maxLoad)].
//
// Errors pass through from the stages: relax.ErrBadInstance and
// relax.ErrInfeasible from the formulator, relax.ErrSolverLimit from the
// backend, monarch.ErrRoundingInvariant from center rounding,
// mincost.ErrInfeasibleFlow from assignment rounding.
func Solve(m *metric.Metric, k, p, minLoad, maxLoad int, opts Options) (*Solution, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	inst := relax.Instance{M: m, K: k, P: p, MinLoad: minLoad, MaxLoad: maxLoad}

	lp := opts.LP
	lp.Band = true // the capacity-violating relaxation the rounding needs
	frac, err := relax.SolveRelaxation(inst, lp)
	if err != nil {
		return nil, err
	}

	part, err := monarch.Build(m, k, frac, opts.Eps)
	if err != nil {
		return nil, err
	}

	return roundAssignment(m, inst, part, opts)
}

// roundAssignment builds the transportation network over the monarch set
// and turns its min-cost flow into an integral Solution.
//
// Layout: source → center (lower ℓ, cap L′, cost 0), center → point
// (cap 1, cost d), point → sink (lower p, cap p, cost 0); the source
// supplies N·p units, the sink demands them.
func roundAssignment(m *metric.Metric, inst relax.Instance, part *monarch.Partition, opts Options) (*Solution, error) {
	n := m.Size()
	inflated := 2 * inst.MaxLoad
	if inflated > n {
		inflated = n
	}

	net := mincost.NewNetwork(n + len(part.Monarchs) + 2)
	source := net.AddNode()
	sink := net.AddNode()

	centerNode := make([]int, len(part.Monarchs))
	for c := range part.Monarchs {
		centerNode[c] = net.AddNode()
		if _, err := net.AddArc(source, centerNode[c], int64(inst.MinLoad), int64(inflated), 0); err != nil {
			return nil, err
		}
	}

	// assignArc[c*n+j] is the arc carrying center c's service of point j.
	assignArc := make([]int, len(part.Monarchs)*n)
	for j := 0; j < n; j++ {
		pointNode := net.AddNode()
		for c, center := range part.Monarchs {
			id, err := net.AddArc(centerNode[c], pointNode, 0, 1, m.MustDistance(center, j))
			if err != nil {
				return nil, err
			}
			assignArc[c*n+j] = id
		}
		if _, err := net.AddArc(pointNode, sink, int64(inst.P), int64(inst.P), 0); err != nil {
			return nil, err
		}
	}

	demand := int64(n) * int64(inst.P)
	if err := net.SetSupply(source, demand); err != nil {
		return nil, err
	}
	if err := net.SetSupply(sink, -demand); err != nil {
		return nil, err
	}

	res, err := mincost.Solve(net, opts.Flow)
	if err != nil {
		return nil, err
	}

	sol := &Solution{
		Centers:  append([]int(nil), part.Monarchs...),
		Assigned: make([][]int, n),
		P:        inst.P,
		Cost:     res.Cost,
	}
	sort.Ints(sol.Centers)
	for j := 0; j < n; j++ {
		for c, center := range part.Monarchs {
			if res.ArcFlow(assignArc[c*n+j]) > 0 {
				sol.Assigned[j] = append(sol.Assigned[j], center)
			}
		}
		sort.Ints(sol.Assigned[j])
	}

	return sol, nil
}

// SolveExact certifies the integral optimum of the same program by
// branch-and-bound over the relaxation. Correctness oracle for toy
// instances; not part of the rounding pipeline.
func SolveExact(m *metric.Metric, k, p, minLoad, maxLoad int, opts Options) (*Solution, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	inst := relax.Instance{M: m, K: k, P: p, MinLoad: minLoad, MaxLoad: maxLoad}

	lp := opts.LP
	lp.Band = false // exact semantics use the strict per-point equality
	frac, err := relax.SolveExact(inst, lp)
	if err != nil {
		return nil, err
	}

	n := m.Size()
	sol := &Solution{Assigned: make([][]int, n), P: p, Cost: frac.Cost}
	for i := 0; i < n; i++ {
		if frac.Y[i] == 1 {
			sol.Centers = append(sol.Centers, i)
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if frac.Xat(i, j) == 1 {
				sol.Assigned[j] = append(sol.Assigned[j], i)
			}
		}
	}

	return sol, nil
}
