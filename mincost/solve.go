package mincost

import (
	"container/heap"
	"fmt"
	"math"
)

// residual is the transformed instance Solve actually works on: paired
// forward/backward arcs (rarc i pairs with i^1), unit-indexed adjacency
// lists, and the excess left at each node after the lower bounds have
// been shipped.
type residual struct {
	n      int     // nodes including super source/sink
	to     []int   // rarc → head
	cap    []int64 // rarc → remaining capacity
	cost   []float64
	adj    [][]int // node → rarc ids
	source int
	sink   int
}

func (r *residual) addPair(u, v int, capacity int64, cost float64) int {
	id := len(r.to)
	r.to = append(r.to, v, u)
	r.cap = append(r.cap, capacity, 0)
	r.cost = append(r.cost, cost, -cost)
	r.adj[u] = append(r.adj[u], id)
	r.adj[v] = append(r.adj[v], id+1)

	return id
}

// Solve computes a minimum-cost flow on net satisfying all lower bounds,
// capacities and supplies. See the package docs for the method; the
// returned flows are integral.
//
// Errors: ErrUnbalanced when Σ supply ≠ 0, ErrInfeasibleFlow when the
// supplies cannot be routed within the bounds.
func Solve(net *Network, opts Options) (*Result, error) {
	opts.normalize()

	nn := net.NumNodes()
	na := net.NumArcs()

	var total int64
	for _, s := range net.supply {
		total += s
	}
	if total != 0 {
		return nil, ErrUnbalanced
	}

	// Excess after shipping every lower bound unconditionally:
	// excess[v] = supply[v] + Σ lower(in) − Σ lower(out).
	excess := make([]int64, nn+2)
	copy(excess, net.supply)
	for a := 0; a < na; a++ {
		excess[net.from[a]] -= net.lower[a]
		excess[net.to[a]] += net.lower[a]
	}

	r := &residual{
		n:      nn + 2,
		adj:    make([][]int, nn+2),
		source: nn,
		sink:   nn + 1,
	}

	// Forward residual arcs with the lower bound peeled off; remember the
	// rarc id per original arc to read the flow back out.
	fwd := make([]int, na)
	for a := 0; a < na; a++ {
		fwd[a] = r.addPair(net.from[a], net.to[a], net.capacity[a]-net.lower[a], net.cost[a])
	}

	// Super source/sink absorb the excesses.
	var required int64
	for v := 0; v < nn; v++ {
		switch {
		case excess[v] > 0:
			r.addPair(r.source, v, excess[v], 0)
			required += excess[v]
		case excess[v] < 0:
			r.addPair(v, r.sink, -excess[v], 0)
		}
	}

	shipped, err := r.successiveShortestPaths(required, opts)
	if err != nil {
		return nil, err
	}
	if shipped < required {
		return nil, ErrInfeasibleFlow
	}

	// Flow on an original arc = lower bound + consumed forward capacity.
	res := &Result{Flow: make([]int64, na)}
	for a := 0; a < na; a++ {
		pushed := (net.capacity[a] - net.lower[a]) - r.cap[fwd[a]]
		res.Flow[a] = net.lower[a] + pushed
		res.Cost += float64(res.Flow[a]) * net.cost[a]
	}
	res.Cost = round1e9(res.Cost)

	return res, nil
}

// successiveShortestPaths ships up to required units from r.source to
// r.sink, augmenting along reduced-cost shortest paths. Returns the
// amount shipped.
func (r *residual) successiveShortestPaths(required int64, opts Options) (int64, error) {
	if required == 0 {
		return 0, nil
	}

	// Initial potentials by Bellman–Ford: tolerates negative arc costs,
	// which Dijkstra on reduced costs then never sees again.
	pi, err := r.bellmanFord()
	if err != nil {
		return 0, err
	}

	var (
		shipped int64
		dist    = make([]float64, r.n)
		prev    = make([]int, r.n) // rarc entering each node on the path
	)
	for shipped < required {
		if !r.dijkstra(pi, dist, prev) {
			break // sink unreachable; caller decides feasibility
		}

		// Bottleneck along the path.
		bottleneck := required - shipped
		for v := r.sink; v != r.source; {
			a := prev[v]
			if r.cap[a] < bottleneck {
				bottleneck = r.cap[a]
			}
			v = r.to[a^1]
		}

		// Apply.
		for v := r.sink; v != r.source; {
			a := prev[v]
			r.cap[a] -= bottleneck
			r.cap[a^1] += bottleneck
			v = r.to[a^1]
		}
		shipped += bottleneck
		if opts.Verbose {
			fmt.Printf("mincost: pushed %d, total %d/%d\n", bottleneck, shipped, required)
		}

		// Fold distances into the potentials for the next round. Dijkstra
		// stops once the sink is finalized, so nodes still in the heap
		// carry tentative overestimates; capping at dist[sink] keeps every
		// residual reduced cost non-negative.
		dSink := dist[r.sink]
		for v := 0; v < r.n; v++ {
			if math.IsInf(pi[v], 1) {
				continue
			}
			if d := dist[v]; d < dSink {
				pi[v] += d
			} else {
				pi[v] += dSink
			}
		}
	}

	return shipped, nil
}

// bellmanFord computes shortest-path potentials from the super source
// over residual arcs with remaining capacity. A negative cycle cannot
// arise from a well-formed transformation but is defended against.
func (r *residual) bellmanFord() ([]float64, error) {
	inf := math.Inf(1)
	pi := make([]float64, r.n)
	for v := range pi {
		pi[v] = inf
	}
	pi[r.source] = 0

	var (
		changed bool
		round   int
	)
	for round = 0; round < r.n; round++ {
		changed = false
		for a := 0; a < len(r.to); a++ {
			if r.cap[a] == 0 {
				continue
			}
			u := r.to[a^1]
			if math.IsInf(pi[u], 1) {
				continue
			}
			if nd := pi[u] + r.cost[a]; nd < pi[r.to[a]]-1e-12 {
				pi[r.to[a]] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	if changed {
		return nil, fmt.Errorf("negative cycle in residual network: %w", ErrInfeasibleFlow)
	}
	// Unreachable nodes keep +Inf and are skipped by Dijkstra.
	return pi, nil
}

// pqItem / pathHeap: lazy-deletion binary heap for Dijkstra.
type pqItem struct {
	node int
	dist float64
}

type pathHeap []pqItem

func (h pathHeap) Len() int            { return len(h) }
func (h pathHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h pathHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// dijkstra runs shortest paths on reduced costs from r.source, filling
// dist and prev; reports whether the sink was reached.
func (r *residual) dijkstra(pi, dist []float64, prev []int) bool {
	inf := math.Inf(1)
	for v := range dist {
		dist[v] = inf
		prev[v] = -1
	}
	dist[r.source] = 0

	h := pathHeap{{node: r.source}}
	done := make([]bool, r.n)
	for h.Len() > 0 {
		it := heap.Pop(&h).(pqItem)
		u := it.node
		if done[u] {
			continue
		}
		done[u] = true
		if u == r.sink {
			break
		}
		for _, a := range r.adj[u] {
			if r.cap[a] == 0 {
				continue
			}
			v := r.to[a]
			if done[v] || math.IsInf(pi[v], 1) {
				continue
			}
			rc := r.cost[a] + pi[u] - pi[v]
			if rc < 0 {
				rc = 0 // clip FP noise; true reduced costs are ≥ 0
			}
			if nd := dist[u] + rc; nd < dist[v] {
				dist[v] = nd
				prev[v] = a
				heap.Push(&h, pqItem{node: v, dist: nd})
			}
		}
	}

	return !math.IsInf(dist[r.sink], 1)
}

// round1e9 stabilizes costs to 1e−9 to prevent FP drift across platforms.
func round1e9(v float64) float64 { return math.Round(v*1e9) / 1e9 }
