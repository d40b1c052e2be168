package mincost

import (
	"fmt"
	"math"
)

// Network is a directed flow network over nodes 0..NumNodes-1.
// Arcs carry a lower bound, a capacity and a cost; nodes carry supplies
// (demand = negative supply). Build it once, then Solve; the network
// itself is never mutated by Solve.
type Network struct {
	from     []int
	to       []int
	lower    []int64
	capacity []int64
	cost     []float64
	supply   []int64
}

// NewNetwork returns an empty network, preallocating for hint nodes.
func NewNetwork(hint int) *Network {
	if hint < 0 {
		hint = 0
	}

	return &Network{supply: make([]int64, 0, hint)}
}

// AddNode appends a node with zero supply and returns its id.
func (n *Network) AddNode() int {
	n.supply = append(n.supply, 0)

	return len(n.supply) - 1
}

// AddNodes appends count nodes and returns the id of the first.
func (n *Network) AddNodes(count int) int {
	first := len(n.supply)
	for i := 0; i < count; i++ {
		n.supply = append(n.supply, 0)
	}

	return first
}

// AddArc appends an arc and returns its id.
// ErrBadArc on unknown endpoints, lower < 0, capacity < lower, or a
// non-finite cost.
func (n *Network) AddArc(from, to int, lower, capacity int64, cost float64) (int, error) {
	if from < 0 || from >= len(n.supply) || to < 0 || to >= len(n.supply) {
		return 0, fmt.Errorf("arc (%d,%d) references unknown node: %w", from, to, ErrBadArc)
	}
	if lower < 0 || capacity < lower {
		return 0, fmt.Errorf("arc (%d,%d) bounds [%d,%d]: %w", from, to, lower, capacity, ErrBadArc)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, fmt.Errorf("arc (%d,%d) cost %v: %w", from, to, cost, ErrBadArc)
	}
	n.from = append(n.from, from)
	n.to = append(n.to, to)
	n.lower = append(n.lower, lower)
	n.capacity = append(n.capacity, capacity)
	n.cost = append(n.cost, cost)

	return len(n.from) - 1, nil
}

// SetSupply assigns the supply of node (negative = demand).
func (n *Network) SetSupply(node int, supply int64) error {
	if node < 0 || node >= len(n.supply) {
		return ErrBadNode
	}
	n.supply[node] = supply

	return nil
}

// NumNodes returns the node count.
func (n *Network) NumNodes() int { return len(n.supply) }

// NumArcs returns the arc count.
func (n *Network) NumArcs() int { return len(n.from) }

// Arc returns the endpoints of arc id. Panics on bad ids; arc ids come
// from AddArc and are never user input.
func (n *Network) Arc(id int) (from, to int) { return n.from[id], n.to[id] }

// Result holds the outcome of Solve: one flow value per arc (by arc id)
// and the total cost.
type Result struct {
	Flow []int64
	Cost float64
}

// ArcFlow returns the flow on arc id.
func (r *Result) ArcFlow(id int) int64 { return r.Flow[id] }
