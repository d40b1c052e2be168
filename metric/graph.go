package metric

import "fmt"

// Graph is a compact generator for a Metric: nodes with multiplicities,
// edges marking node pairs at distance 1, every other inter-point
// distance defaulting to 2. Zero value is not usable; call NewGraph.
type Graph struct {
	mult   []int           // multiplicity per node
	edges  map[[2]int]bool // canonical (lo,hi) node pairs at distance 1
	points [][]int         // node → materialized point indices; set by Build
	built  bool
}

// NewGraph returns an empty distance graph.
func NewGraph() *Graph {
	return &Graph{edges: make(map[[2]int]bool)}
}

// AddNode appends a node representing `multiplicity` points and returns
// its node id. Multiplicities below 1 yield ErrMalformedGraph.
func (g *Graph) AddNode(multiplicity int) (int, error) {
	if multiplicity < 1 {
		return 0, fmt.Errorf("node multiplicity %d: %w", multiplicity, ErrMalformedGraph)
	}
	g.mult = append(g.mult, multiplicity)
	g.built = false

	return len(g.mult) - 1, nil
}

// AddEdge marks nodes u and v as lying at distance 1. Unknown node ids
// and self-edges yield ErrMalformedGraph; duplicate edges are idempotent.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.mult) || v < 0 || v >= len(g.mult) {
		return fmt.Errorf("edge (%d,%d) references unknown node: %w", u, v, ErrMalformedGraph)
	}
	if u == v {
		return fmt.Errorf("self-edge on node %d: %w", u, ErrMalformedGraph)
	}
	if u > v {
		u, v = v, u
	}
	g.edges[[2]int{u, v}] = true
	g.built = false

	return nil
}

// Build expands node multiplicities into consecutive point indices and
// materializes the full pairwise distance table:
//
//	d(i,i) = 0
//	d(i,j) = 1  when i and j belong to nodes joined by an edge
//	d(i,j) = 2  otherwise (distinct points of the same node included)
//
// The resulting table is a metric by construction. Point indices are
// assigned node by node in insertion order, so NodePoints is stable
// across calls.
//
// Complexity: O(N²) with N = sum of multiplicities.
func (g *Graph) Build() (*Metric, error) {
	if len(g.mult) == 0 {
		return nil, fmt.Errorf("no nodes: %w", ErrMalformedGraph)
	}

	// Assign point indices per node.
	var (
		n    int
		node int
		i, j int
	)
	g.points = make([][]int, len(g.mult))
	for node = range g.mult {
		pts := make([]int, g.mult[node])
		for i = range pts {
			pts[i] = n
			n++
		}
		g.points[node] = pts
	}

	// Node ownership per point, for the default-2 fill.
	owner := make([]int, n)
	for node = range g.points {
		for _, i = range g.points[node] {
			owner[i] = node
		}
	}

	d := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			u, v := owner[i], owner[j]
			if u > v {
				u, v = v, u
			}
			if u != v && g.edges[[2]int{u, v}] {
				d[i*n+j] = 1
			} else {
				d[i*n+j] = 2
			}
		}
	}
	g.built = true

	return &Metric{n: n, d: d}, nil
}

// NodePoints returns the point indices materialized for node by the last
// Build call. ErrNotBuilt before Build; ErrMalformedGraph on unknown ids.
func (g *Graph) NodePoints(node int) ([]int, error) {
	if !g.built {
		return nil, ErrNotBuilt
	}
	if node < 0 || node >= len(g.points) {
		return nil, fmt.Errorf("unknown node %d: %w", node, ErrMalformedGraph)
	}
	out := make([]int, len(g.points[node]))
	copy(out, g.points[node])

	return out, nil
}
