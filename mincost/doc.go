// Package mincost solves minimum-cost flow with per-arc lower bounds on
// directed networks with integer capacities and float64 costs.
//
// # Model
//
// A Network holds nodes 0..N-1, arcs (from, to, lower, capacity, cost)
// and per-node supplies (demand = negative supply). Solve finds per-arc
// flows f with lower ≤ f ≤ capacity, conservation at every node offset
// by its supply, minimizing Σ f·cost.
//
// # Method
//
// Lower bounds are removed first by the standard supply/demand
// transformation: every arc ships its lower bound unconditionally, which
// shifts the endpoints' balances and leaves an ordinary min-cost-flow
// instance with capacities capacity−lower. The transformed instance is
// solved by successive shortest paths with node potentials: Bellman–Ford
// establishes initial potentials (tolerating negative arc costs),
// then each augmentation runs Dijkstra on reduced costs and pushes the
// bottleneck amount from the super-source to the super-sink. All
// capacities are integral, every bottleneck is integral, so the returned
// flow is integral — the property the assignment-rounding stage's
// integrality guarantee rests on.
//
// If the super-source cannot route its full excess the instance has no
// feasible flow and Solve returns ErrInfeasibleFlow.
//
// Complexity: O(F·(E log V)) with F the total excess shipped, plus one
// O(V·E) Bellman–Ford; memory O(V + E).
//
// # DIMACS
//
// ReadDIMACS ingests the DIMACS min-cost-flow format ("p min" header,
// "n" supply lines, "a" arc lines with lower bound, capacity and cost);
// WriteFlows emits the non-zero arc flows as "src dst flow" lines with
// the 1-based ids of the input document. Together they back the solvemcf
// command-line utility.
//
// Errors (sentinel): ErrBadArc, ErrBadNode, ErrUnbalanced,
// ErrInfeasibleFlow, ErrBadDIMACS; matched with errors.Is.
package mincost
