package mincost

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDIMACS parses a DIMACS min-cost-flow document:
//
//	c  <comment>
//	p  min <nodes> <arcs>
//	n  <id> <supply>
//	a  <src> <dst> <lower> <capacity> <cost>
//
// Node ids are 1-based in the document and become 0-based network ids
// (document id k → network node k-1). Unknown ids, missing or duplicate
// headers, count mismatches and unparsable fields yield ErrBadDIMACS;
// arc bound violations surface as ErrBadArc.
func ReadDIMACS(r io.Reader) (*Network, error) {
	var (
		net      *Network
		wantArcs int
		gotArcs  int
		lineNo   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			// comment

		case "p":
			if net != nil {
				return nil, fmt.Errorf("line %d: duplicate problem line: %w", lineNo, ErrBadDIMACS)
			}
			if len(fields) != 4 || fields[1] != "min" {
				return nil, fmt.Errorf("line %d: want \"p min NODES ARCS\": %w", lineNo, ErrBadDIMACS)
			}
			nodes, err1 := strconv.Atoi(fields[2])
			arcs, err2 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || nodes < 0 || arcs < 0 {
				return nil, fmt.Errorf("line %d: bad node/arc counts: %w", lineNo, ErrBadDIMACS)
			}
			net = NewNetwork(nodes)
			net.AddNodes(nodes)
			wantArcs = arcs

		case "n":
			if net == nil {
				return nil, fmt.Errorf("line %d: node line before problem line: %w", lineNo, ErrBadDIMACS)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: want \"n ID SUPPLY\": %w", lineNo, ErrBadDIMACS)
			}
			id, err1 := strconv.Atoi(fields[1])
			supply, err2 := strconv.ParseInt(fields[2], 10, 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad node fields: %w", lineNo, ErrBadDIMACS)
			}
			if err := net.SetSupply(id-1, supply); err != nil {
				return nil, fmt.Errorf("line %d: node %d: %w", lineNo, id, ErrBadDIMACS)
			}

		case "a":
			if net == nil {
				return nil, fmt.Errorf("line %d: arc line before problem line: %w", lineNo, ErrBadDIMACS)
			}
			if len(fields) != 6 {
				return nil, fmt.Errorf("line %d: want \"a SRC DST LOW CAP COST\": %w", lineNo, ErrBadDIMACS)
			}
			src, err1 := strconv.Atoi(fields[1])
			dst, err2 := strconv.Atoi(fields[2])
			low, err3 := strconv.ParseInt(fields[3], 10, 64)
			capacity, err4 := strconv.ParseInt(fields[4], 10, 64)
			cost, err5 := strconv.ParseFloat(fields[5], 64)
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
				return nil, fmt.Errorf("line %d: bad arc fields: %w", lineNo, ErrBadDIMACS)
			}
			if src < 1 || src > net.NumNodes() || dst < 1 || dst > net.NumNodes() {
				return nil, fmt.Errorf("line %d: arc endpoint out of range: %w", lineNo, ErrBadDIMACS)
			}
			if _, err := net.AddArc(src-1, dst-1, low, capacity, cost); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			gotArcs++

		default:
			return nil, fmt.Errorf("line %d: unknown designator %q: %w", lineNo, fields[0], ErrBadDIMACS)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if net == nil {
		return nil, fmt.Errorf("missing problem line: %w", ErrBadDIMACS)
	}
	if gotArcs != wantArcs {
		return nil, fmt.Errorf("arc count %d, problem line says %d: %w", gotArcs, wantArcs, ErrBadDIMACS)
	}

	return net, nil
}

// WriteFlows emits the non-zero arc flows of res, one "src dst flow"
// line per arc in arc-id order, using the 1-based node ids of the DIMACS
// document the network was read from. Solvers that expose internal
// 0-based ids print shifted endpoints for the same flows; here the
// output ids deliberately match the input document.
func WriteFlows(w io.Writer, net *Network, res *Result) error {
	bw := bufio.NewWriter(w)
	for a := 0; a < net.NumArcs(); a++ {
		f := res.ArcFlow(a)
		if f == 0 {
			continue
		}
		from, to := net.Arc(a)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", from+1, to+1, f); err != nil {
			return err
		}
	}

	return bw.Flush()
}
