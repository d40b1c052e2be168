package mincost_test

import (
	"strings"
	"testing"

	"github.com/avoskre/monarchs/mincost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadDIMACS_Valid parses a LEMON-style instance and solves it.
func TestReadDIMACS_Valid(t *testing.T) {
	doc := `c tiny transportation instance
p min 3 3
n 1 4
n 3 -4
a 1 2 0 4 1
a 2 3 1 4 1
a 1 3 0 2 5
`
	net, err := mincost.ReadDIMACS(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, net.NumNodes())
	assert.Equal(t, 3, net.NumArcs())

	res, err := mincost.Solve(net, mincost.DefaultOptions())
	require.NoError(t, err)
	// All 4 units via 1→2→3 (cost 2 per unit) beats the direct cost-5 arc.
	assert.Equal(t, 8.0, res.Cost)
}

// TestReadDIMACS_Malformed exercises the reader sentinels.
func TestReadDIMACS_Malformed(t *testing.T) {
	cases := map[string]string{
		"missing problem line": "a 1 2 0 1 1\n",
		"duplicate problem":    "p min 1 0\np min 1 0\n",
		"wrong keyword":        "p max 2 1\na 1 2 0 1 1\n",
		"bad designator":       "p min 2 0\nx 1 2\n",
		"node out of range":    "p min 2 1\nn 5 1\na 1 2 0 1 1\n",
		"arc out of range":     "p min 2 1\na 1 9 0 1 1\n",
		"arc count mismatch":   "p min 2 2\na 1 2 0 1 1\n",
		"unparsable field":     "p min 2 1\na 1 2 zero 1 1\n",
	}
	for name, doc := range cases {
		_, err := mincost.ReadDIMACS(strings.NewReader(doc))
		assert.ErrorIs(t, err, mincost.ErrBadDIMACS, name)
	}

	// Bound violations surface as ErrBadArc, not ErrBadDIMACS.
	_, err := mincost.ReadDIMACS(strings.NewReader("p min 2 1\na 1 2 5 2 1\n"))
	assert.ErrorIs(t, err, mincost.ErrBadArc)
}

// TestWriteFlows emits only non-zero arcs, 1-based, in arc order.
func TestWriteFlows(t *testing.T) {
	doc := `p min 3 3
n 1 2
n 3 -2
a 1 2 0 4 1
a 2 3 0 4 1
a 1 3 0 2 9
`
	net, err := mincost.ReadDIMACS(strings.NewReader(doc))
	require.NoError(t, err)
	res, err := mincost.Solve(net, mincost.DefaultOptions())
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, mincost.WriteFlows(&sb, net, res))
	assert.Equal(t, "1 2 2\n2 3 2\n", sb.String(), "cost-9 arc carries nothing and is omitted")
}
