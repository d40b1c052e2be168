package monarch_test

import (
	"sort"
	"testing"

	"github.com/avoskre/monarchs/metric"
	"github.com/avoskre/monarchs/monarch"
	"github.com/avoskre/monarchs/relax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineMetric returns a 1-D metric over points 0..n-1 at unit spacing.
func lineMetric(t *testing.T, n int) *metric.Metric {
	t.Helper()
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i > j {
				d[i][j] = float64(i - j)
			} else {
				d[i][j] = float64(j - i)
			}
		}
	}
	m, err := metric.New(d)
	require.NoError(t, err)

	return m
}

// frac builds a Fractional with the given y; x assigns each point fully
// to its own center so every open center has service radius 0.
func selfServing(n int, y []float64) *relax.Fractional {
	f := &relax.Fractional{N: n, Y: y, X: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		f.X[i*n+i] = 1
	}

	return f
}

// TestBuild_ArgumentValidation covers the nil/mismatch sentinels.
func TestBuild_ArgumentValidation(t *testing.T) {
	m := lineMetric(t, 3)

	_, err := monarch.Build(nil, 1, &relax.Fractional{}, 0)
	assert.ErrorIs(t, err, monarch.ErrNilMetric)

	_, err = monarch.Build(m, 1, nil, 0)
	assert.ErrorIs(t, err, monarch.ErrNilFractional)

	_, err = monarch.Build(m, 1, selfServing(2, []float64{1, 0}), 0)
	assert.ErrorIs(t, err, monarch.ErrDimensionMismatch)
}

// TestBuild_IntegralMassYieldsKMonarchs: with y integral and Σy = k,
// every open center becomes its own monarch (radius 0 captures nothing).
func TestBuild_IntegralMassYieldsKMonarchs(t *testing.T) {
	m := lineMetric(t, 5)
	y := []float64{1, 0, 1, 0, 1}

	p, err := monarch.Build(m, 3, selfServing(5, y), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, sorted(p.Monarchs), "open centers become monarchs")
	assert.Equal(t, -1, p.Owner[1], "closed center stays unowned")
	assert.Equal(t, -1, p.Owner[3], "closed center stays unowned")
	for _, mo := range p.Monarchs {
		assert.Equal(t, mo, p.Owner[mo], "monarch owns itself")
	}
}

// TestBuild_LargestYFirstWithIndexTieBreak documents the deterministic
// selection order: largest y first, lowest index on ties.
func TestBuild_LargestYFirstWithIndexTieBreak(t *testing.T) {
	m := lineMetric(t, 4)
	y := []float64{0.5, 1, 0.5, 0}

	p, err := monarch.Build(m, 2, selfServing(4, y), 0)
	require.NoError(t, err)

	require.Len(t, p.Monarchs, 2)
	assert.Equal(t, 1, p.Monarchs[0], "largest y selected first")
	assert.Equal(t, 0, p.Monarchs[1], "tie between 0 and 2 breaks to lowest index")
}

// TestBuild_EmpireCaptureWithinTwiceRadius: a monarch whose LP mass is
// served at mean distance R absorbs open centers within 2R.
func TestBuild_EmpireCaptureWithinTwiceRadius(t *testing.T) {
	n := 4
	m := lineMetric(t, n)

	// Center 0: y=1, serving points 0 and 2 with weight 1 each
	// → radius (0+2)/2 = 1, capture threshold 2.
	// Center 1 (distance 1) and center 2 (distance 2) must join its
	// empire; center 3 (distance 3) stays out and becomes the 2nd monarch.
	f := &relax.Fractional{N: n, Y: []float64{1, 0.3, 0.3, 0.4}, X: make([]float64, n*n)}
	f.X[0*n+0] = 1
	f.X[0*n+2] = 1
	f.X[3*n+3] = 1

	p, err := monarch.Build(m, 2, f, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, p.Monarchs)
	assert.Equal(t, 1.0, p.Radius[0])
	assert.Equal(t, []int{0, 1, 2}, p.Empire(0))
	assert.Equal(t, []int{3}, p.Empire(3))
}

// TestBuild_StragglersJoinNearestMonarch: once k monarchs exist, leftover
// open centers attach to the nearest monarch instead of founding empires.
func TestBuild_StragglersJoinNearestMonarch(t *testing.T) {
	n := 6
	m := lineMetric(t, n)

	// Monarch candidates at 0 and 5 (y=1, radius 0); center 4 stays open
	// but k=2 is reached before it is processed → nearest monarch is 5.
	f := selfServing(n, []float64{1, 0, 0, 0, 0.5, 1})

	p, err := monarch.Build(m, 2, f, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5}, p.Monarchs)
	assert.Equal(t, 5, p.Owner[4], "straggler joins nearest monarch")
}

// TestBuild_InsufficientMass: fewer open centers than k is the
// inconsistent-LP signal.
func TestBuild_InsufficientMass(t *testing.T) {
	m := lineMetric(t, 3)

	_, err := monarch.Build(m, 2, selfServing(3, []float64{1, 0, 0}), 0)
	assert.ErrorIs(t, err, monarch.ErrRoundingInvariant)
}

func sorted(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)

	return out
}
