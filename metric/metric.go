package metric

import (
	"math"
)

// Metric is an immutable finite metric over points 0..n-1.
// The distance table is stored dense, row-major: d[i*n+j].
type Metric struct {
	n int
	d []float64
}

// New validates dist and copies it into an immutable Metric.
//
// Contracts:
//   - dist must be non-empty and square (ErrBadShape).
//   - every entry finite and ≥ 0 (ErrInvalidDistance).
//   - dist[i][i] == 0 within tolerance (ErrNonZeroDiagonal).
//   - dist[i][j] == dist[j][i] within tolerance (ErrAsymmetry).
//   - dist[i][j] ≤ dist[i][k]+dist[k][j] within tolerance (ErrTriangleViolation).
//
// Complexity: O(N³) time for the triangle scan, O(N²) memory.
func New(dist [][]float64) (*Metric, error) {
	n := len(dist)
	if n == 0 {
		return nil, ErrBadShape
	}
	var (
		i, j, k int
		v       float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrBadShape
		}
	}
	d := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = dist[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, ErrInvalidDistance
			}
			d[i*n+j] = v
		}
		if d[i*n+i] > distEps {
			return nil, ErrNonZeroDiagonal
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(d[i*n+j]-d[j*n+i]) > distEps {
				return nil, ErrAsymmetry
			}
		}
	}
	// Triangle inequality over all ordered triples.
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if d[i*n+j] > d[i*n+k]+d[k*n+j]+distEps {
					return nil, ErrTriangleViolation
				}
			}
		}
	}

	return &Metric{n: n, d: d}, nil
}

// Size returns N, the number of points.
func (m *Metric) Size() int { return m.n }

// Distance returns d(i,j) in O(1).
// Returns ErrIndexOutOfRange if i or j ∉ [0, N).
func (m *Metric) Distance(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return m.d[i*m.n+j], nil
}

// MustDistance is the hot-path accessor for callers that have already
// proven their indices valid; out-of-range indices panic. Public API
// surfaces must use Distance instead.
func (m *Metric) MustDistance(i, j int) float64 { return m.d[i*m.n+j] }
