package vortexpanel

import (
	"fmt"
	"math"
	"sort"

	"github.com/dallen2021/AeroStack/naca"
)

// degenerateLengthFrac: panels shorter than this fraction of the chord are
// treated as coincident endpoints.
const degenerateLengthFrac = 1e-12

// BuildMesh resamples geom into exactly panels boundary elements along one
// continuous closed traversal.
//
// Traversal (clockwise): node angles θ_k = 2πk/P, k=0..P, with
// x = chord·(1+cosθ)/2. θ ∈ [0,π] walks the lower surface from the
// trailing edge to the leading edge, θ ∈ [π,2π] returns along the upper
// surface. Cosine spacing again clusters nodes at both edges. The trailing
// edge is closed at the yu/yl midpoint; the leading edge is the shared
// x=0 point of both surfaces.
//
// Surface ordinates between sample stations come from linear interpolation
// on the geometry's monotone x grid.
//
// Errors:
//   - ErrValidation when panels is outside [MinPanels, MaxPanels] or any
//     resampled panel degenerates to (near) zero length. P=1 always
//     degenerates: its single panel starts and ends at the trailing edge.
//
// Complexity: O(P·log N) time, O(P) memory.
func BuildMesh(geom *naca.Geometry, panels int) (*Mesh, error) {
	if panels < MinPanels || panels > MaxPanels {
		return nil, fmt.Errorf("%w: panel count %d outside [%d,%d]", ErrValidation, panels, MinPanels, MaxPanels)
	}

	c := geom.Chord
	teY := (geom.Yu[geom.N()-1] + geom.Yl[geom.N()-1]) / 2

	// P+1 nodes, node P coinciding with node 0 to close the loop.
	xs := make([]float64, panels+1)
	ys := make([]float64, panels+1)
	for k := 0; k <= panels; k++ {
		theta := 2 * math.Pi * float64(k) / float64(panels)
		x := c * (1 + math.Cos(theta)) / 2
		var y float64
		switch {
		case k == 0 || k == panels:
			x, y = c, teY
		case theta <= math.Pi:
			y = interpolate(geom.X, geom.Yl, x)
		default:
			y = interpolate(geom.X, geom.Yu, x)
		}
		xs[k], ys[k] = x, y
	}

	mesh := &Mesh{Chord: c, Panels: make([]Panel, panels)}
	eps := degenerateLengthFrac * c
	for i := 0; i < panels; i++ {
		dx := xs[i+1] - xs[i]
		dy := ys[i+1] - ys[i]
		length := math.Hypot(dx, dy)
		if length <= eps {
			return nil, fmt.Errorf("%w: panel %d degenerates to length %g", ErrValidation, i, length)
		}
		phi := math.Atan2(dy, dx)
		sin, cos := math.Sincos(phi)
		mesh.Panels[i] = Panel{
			X0: xs[i], Y0: ys[i], X1: xs[i+1], Y1: ys[i+1],
			XC: (xs[i] + xs[i+1]) / 2, YC: (ys[i] + ys[i+1]) / 2,
			Length: length, Phi: phi,
			Tx: cos, Ty: sin,
			Nx: sin, Ny: -cos,
		}
	}

	return mesh, nil
}

// interpolate evaluates the piecewise-linear surface y(x) defined by the
// non-decreasing grid xs. x is clamped to the grid's range.
func interpolate(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	// Smallest index with xs[j] ≥ x; the bracketing interval is [j-1, j].
	j := sort.SearchFloat64s(xs, x)
	if j < n && xs[j] == x {
		return ys[j]
	}
	x0, x1 := xs[j-1], xs[j]
	if x1 == x0 { // repeated station, cosine grids collapse at the edges
		return ys[j]
	}
	f := (x - x0) / (x1 - x0)

	return ys[j-1] + f*(ys[j]-ys[j-1])
}
