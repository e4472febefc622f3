package naca

import (
	"fmt"
	"math"
)

// Thickness polynomial coefficients for the NACA 4-digit family
// (open trailing edge variant, yt(c) ≈ 0.0021·5t·c).
const (
	thkSqrt = 0.2969
	thkX1   = 0.1260
	thkX2   = 0.3516
	thkX3   = 0.2843
	thkX4   = 0.1015
)

// ParseCode validates a NACA 4-digit designation and returns its Code.
//
// Validation stages:
//  1. exactly four ASCII digits;
//  2. non-zero thickness (a zero-thickness section has no area and every
//     downstream solver degenerates);
//  3. p=0 is only meaningful for symmetric sections — with m>0 the
//     piecewise camber formula divides by p².
//
// Errors:
//   - ErrInvalidCode, wrapped with the offending detail.
func ParseCode(code string) (Code, error) {
	if len(code) != 4 {
		return Code{}, fmt.Errorf("%w: %q is not four characters", ErrInvalidCode, code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return Code{}, fmt.Errorf("%w: %q contains a non-digit", ErrInvalidCode, code)
		}
	}
	m := float64(code[0]-'0') / 100
	p := float64(code[1]-'0') / 10
	t := float64(code[2]-'0')/10 + float64(code[3]-'0')/100
	if t == 0 {
		return Code{}, fmt.Errorf("%w: %q has zero thickness", ErrInvalidCode, code)
	}
	if m > 0 && p == 0 {
		return Code{}, fmt.Errorf("%w: %q cambers at x/c=0", ErrInvalidCode, code)
	}
	return Code{digits: code, m: m, p: p, t: t}, nil
}

// CamberAt returns the camber line ordinate yc/c at chord fraction xc ∈ [0,1].
func (c Code) CamberAt(xc float64) float64 {
	if c.m == 0 {
		return 0
	}
	if xc < c.p {
		return c.m / (c.p * c.p) * (2*c.p*xc - xc*xc)
	}
	q := 1 - c.p

	return c.m / (q * q) * ((1 - 2*c.p) + 2*c.p*xc - xc*xc)
}

// CamberSlopeAt returns the analytic camber slope dyc/dx at chord
// fraction xc ∈ [0,1]. The thin-airfoil solver integrates this directly.
func (c Code) CamberSlopeAt(xc float64) float64 {
	if c.m == 0 {
		return 0
	}
	if xc < c.p {
		return 2 * c.m / (c.p * c.p) * (c.p - xc)
	}
	q := 1 - c.p

	return 2 * c.m / (q * q) * (c.p - xc)
}

// HalfThicknessAt returns the thickness half-width yt/c at chord
// fraction xc ∈ [0,1].
func (c Code) HalfThicknessAt(xc float64) float64 {
	return 5 * c.t * (thkSqrt*math.Sqrt(xc) - thkX1*xc - thkX2*xc*xc + thkX3*xc*xc*xc - thkX4*xc*xc*xc*xc)
}

// Generate samples the airfoil surface at n cosine-spaced chordwise
// stations over the given chord.
//
// Algorithm:
//  1. θ_i = iπ/(n−1), x_i = chord·(1−cosθ_i)/2 — clustering stations near
//     both edges, which the panel solver's integration needs for stability;
//  2. yc and yt per the 4-digit closed forms (see doc.go for the shared-x
//     simplification);
//  3. yu = yc + yt, yl = yc − yt.
//
// Errors:
//   - ErrChord when chord ≤ 0 (or not finite);
//   - ErrSampleCount when n < MinSamples.
//
// Complexity: O(n) time, O(n) memory.
func Generate(code Code, chord float64, n int) (*Geometry, error) {
	if chord <= 0 || math.IsNaN(chord) || math.IsInf(chord, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrChord, chord)
	}
	if n < MinSamples {
		return nil, fmt.Errorf("%w: got %d", ErrSampleCount, n)
	}

	g := &Geometry{
		Code:   code,
		Chord:  chord,
		X:      make([]float64, n),
		Yu:     make([]float64, n),
		Yl:     make([]float64, n),
		Camber: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		theta := float64(i) * math.Pi / float64(n-1)
		xc := (1 - math.Cos(theta)) / 2
		yc := chord * code.CamberAt(xc)
		yt := chord * code.HalfThicknessAt(xc)
		g.X[i] = chord * xc
		g.Camber[i] = yc
		g.Yu[i] = yc + yt
		g.Yl[i] = yc - yt
	}
	// Pin the exact endpoint values against cosine round-off.
	g.X[0], g.X[n-1] = 0, chord

	return g, nil
}
