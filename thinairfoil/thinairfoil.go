package thinairfoil

import (
	"errors"
	"fmt"
	"math"

	"github.com/dallen2021/AeroStack/naca"
)

// LiftSlopePerRad is the thin-airfoil lift slope, 2π per radian
// (≈0.1097 per degree), independent of camber.
const LiftSlopePerRad = 2 * math.Pi

// DefaultSamples is the default θ-grid resolution for the α_L0 quadrature.
const DefaultSamples = 200

var (
	// ErrBadSamples indicates Options.Samples below the usable minimum.
	ErrBadSamples = errors.New("thinairfoil: Samples must be at least 3")
	// ErrUnsortedCurve indicates CurveAlphaDeg is not ascending.
	ErrUnsortedCurve = errors.New("thinairfoil: curve angles must be sorted in ascending order")
)

// Options configures the thin-airfoil solve.
//
// Fields:
//   - Samples       — θ-grid resolution for the zero-lift quadrature.
//   - CurveAlphaDeg — angles (degrees, ascending) at which to evaluate a
//     CL curve; nil or empty means no curve.
type Options struct {
	Samples       int
	CurveAlphaDeg []float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Samples: DefaultSamples}
}

// Result aggregates the thin-airfoil outputs for one angle of attack.
type Result struct {
	// AlphaZeroLiftDeg is the zero-lift angle α_L0 in degrees.
	AlphaZeroLiftDeg float64 `json:"alpha_l0_deg"`
	// LiftSlopePerRad echoes the universal 2π slope for display layers.
	LiftSlopePerRad float64 `json:"lift_slope_per_rad"`
	// CL is the lift coefficient 2π(α−α_L0) at the requested angle.
	CL float64 `json:"cl"`
	// CurveAlphaDeg / CurveCL are the optional CL-vs-α samples.
	CurveAlphaDeg []float64 `json:"curve_alpha_deg,omitempty"`
	CurveCL       []float64 `json:"curve_cl,omitempty"`
}

// Solve computes the zero-lift angle and lift coefficient for code at
// alphaDeg degrees. A nil opts selects DefaultOptions.
//
// Algorithm:
//  1. θ_k = kπ/(S−1), x/c = (1−cosθ_k)/2 — the same cosine grid the
//     geometry generator uses, so both models see the section identically;
//  2. composite trapezoid over f(θ) = (dyc/dx)(cosθ−1);
//  3. α_L0 = −(1/π)·∫f, CL = 2π(α−α_L0), both angles in radians
//     internally.
//
// Errors:
//   - ErrBadSamples, ErrUnsortedCurve (option misuse only; a valid Code
//     introduces no failure modes).
//
// Complexity: O(S + len(CurveAlphaDeg)) time.
func Solve(code naca.Code, alphaDeg float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Samples == 0 {
			o.Samples = DefaultSamples
		}
	}
	if o.Samples < 3 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadSamples, o.Samples)
	}
	for i := 1; i < len(o.CurveAlphaDeg); i++ {
		if o.CurveAlphaDeg[i] < o.CurveAlphaDeg[i-1] {
			return Result{}, fmt.Errorf("%w: index %d", ErrUnsortedCurve, i)
		}
	}

	alphaL0 := zeroLiftAngle(code, o.Samples)
	alpha := alphaDeg * math.Pi / 180

	res := Result{
		AlphaZeroLiftDeg: alphaL0 * 180 / math.Pi,
		LiftSlopePerRad:  LiftSlopePerRad,
		CL:               LiftSlopePerRad * (alpha - alphaL0),
	}
	if len(o.CurveAlphaDeg) > 0 {
		res.CurveAlphaDeg = append([]float64(nil), o.CurveAlphaDeg...)
		res.CurveCL = make([]float64, len(o.CurveAlphaDeg))
		for i, aDeg := range o.CurveAlphaDeg {
			res.CurveCL[i] = LiftSlopePerRad * (aDeg*math.Pi/180 - alphaL0)
		}
	}

	return res, nil
}

// zeroLiftAngle integrates −(1/π)∫₀^π (dyc/dx)(cosθ−1) dθ with the
// composite trapezoid rule on samples points. Result in radians.
func zeroLiftAngle(code naca.Code, samples int) float64 {
	if code.Symmetric() {
		return 0 // integrand is identically zero
	}
	h := math.Pi / float64(samples-1)
	var sum float64
	for k := 0; k < samples; k++ {
		theta := float64(k) * h
		xc := (1 - math.Cos(theta)) / 2
		f := code.CamberSlopeAt(xc) * (math.Cos(theta) - 1)
		w := h
		if k == 0 || k == samples-1 {
			w = h / 2
		}
		sum += w * f
	}

	return -sum / math.Pi
}
