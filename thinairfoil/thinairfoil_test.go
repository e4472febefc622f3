package thinairfoil_test

import (
	"math"
	"testing"

	"github.com/dallen2021/AeroStack/naca"
	"github.com/dallen2021/AeroStack/thinairfoil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, digits string) naca.Code {
	t.Helper()
	code, err := naca.ParseCode(digits)
	require.NoError(t, err)

	return code
}

// TestSolve_SymmetricZeroLift verifies m=0 sections have α_L0 = 0 exactly.
func TestSolve_SymmetricZeroLift(t *testing.T) {
	for _, digits := range []string{"0012", "0018", "0009"} {
		res, err := thinairfoil.Solve(mustCode(t, digits), 0, nil)
		require.NoError(t, err)
		assert.Zero(t, res.AlphaZeroLiftDeg, "%s: symmetric sections carry no zero-lift shift", digits)
		assert.Zero(t, res.CL, "%s: CL(0) must vanish for symmetric sections", digits)
	}
}

// TestSolve_ZeroLiftReference checks α_L0 of the NACA 2412 against the
// classic thin-airfoil value of about −2.07°.
func TestSolve_ZeroLiftReference(t *testing.T) {
	res, err := thinairfoil.Solve(mustCode(t, "2412"), 4.0, nil)
	require.NoError(t, err)
	assert.InDelta(t, -2.07, res.AlphaZeroLiftDeg, 0.1)
	assert.Positive(t, res.CL)
}

// TestSolve_CLVanishesAtZeroLift: CL(α_L0) = 0 by construction of α_L0.
func TestSolve_CLVanishesAtZeroLift(t *testing.T) {
	code := mustCode(t, "4412")
	first, err := thinairfoil.Solve(code, 0, nil)
	require.NoError(t, err)
	atL0, err := thinairfoil.Solve(code, first.AlphaZeroLiftDeg, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, atL0.CL, 1e-12)
}

// TestSolve_SlopeIsTwoPi verifies CL is linear in α with slope 2π rad⁻¹
// regardless of camber.
func TestSolve_SlopeIsTwoPi(t *testing.T) {
	for _, digits := range []string{"0012", "2412", "9306"} {
		code := mustCode(t, digits)
		lo, err := thinairfoil.Solve(code, -3.0, nil)
		require.NoError(t, err)
		hi, err := thinairfoil.Solve(code, 7.0, nil)
		require.NoError(t, err)
		slope := (hi.CL - lo.CL) / (10.0 * math.Pi / 180)
		assert.InDelta(t, 2*math.Pi, slope, 1e-9, "%s: slope must be 2π per radian", digits)
		assert.Equal(t, 2*math.Pi, lo.LiftSlopePerRad)
	}
}

// TestSolve_Curve verifies the optional CL curve is linear and consistent
// with the scalar CL at matching angles.
func TestSolve_Curve(t *testing.T) {
	code := mustCode(t, "2412")
	opts := thinairfoil.DefaultOptions()
	opts.CurveAlphaDeg = []float64{-10, -5, 0, 4, 10, 15}
	res, err := thinairfoil.Solve(code, 4.0, &opts)
	require.NoError(t, err)
	require.Len(t, res.CurveCL, len(opts.CurveAlphaDeg))

	// The α=4° curve point equals the scalar CL.
	assert.InDelta(t, res.CL, res.CurveCL[3], 1e-12)
	// Equal α steps produce equal CL steps (linearity).
	step := res.CurveCL[1] - res.CurveCL[0]
	assert.InDelta(t, step, res.CurveCL[2]-res.CurveCL[1], 1e-12)
}

// TestSolve_OptionErrors covers option misuse.
func TestSolve_OptionErrors(t *testing.T) {
	code := mustCode(t, "2412")

	opts := thinairfoil.Options{Samples: 2}
	_, err := thinairfoil.Solve(code, 0, &opts)
	assert.ErrorIs(t, err, thinairfoil.ErrBadSamples)

	opts = thinairfoil.DefaultOptions()
	opts.CurveAlphaDeg = []float64{0, -5, 5}
	_, err = thinairfoil.Solve(code, 0, &opts)
	assert.ErrorIs(t, err, thinairfoil.ErrUnsortedCurve)
}

// TestSolve_QuadratureConvergence: refining the θ grid must not move α_L0
// by more than a hair, confirming the integral converged at the default
// resolution.
func TestSolve_QuadratureConvergence(t *testing.T) {
	code := mustCode(t, "4415")
	coarse := thinairfoil.Options{Samples: 100}
	fine := thinairfoil.Options{Samples: 2000}
	a, err := thinairfoil.Solve(code, 0, &coarse)
	require.NoError(t, err)
	b, err := thinairfoil.Solve(code, 0, &fine)
	require.NoError(t, err)
	assert.InDelta(t, b.AlphaZeroLiftDeg, a.AlphaZeroLiftDeg, 5e-3)
}
