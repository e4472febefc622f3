// Package thinairfoil computes linearized lift predictions from a NACA
// camber line: zero-lift angle, the theoretical 2π lift slope, and CL(α)
// curves.
//
// 🚀 What is thin-airfoil theory?
//
//	A linearized potential-flow model in which lift depends only on the
//	camber-line slope. Its two famous results:
//	  • the lift slope is the universal constant 2π per radian for every
//	    thin section, cambered or not
//	  • camber shifts the zero-lift angle α_L0, not the slope
//
// ✨ Key features:
//   - α_L0 = −(1/π)∫₀^π (dyc/dx)(cosθ−1) dθ by composite trapezoid
//     quadrature over the analytic camber slope (no surface fit involved)
//   - CL(α) = 2π(α − α_L0) evaluated in closed form
//   - optional CL-vs-α curves at caller-supplied angles, free of extra
//     integration since the relation is linear
//
// ⚙️ Usage:
//
//	code, _ := naca.ParseCode("2412")
//	res, err := thinairfoil.Solve(code, 4.0, nil)
//	fmt.Println(res.AlphaZeroLiftDeg, res.CL)
//
// There are no failure modes for a valid Code beyond malformed Options.
//
// Complexity: O(S) time for S quadrature samples, O(1) memory beyond the
// optional curve.
package thinairfoil
