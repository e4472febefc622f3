// Package vortexpanel solves the incompressible potential flow around an
// airfoil with constant-strength vortex panels and a single-equation Kutta
// closure, returning surface pressure (Cp), circulation and lift.
//
// 🚀 What is the vortex panel method?
//
//	A boundary-element technique: the airfoil surface is discretized into
//	straight panels, each carrying a constant vortex-sheet strength γ.
//	Requiring zero normal velocity at every panel midpoint (flow tangency),
//	plus the Kutta condition at the trailing edge, yields a dense P×P
//	linear system whose solution gives the surface velocity field.
//
// ✨ Key features:
//   - one closed, consistently-oriented traversal: trailing edge → lower
//     surface → leading edge → upper surface → trailing edge
//   - a single geometric kernel shared by the normal-influence assembly
//     and the tangential Cp pass, so the two can never drift apart
//   - gonum-backed LU solve with a condition-number estimate; suspect
//     systems are flagged, singular ones rejected
//   - Kutta–Joukowski lift: Γ = Σ γᵢLᵢ, CL = 2Γ/(V∞·c)
//
// ⚙️ Usage:
//
//	geom, _ := naca.Generate(code, 1.0, 200)
//	mesh, err := vortexpanel.BuildMesh(geom, 80)
//	sol, err := vortexpanel.Solve(mesh, 4.0, 1.0, nil)
//	fmt.Println(sol.CL)
//
// Sign conventions:
//
//	Panels run clockwise (trailing edge → lower → leading edge → upper).
//	γ is positive clockwise, so positive lift comes with positive total
//	circulation and the own-panel tangential term is +γᵢ/2. Panel normals
//	are (sinφ, −cosφ); tangency is insensitive to the normal's sign.
//
// Known limitation: the Kutta treatment replaces one tangency row with
// γ₁+γ_P = 0. That is adequate for smooth airfoils and fragile for
// near-zero trailing-edge angles. The replaced row defaults to the
// leading-edge panel P/2 — dropping tangency on a trailing-edge panel
// instead makes coarse-mesh lift oscillate; Options.KuttaRow exposes the
// choice for callers that need to move it.
//
// Complexity: O(P²) assembly, O(P³) solve, O(P²) memory — bounded by the
// MaxPanels=100 ceiling to low-millisecond latency.
package vortexpanel
