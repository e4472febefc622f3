// Package aerostack is an aerodynamic analysis engine for NACA 4-digit
// airfoils — from geometry generation to a vortex-panel pressure solution
// and a fabrication-ready rib export.
//
// 🚀 What is AeroStack?
//
//	A pure, deterministic engine that turns a 4-digit code into numbers you
//	can trust:
//		• Geometry: cosine-spaced upper/lower surface coordinates
//		• Thin-airfoil theory: zero-lift angle, 2π lift slope, CL(α) curves
//		• Vortex panel method: surface Cp, circulation and CL with a
//		  single-equation Kutta closure
//		• Metrics: solve timing, memory estimate, cross-model CL discrepancy
//		• DXF: scaled, closed rib contours for cutting/CAM tooling
//
// ✨ Why choose AeroStack?
//
//   - Stateless by construction – every analysis owns its arrays, nothing
//     outlives a request
//   - Explicit errors – invalid codes, degenerate panels and singular
//     systems surface as sentinel errors, never panics
//   - Conditioning aware – suspect solves are flagged, not silently returned
//
// Under the hood, everything is organized under focused subpackages:
//
//	naca/        — 4-digit code parsing + surface/camber generation
//	thinairfoil/ — linearized lift model (α_L0, CL(α))
//	vortexpanel/ — boundary-element mesh, dense solve, Cp and lift
//	analysis/    — orchestrated analyze() with metrics and result cache
//	presets/     — curated airfoil catalog
//	dxf/         — rib contour export
//	server/      — HTTP/websocket serving layer around the engine
//
// Quick sketch:
//
//	code → naca.Generate → ┬→ thinairfoil.Solve ─┐
//	                       ├→ vortexpanel.Solve ─┴→ analysis.Result
//	                       └→ dxf.Export
//
// Dive into DESIGN.md for solver conventions and the serving API.
package aerostack
