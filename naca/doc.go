// Package naca parses NACA 4-digit designations and generates discretized
// airfoil surface geometry.
//
// 🚀 What is a NACA 4-digit airfoil?
//
//	A parametric wing-section family encoded in four digits MPXX:
//	  • M  — maximum camber, percent of chord
//	  • P  — position of maximum camber, tenths of chord
//	  • XX — maximum thickness, percent of chord
//	"2412" is 2% camber at 40% chord, 12% thick; "0012" is symmetric.
//
// ✨ Key features:
//   - construct-time validation: Code values are valid by construction
//   - cosine-spaced sampling, denser near leading and trailing edges,
//     as downstream panel integration requires
//   - analytic camber line and camber slope for the thin-airfoil solver
//   - derived geometric metrics for catalog display
//
// ⚙️ Usage:
//
//	code, err := naca.ParseCode("2412")
//	if err != nil {
//	  // handle ErrInvalidCode
//	}
//	geom, err := naca.Generate(code, 1.0, 200)
//
// Geometry convention:
//
//	Upper and lower surfaces are sampled at the same chordwise stations
//	(yu = yc + yt, yl = yc − yt). The true surface-normal thickness offset
//	is intentionally not applied: x stays monotone and plotting stays
//	simple, at the cost of exact surface placement near the leading edge.
//	This is a documented limitation, not a bug.
//
// Complexity: O(N) time and memory for N samples.
package naca
