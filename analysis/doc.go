// Package analysis orchestrates one complete aerodynamic estimate:
// geometry generation, the thin-airfoil solve and the vortex-panel solve,
// wrapped with measurement.
//
// 🚀 What does an analysis produce?
//
//	One immutable Result per request:
//	  • thin-airfoil output — α_L0, 2π slope, CL(α), optional CL curve
//	  • vortex-panel output — surface Cp, γ, total circulation, CL
//	  • metrics — wall-clock solve time, a memory-footprint estimate, and
//	    the cross-model CL discrepancy (a self-consistency check between
//	    two independently derived estimates, not external ground truth)
//
// ✨ Key properties:
//   - purely functional: identical requests produce identical results;
//     nothing is cached, shared or retained between calls
//   - every entity is owned by the call that produced it
//   - memoization, when wanted, is explicit: callers own a Cache keyed by
//     the request Fingerprint — never a hidden package-level default
//
// ⚙️ Usage:
//
//	res, err := analysis.Analyze(analysis.Request{
//	  Code: "2412", AlphaDeg: 4,
//	})
//	fmt.Println(res.Panel.CL, res.Metrics.CLErrorBaseline)
//
// Errors pass through untranslated from naca (invalid codes),
// thinairfoil (option misuse) and vortexpanel (validation, singular
// systems), so errors.Is works across the boundary.
package analysis
