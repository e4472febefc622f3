package vortexpanel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve computes the constant-strength vortex-panel solution for mesh at
// alphaDeg degrees incidence and freestream speed vInf. A nil opts selects
// DefaultOptions. Identical inputs always produce identical outputs; any
// memoization belongs to the caller.
//
// Algorithm:
//  1. Assembly — A[i][j] is the normal velocity at control point i induced
//     by unit clockwise strength on panel j (closed-form kernel, analytic
//     self limit); b[i] = −V∞(cosα·n_x + sinα·n_y).
//  2. Kutta — row KuttaRow (P/2 for KuttaRowAuto) is replaced by
//     γ₁+γ_P = 0, keeping the system square.
//  3. Direct LU solve with a condition estimate.
//  4. Surface pressure — Vt = freestream tangential + γᵢ/2 + induced
//     tangential from all other panels (same kernel, tangential
//     projection); Cp = 1 − (Vt/V∞)².
//  5. Lift — Γ = Σ γᵢLᵢ, CL = 2Γ/(V∞·chord) (Kutta–Joukowski).
//
// Errors:
//   - ErrValidation for vInf ≤ 0 or a KuttaRow outside the system;
//   - ErrSingularSystem when the LU estimate exceeds MaxConditionNumber or
//     the factorization cannot back-substitute.
//
// Complexity: O(P²) assembly + O(P³) solve, O(P²) memory.
func Solve(mesh *Mesh, alphaDeg, vInf float64, opts *Options) (*Solution, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.MaxConditionNumber == 0 {
			o.MaxConditionNumber = DefaultMaxConditionNumber
		}
		if o.WarnConditionNumber == 0 {
			o.WarnConditionNumber = DefaultWarnConditionNumber
		}
	}
	if vInf <= 0 || math.IsNaN(vInf) || math.IsInf(vInf, 0) {
		return nil, fmt.Errorf("%w: freestream speed %v must be positive", ErrValidation, vInf)
	}
	p := mesh.P()
	kuttaRow := o.KuttaRow
	if kuttaRow == KuttaRowAuto {
		kuttaRow = p / 2
	}
	if kuttaRow < 0 || kuttaRow >= p {
		return nil, fmt.Errorf("%w: KuttaRow %d outside [0,%d)", ErrValidation, o.KuttaRow, p)
	}

	alpha := alphaDeg * math.Pi / 180
	cosA, sinA := math.Cos(alpha), math.Sin(alpha)

	// Stage 1: tangency system.
	a := mat.NewDense(p, p, nil)
	b := mat.NewVecDense(p, nil)
	for i := 0; i < p; i++ {
		pi := &mesh.Panels[i]
		for j := 0; j < p; j++ {
			u, v := mesh.Panels[j].unitVelocityAt(pi.XC, pi.YC, i == j)
			a.Set(i, j, u*pi.Nx+v*pi.Ny)
		}
		b.SetVec(i, -vInf*(cosA*pi.Nx+sinA*pi.Ny))
	}

	// Stage 2: Kutta closure replaces one tangency row.
	for j := 0; j < p; j++ {
		a.Set(kuttaRow, j, 0)
	}
	a.Set(kuttaRow, 0, 1)
	a.Set(kuttaRow, p-1, a.At(kuttaRow, p-1)+1)
	b.SetVec(kuttaRow, 0)

	// Stage 3: direct solve with conditioning guard.
	var lu mat.LU
	lu.Factorize(a)
	cond := lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > o.MaxConditionNumber {
		return nil, fmt.Errorf("%w: condition number %.3g exceeds %.3g", ErrSingularSystem, cond, o.MaxConditionNumber)
	}
	var gammaVec mat.VecDense
	if err := lu.SolveVecTo(&gammaVec, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	sol := &Solution{
		AlphaDeg:        alphaDeg,
		VInf:            vInf,
		XMid:            make([]float64, p),
		YMid:            make([]float64, p),
		SMid:            make([]float64, p),
		Gamma:           make([]float64, p),
		Cp:              make([]float64, p),
		ConditionNumber: cond,
		IllConditioned:  cond > o.WarnConditionNumber,
	}
	for i := 0; i < p; i++ {
		sol.Gamma[i] = gammaVec.AtVec(i)
	}

	// Stage 4: tangential velocity and Cp, reusing the assembly kernel
	// with the tangential projection.
	arc := 0.0
	for i := 0; i < p; i++ {
		pi := &mesh.Panels[i]
		vt := vInf * (cosA*pi.Tx + sinA*pi.Ty)
		for j := 0; j < p; j++ {
			// The self case contributes exactly γᵢ/2: the kernel's
			// limiting value (1/2, 0) projected on the tangent.
			u, v := mesh.Panels[j].unitVelocityAt(pi.XC, pi.YC, i == j)
			vt += sol.Gamma[j] * (u*pi.Tx + v*pi.Ty)
		}
		sol.XMid[i] = pi.XC
		sol.YMid[i] = pi.YC
		sol.SMid[i] = arc + pi.Length/2
		arc += pi.Length
		ratio := vt / vInf
		sol.Cp[i] = 1 - ratio*ratio
	}

	// Stage 5: circulation and lift.
	for i := 0; i < p; i++ {
		sol.Circulation += sol.Gamma[i] * mesh.Panels[i].Length
	}
	sol.CL = 2 * sol.Circulation / (vInf * mesh.Chord)

	return sol, nil
}
