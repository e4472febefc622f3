// Package vortexpanel defines the mesh, options and solution value types.
package vortexpanel

const (
	// MinPanels and MaxPanels bound the requested panel count. The upper
	// bound keeps the O(P³) direct solve at low-millisecond latency.
	MinPanels = 1
	MaxPanels = 100

	// DefaultMaxConditionNumber is the hard conditioning ceiling: beyond
	// it the solve fails with ErrSingularSystem.
	DefaultMaxConditionNumber = 1e12
	// DefaultWarnConditionNumber is the soft ceiling: beyond it the
	// solution is returned with IllConditioned set.
	DefaultWarnConditionNumber = 1e8

	// KuttaRowAuto selects the tangency row farthest from the trailing
	// edge (index P/2, the first upper-surface panel at the leading edge)
	// as the one replaced by the Kutta equation. Replacing a row at the
	// trailing edge removes tangency exactly where γ₁+γ_P=0 acts and
	// destabilizes coarse meshes.
	KuttaRowAuto = -1
)

// Panel is one straight boundary element of the closed surface traversal.
type Panel struct {
	// X0,Y0 → X1,Y1 are the endpoints in traversal order.
	X0, Y0, X1, Y1 float64
	// XC,YC is the control point (midpoint).
	XC, YC float64
	// Length is √(Δx²+Δy²); Phi is the inclination atan2(Δy,Δx).
	Length, Phi float64
	// Tx,Ty is the unit tangent (cosφ, sinφ); Nx,Ny the unit normal
	// (sinφ, −cosφ).
	Tx, Ty, Nx, Ny float64
}

// Mesh is an ordered, closed panelization of an airfoil surface.
// Built fresh per analysis; never mutated after construction.
type Mesh struct {
	// Chord is the chord of the generating geometry, used by the
	// Kutta–Joukowski lift normalization.
	Chord  float64
	Panels []Panel
}

// P returns the panel count.
func (m *Mesh) P() int { return len(m.Panels) }

// Options configures the dense solve.
//
// Fields:
//   - KuttaRow            — index of the tangency row replaced by the
//     Kutta constraint γ₁+γ_P=0, or KuttaRowAuto for the leading-edge
//     row P/2. Movable for sections where the replacement choice affects
//     conditioning.
//   - MaxConditionNumber  — hard failure threshold (ErrSingularSystem).
//   - WarnConditionNumber — soft threshold; sets Solution.IllConditioned.
type Options struct {
	KuttaRow            int
	MaxConditionNumber  float64
	WarnConditionNumber float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		KuttaRow:            KuttaRowAuto,
		MaxConditionNumber:  DefaultMaxConditionNumber,
		WarnConditionNumber: DefaultWarnConditionNumber,
	}
}

// Solution is the vortex-panel result for one flow condition.
// Immutable once returned; slices are owned by the solution.
type Solution struct {
	AlphaDeg float64 `json:"alpha_deg"`
	VInf     float64 `json:"v_inf"`

	// XMid, YMid, SMid locate each control point (SMid is the arc length
	// from the trailing edge along the traversal to the midpoint).
	XMid []float64 `json:"x_mid"`
	YMid []float64 `json:"y_mid"`
	SMid []float64 `json:"s_mid"`

	// Gamma is the solved vortex sheet strength per panel (positive
	// clockwise); Cp the pressure coefficient at each control point.
	Gamma []float64 `json:"gamma"`
	Cp    []float64 `json:"cp"`

	// Circulation is Γ = Σ γᵢLᵢ; CL is 2Γ/(V∞·chord).
	Circulation float64 `json:"circulation"`
	CL          float64 `json:"cl"`

	// ConditionNumber is the LU estimate for the solved system;
	// IllConditioned marks results past Options.WarnConditionNumber:
	// usable but suspect.
	ConditionNumber float64 `json:"condition_number"`
	IllConditioned  bool    `json:"ill_conditioned"`
}
