package analysis

import (
	"time"

	"github.com/dallen2021/AeroStack/naca"
	"github.com/dallen2021/AeroStack/thinairfoil"
	"github.com/dallen2021/AeroStack/vortexpanel"
)

// Request defaults, applied when the corresponding field is zero.
const (
	DefaultChord   = 1.0
	DefaultNPoints = 200
	DefaultVInf    = 1.0
	DefaultPanels  = 80
)

// bytesPerElement is the size of the float64 numeric type used throughout.
const bytesPerElement = 8

// auxArraysPerPanel counts the persistent O(P) float64 arrays behind one
// solve: mesh endpoints and derived panel quantities, the right-hand side,
// γ, Cp, tangential velocities and midpoint coordinates (≈12 per panel).
const auxArraysPerPanel = 12

// Request describes one analysis. Zero-valued numeric fields take the
// documented defaults; Code is mandatory unless Geometry is supplied with
// a valid embedded code.
type Request struct {
	// Code is the NACA 4-digit designation.
	Code string
	// Geometry, when non-nil, skips generation and analyzes the supplied
	// surface (its embedded code still drives the thin-airfoil solve).
	Geometry *naca.Geometry

	Chord    float64
	NPoints  int
	AlphaDeg float64
	VInf     float64
	Panels   int

	// CurveAlphaDeg optionally requests a thin-airfoil CL curve.
	CurveAlphaDeg []float64

	// Vortex selects non-default solver thresholds; nil keeps defaults.
	Vortex *vortexpanel.Options
}

// withDefaults returns a copy with zero fields resolved.
func (r Request) withDefaults() Request {
	if r.Chord == 0 {
		r.Chord = DefaultChord
	}
	if r.NPoints == 0 {
		r.NPoints = DefaultNPoints
	}
	if r.VInf == 0 {
		r.VInf = DefaultVInf
	}
	if r.Panels == 0 {
		r.Panels = DefaultPanels
	}

	return r
}

// Metrics captures the measurement wrapper around one solve.
type Metrics struct {
	// SolveMillis is the wall-clock duration of the full analysis.
	SolveMillis float64 `json:"solve_ms"`
	// MemoryBytes estimates the solve footprint: P² matrix elements plus
	// the O(P) auxiliary arrays, at 8 bytes per float64.
	MemoryBytes int64 `json:"memory_bytes"`
	// CLErrorBaseline is |CL_vortex − CL_thin|, the cross-model
	// self-consistency gap.
	CLErrorBaseline float64 `json:"cl_error_baseline"`
}

// Result is the immutable aggregate of one analysis request.
type Result struct {
	Code     string  `json:"code"`
	Chord    float64 `json:"chord"`
	AlphaDeg float64 `json:"alpha_deg"`
	VInf     float64 `json:"v_inf"`

	Geometry *naca.Geometry        `json:"geometry"`
	Thin     thinairfoil.Result    `json:"thin_airfoil"`
	Panel    *vortexpanel.Solution `json:"vortex_panel"`
	Metrics  Metrics               `json:"metrics"`
}

// Analyze runs both solvers over one geometry and collects metrics.
//
// Stages: resolve defaults → generate (or adopt) geometry → thin-airfoil
// solve → mesh + vortex-panel solve → measure. Purely functional; see the
// package documentation for the memoization stance.
//
// Errors: naca.ErrInvalidCode, naca.ErrChord, naca.ErrSampleCount,
// thinairfoil option errors, vortexpanel.ErrValidation,
// vortexpanel.ErrSingularSystem.
func Analyze(req Request) (*Result, error) {
	req = req.withDefaults()
	start := time.Now()

	geom := req.Geometry
	if geom == nil {
		code, err := naca.ParseCode(req.Code)
		if err != nil {
			return nil, err
		}
		geom, err = naca.Generate(code, req.Chord, req.NPoints)
		if err != nil {
			return nil, err
		}
	}

	thinOpts := thinairfoil.DefaultOptions()
	thinOpts.CurveAlphaDeg = req.CurveAlphaDeg
	thin, err := thinairfoil.Solve(geom.Code, req.AlphaDeg, &thinOpts)
	if err != nil {
		return nil, err
	}

	mesh, err := vortexpanel.BuildMesh(geom, req.Panels)
	if err != nil {
		return nil, err
	}
	sol, err := vortexpanel.Solve(mesh, req.AlphaDeg, req.VInf, req.Vortex)
	if err != nil {
		return nil, err
	}

	p := int64(mesh.P())
	clErr := sol.CL - thin.CL
	if clErr < 0 {
		clErr = -clErr
	}

	return &Result{
		Code:     geom.Code.String(),
		Chord:    geom.Chord,
		AlphaDeg: req.AlphaDeg,
		VInf:     req.VInf,
		Geometry: geom,
		Thin:     thin,
		Panel:    sol,
		Metrics: Metrics{
			SolveMillis:     float64(time.Since(start)) / float64(time.Millisecond),
			MemoryBytes:     bytesPerElement * (p*p + auxArraysPerPanel*p),
			CLErrorBaseline: clErr,
		},
	}, nil
}
