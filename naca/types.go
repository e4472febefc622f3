// Package naca defines the validated code and geometry value types.
package naca

import "encoding/json"

// MinSamples is the smallest usable number of chordwise stations.
const MinSamples = 3

// Code is the parsed, validated form of a NACA 4-digit designation.
// The zero value is not valid; obtain a Code through ParseCode.
//
// Fields are unexported so invariants established at parse time
// (four digits, non-zero thickness, p=0 only when m=0) cannot be broken.
type Code struct {
	digits string
	m      float64 // max camber fraction of chord (digit 1 / 100)
	p      float64 // camber position fraction of chord (digit 2 / 10)
	t      float64 // thickness fraction of chord (digits 3-4 / 100)
}

// String returns the original four-digit designation.
func (c Code) String() string { return c.digits }

// MaxCamber returns the maximum camber as a fraction of chord.
func (c Code) MaxCamber() float64 { return c.m }

// CamberPosition returns the chordwise position of maximum camber
// as a fraction of chord.
func (c Code) CamberPosition() float64 { return c.p }

// Thickness returns the maximum thickness as a fraction of chord.
func (c Code) Thickness() float64 { return c.t }

// Symmetric reports whether the section carries no camber.
func (c Code) Symmetric() bool { return c.m == 0 }

// MarshalJSON encodes the code as its four-digit string.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.digits)
}

// UnmarshalJSON decodes and re-validates a four-digit string, so a Code
// cannot enter the program bypassing ParseCode.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCode(s)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Metrics are display-oriented geometric percentages derived from a Code.
type Metrics struct {
	MaxCamberPct  float64 `json:"max_camber_pct"`
	MaxCamberXPct float64 `json:"max_camber_x_pct"`
	ThicknessPct  float64 `json:"max_thickness_pct"`
}

// Metrics returns the section's geometric percentages.
func (c Code) Metrics() Metrics {
	return Metrics{
		MaxCamberPct:  c.m * 100,
		MaxCamberXPct: c.p * 100,
		ThicknessPct:  c.t * 100,
	}
}

// Geometry is an immutable discretized airfoil surface.
//
// Invariants (established by Generate, relied on downstream):
//   - len(X) == len(Yu) == len(Yl) == len(Camber) ≥ MinSamples
//   - X is non-decreasing with X[0] = 0 and X[len(X)-1] = Chord
//   - Yu[i] ≥ Yl[i] for every station
type Geometry struct {
	Code  Code      `json:"code"`
	Chord float64   `json:"chord"`
	X     []float64 `json:"x"`
	Yu    []float64 `json:"yu"`
	Yl    []float64 `json:"yl"`
	// Camber is the mean line yc at each station; Yu-Camber equals
	// Camber-Yl by construction.
	Camber []float64 `json:"camber"`
}

// N returns the number of chordwise stations.
func (g *Geometry) N() int { return len(g.X) }
