package dxf

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/dallen2021/AeroStack/naca"
)

// ErrScale indicates a non-positive thickness scale.
var ErrScale = errors.New("dxf: thickness scale must be positive")

// Layer is the DXF layer name the rib contour is written to.
const Layer = "RIB"

// Export generates the geometry for a 4-digit code and emits the closed
// rib contour. Convenience wrapper over ExportGeometry.
//
// Errors: naca.ErrInvalidCode / ErrChord / ErrSampleCount from geometry
// generation, ErrScale for the thickness factor.
func Export(code string, chord, thicknessScale float64, n int) ([]byte, error) {
	parsed, err := naca.ParseCode(code)
	if err != nil {
		return nil, err
	}
	geom, err := naca.Generate(parsed, chord, n)
	if err != nil {
		return nil, err
	}

	return ExportGeometry(geom, thicknessScale)
}

// ExportGeometry emits geom as one closed POLYLINE, thickness scaled
// about the camber line. The contour runs the upper surface forward
// (leading edge to trailing edge), then the lower surface reversed; both
// surfaces meet at the leading edge, so the loop's first and last
// vertices coincide and the vertex count is exactly 2·N.
func ExportGeometry(geom *naca.Geometry, thicknessScale float64) ([]byte, error) {
	if thicknessScale <= 0 || math.IsNaN(thicknessScale) || math.IsInf(thicknessScale, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrScale, thicknessScale)
	}

	n := geom.N()
	var buf bytes.Buffer
	writeHeader(&buf)

	// POLYLINE with vertices-follow (66) and closed (70) flags.
	tag(&buf, 0, "POLYLINE")
	tag(&buf, 8, Layer)
	tag(&buf, 66, "1")
	tag(&buf, 70, "1")

	// Upper surface forward.
	for i := 0; i < n; i++ {
		yu := geom.Camber[i] + thicknessScale*(geom.Yu[i]-geom.Camber[i])
		vertex(&buf, geom.X[i], yu)
	}
	// Lower surface reversed, closing back onto the leading edge.
	for i := n - 1; i >= 0; i-- {
		yl := geom.Camber[i] + thicknessScale*(geom.Yl[i]-geom.Camber[i])
		vertex(&buf, geom.X[i], yl)
	}

	tag(&buf, 0, "SEQEND")
	tag(&buf, 0, "ENDSEC")
	tag(&buf, 0, "EOF")

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer) {
	tag(buf, 0, "SECTION")
	tag(buf, 2, "HEADER")
	tag(buf, 9, "$ACADVER")
	tag(buf, 1, "AC1009")
	tag(buf, 0, "ENDSEC")
	tag(buf, 0, "SECTION")
	tag(buf, 2, "ENTITIES")
}

// tag writes one group-code/value pair.
func tag(buf *bytes.Buffer, code int, value string) {
	fmt.Fprintf(buf, "%d\n%s\n", code, value)
}

// vertex writes one VERTEX entity at (x, y).
func vertex(buf *bytes.Buffer, x, y float64) {
	tag(buf, 0, "VERTEX")
	tag(buf, 8, Layer)
	fmt.Fprintf(buf, "10\n%.6f\n20\n%.6f\n30\n0.0\n", x, y)
}
