// Package dxf exports airfoil rib contours as minimal DXF documents for
// downstream cutting and CAM tooling.
//
// The exported entity is a single closed POLYLINE tracing the upper
// surface leading-to-trailing edge, then the lower surface back, with the
// first and last vertices coincident. Rib thickness can be exaggerated or
// reduced about the camber line via a thickness scale, which leaves the
// planform (chordwise extent) untouched:
//
//	yu' = yc + scale·(yu − yc)
//	yl' = yc + scale·(yl − yc)
//
// The document is DXF R12 ASCII — a flat stream of group-code/value
// pairs — which every cutter toolchain ingests.
package dxf
