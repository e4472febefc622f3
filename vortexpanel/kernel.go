package vortexpanel

import "math"

// unitVelocityAt returns the velocity (u,v) induced at (px,py) by this
// panel carrying unit clockwise vortex strength, in global coordinates.
//
// Derivation, in the panel's local frame (ξ along the tangent, η along the
// outward side):
//
//	u_ξ = (θ₂ − θ₁) / 2π
//	u_η = −ln(r₁/r₂) / 2π
//
// where r₁,θ₁ are measured from the panel start and r₂,θ₂ from its end.
// self selects the exterior limiting value at the panel's own control
// point, (1/2, 0): the general formula is 0/0 there. Both the normal
// influence assembly and the tangential Cp pass go through this one
// function.
func (p *Panel) unitVelocityAt(px, py float64, self bool) (u, v float64) {
	// Local η axis is the outward side: the tangent rotated +90°,
	// i.e. (−sinφ, cosφ) = (−Nx, −Ny).
	if self {
		return 0.5 * p.Tx, 0.5 * p.Ty
	}

	dx := px - p.X0
	dy := py - p.Y0
	xi := dx*p.Tx + dy*p.Ty
	eta := -(dx*p.Nx + dy*p.Ny)

	theta1 := math.Atan2(eta, xi)
	theta2 := math.Atan2(eta, xi-p.Length)
	r1sq := xi*xi + eta*eta
	r2sq := (xi-p.Length)*(xi-p.Length) + eta*eta

	uXi := (theta2 - theta1) / (2 * math.Pi)
	uEta := -math.Log(r1sq/r2sq) / (4 * math.Pi)

	// Back to global axes: u = uξ·t + uη·(−n).
	u = uXi*p.Tx - uEta*p.Nx
	v = uXi*p.Ty - uEta*p.Ny

	return u, v
}
