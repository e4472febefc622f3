package vortexpanel

import "errors"

var (
	// ErrValidation indicates inputs outside the solvable envelope:
	// panel count outside [1,MaxPanels], non-positive freestream speed,
	// or degenerate (near zero-length) panel geometry.
	ErrValidation = errors.New("vortexpanel: invalid solver input")
	// ErrSingularSystem indicates the influence matrix is numerically
	// singular or conditioned beyond Options.MaxConditionNumber.
	ErrSingularSystem = errors.New("vortexpanel: influence matrix is singular or hopelessly ill-conditioned")
)
