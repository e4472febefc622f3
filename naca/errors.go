package naca

import "errors"

var (
	// ErrInvalidCode indicates a designation that is not exactly four digits,
	// has zero thickness, or places camber with p=0 while m>0.
	ErrInvalidCode = errors.New("naca: invalid 4-digit code")
	// ErrChord indicates a non-positive chord length.
	ErrChord = errors.New("naca: chord must be positive")
	// ErrSampleCount indicates fewer than MinSamples requested stations.
	ErrSampleCount = errors.New("naca: sample count must be at least 3")
)
