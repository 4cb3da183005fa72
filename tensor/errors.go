package tensor

import "errors"

// Sentinel errors for tensor-algebra operations. All are returned, never
// panicked; match with errors.Is.
var (
	// ErrNilModule indicates New was given a nil base module.
	ErrNilModule = errors.New("tensor: nil base module")

	// ErrUnknownIndex indicates a word letter is not in the base-module basis.
	ErrUnknownIndex = errors.New("tensor: letter not in base-module basis")

	// ErrUnsupportedInput indicates FromAny (or Coercion.Apply) received a
	// value fitting none of the supported shapes.
	ErrUnsupportedInput = errors.New("tensor: unsupported input shape")

	// ErrNoCoercion indicates no canonical map exists from the requested
	// source structure into the algebra.
	ErrNoCoercion = errors.New("tensor: no canonical map")
)
