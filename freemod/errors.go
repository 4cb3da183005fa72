package freemod

import "errors"

// Sentinel errors for free-module operations. All are returned, never
// panicked; wrap with fmt.Errorf("...: %w", Err...) when adding context and
// match with errors.Is.
var (
	// ErrNoBasis indicates a module was requested over an empty index set.
	ErrNoBasis = errors.New("freemod: empty basis")

	// ErrDuplicateIndex indicates the index set passed to New contains a repeat.
	ErrDuplicateIndex = errors.New("freemod: duplicate basis index")

	// ErrUnknownIndex indicates a referenced index is not in the module's basis.
	ErrUnknownIndex = errors.New("freemod: index not in basis")

	// ErrNilModule indicates a nil *Module was passed where a module is required.
	ErrNilModule = errors.New("freemod: nil module")

	// ErrModuleMismatch indicates an operation mixed elements or maps of
	// incompatible modules (e.g. composing morphisms whose ends do not meet).
	ErrModuleMismatch = errors.New("freemod: module mismatch")

	// ErrArityMismatch indicates a tensor-product operation received the wrong
	// number of factors for the product's arity.
	ErrArityMismatch = errors.New("freemod: wrong number of tensor factors")
)
