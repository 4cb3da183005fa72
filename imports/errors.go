package imports

import "errors"

// Sentinel errors for graph construction and suggestion lookup.
var (
	// ErrNoImport indicates no scanned package binds the requested name.
	ErrNoImport = errors.New("imports: no import statement")

	// ErrEmptyGraph indicates Suggest was called with a nil or empty graph.
	ErrEmptyGraph = errors.New("imports: empty module graph")

	// ErrBadRoot indicates Scan was given a root that is not a readable
	// directory.
	ErrBadRoot = errors.New("imports: unreadable scan root")
)
