package ir

import "errors"

var (
	// ErrKeyType reports a mapping key that is not a string.  Trees
	// built through the parser cannot trip it; trees built by hand or
	// through FromAny can.
	ErrKeyType = errors.New("mapping keys must be strings")
)
