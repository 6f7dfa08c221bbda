package transform

import "errors"

// Errors returned by transform functions.
var (
	ErrNotPowerOfTwo = errors.New("transform: length must be a power of two")
	ErrEmptySequence = errors.New("transform: empty sequence")
)
