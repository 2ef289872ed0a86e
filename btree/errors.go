package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an out-of-range iterator or positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrIncompatible signals that Swap cannot exchange two trees because
	// their configurations disagree in a way that would break an invariant
	// (degree mismatch). Assign copies values one by one and returns no error.
	ErrIncompatible = errors.New("btree: incompatible tree configuration")
)
