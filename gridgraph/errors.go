package gridgraph

import "errors"

var (
	// ErrComponentIndex indicates a requested region index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)
