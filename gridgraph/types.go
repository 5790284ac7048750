// Package gridgraph defines core types and options for region analysis
// over room cost matrices.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultBlockingCost is the lowest cost treated as impassable.
const DefaultBlockingCost uint8 = 255

// GridOptions contains tunable parameters for region analysis.
type GridOptions struct {
	// BlockingCost is the lowest cell cost considered impassable.
	BlockingCost uint8
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option mutates GridOptions. Invalid values panic.
type Option func(*GridOptions)

// DefaultGridOptions returns BlockingCost=255, Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockingCost: DefaultBlockingCost,
		Conn:         Conn8,
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(fmt.Sprintf("gridgraph: WithConnectivity(%d): unknown connectivity", c))
	}

	return func(o *GridOptions) { o.Conn = c }
}

// WithBlockingCost sets the lowest impassable cost. 0 would block every
// cell, including default-cost ones, and is rejected.
func WithBlockingCost(c uint8) Option {
	if c == 0 {
		panic("gridgraph: WithBlockingCost(0): every cell would block")
	}

	return func(o *GridOptions) { o.BlockingCost = c }
}

// GridGraph is a snapshot of a cost matrix viewed as a graph. Costs never
// change after New; regions are computed lazily and cached.
// Costs are kept x-major exactly like costmatrix.Dense (index = x*50 + y).
// neighborOffsets is precomputed for efficient adjacency lookups; labels
// caches region membership after the first ConnectedComponents call.
type GridGraph struct {
	Conn            Connectivity
	BlockingCost    uint8
	costs           [Area]uint8
	neighborOffsets [][2]int
	comps           [][]int
	labels          []int
}
