// Package gridgraph provides utilities to treat a room cost matrix as a grid
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected regions of passable cells
//   - Region lookups per coordinate
//
// Cells with cost ≥ BlockingCost are blocked; cells below it are passable.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/costgrid/costmatrix"
)

const (
	// Size is the room edge length.
	Size = costmatrix.Size
	// Area is the number of cells.
	Area = costmatrix.Area
)

// New snapshots m into a GridGraph. Later changes to m are not observed.
// Algorithmic complexity: O(W×H) time and memory.
func New(m *costmatrix.Dense, opts ...Option) *GridGraph {
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if o.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Conn:            o.Conn,
		BlockingCost:    o.BlockingCost,
		costs:           m.Array(),
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the room.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Passable reports whether (x,y) is inside the room and below BlockingCost.
// Complexity: O(1).
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.costs[gg.index(x, y)] < gg.BlockingCost
}

// index maps (x,y) to the x-major index x*Size + y.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return x*Size + y
}

// Coordinate converts an index back to a room coordinate.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) costmatrix.Coord {
	return costmatrix.CoordFromIndex(idx)
}

// RegionOf returns the region index containing c, or -1 for a blocked cell.
// Returns costmatrix.ErrOutOfBounds for coordinates outside the room.
// Complexity: O(1) once regions are computed.
func (gg *GridGraph) RegionOf(c costmatrix.Coord) (int, error) {
	if !c.Valid() {
		return -1, fmt.Errorf("GridGraph.RegionOf(%d,%d): %w", c.X, c.Y, costmatrix.ErrOutOfBounds)
	}
	gg.ConnectedComponents()

	return gg.labels[c.Index()], nil
}

// Connected reports whether a and b are both passable and share a region.
func (gg *GridGraph) Connected(a, b costmatrix.Coord) (bool, error) {
	ra, err := gg.RegionOf(a)
	if err != nil {
		return false, err
	}
	rb, err := gg.RegionOf(b)
	if err != nil {
		return false, err
	}

	return ra >= 0 && ra == rb, nil
}

// Region returns the cells of region i in discovery order.
// Returns ErrComponentIndex if i is out of range.
func (gg *GridGraph) Region(i int) ([]costmatrix.Coord, error) {
	comps := gg.ConnectedComponents()
	if i < 0 || i >= len(comps) {
		return nil, ErrComponentIndex
	}
	out := make([]costmatrix.Coord, len(comps[i]))
	for k, idx := range comps[i] {
		out[k] = gg.Coordinate(idx)
	}

	return out, nil
}

// RegionMask returns a sparse matrix holding cost for every cell of region i,
// ready to merge into a Dense matrix with MergeFromSparse.
func (gg *GridGraph) RegionMask(i int, cost uint8) (*costmatrix.Sparse, error) {
	cells, err := gg.Region(i)
	if err != nil {
		return nil, err
	}
	s := costmatrix.NewSparse()
	for _, c := range cells {
		_ = s.SetCoord(c, cost) // cells come from the room grid
	}

	return s, nil
}
