// SPDX-License-Identifier: MIT

package terrain

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/costgrid/costmatrix"
)

// Mask is a terrain bit mask as stored in the raw buffer.
type Mask uint8

const (
	// Plain is ground with no mask bits set.
	Plain Mask = 0
	// MaskWall marks an impassable wall.
	MaskWall Mask = 1 << 0
	// MaskSwamp marks swamp.
	MaskSwamp Mask = 1 << 1
	// MaskLava marks lava.
	MaskLava Mask = 1 << 2
)

// String names the dominant terrain kind: wall > lava > swamp > plain.
func (m Mask) String() string {
	switch {
	case m&MaskWall != 0:
		return "wall"
	case m&MaskLava != 0:
		return "lava"
	case m&MaskSwamp != 0:
		return "swamp"
	default:
		return "plain"
	}
}

// Terrain is an immutable snapshot of a room's raw terrain buffer.
type Terrain struct {
	raw [costmatrix.Area]uint8 // row-major: y*Size + x
}

// FromBytes copies a raw terrain buffer. Returns ErrLengthMismatch unless
// len(b) == costmatrix.Area.
func FromBytes(b []byte) (*Terrain, error) {
	if len(b) != costmatrix.Area {
		return nil, fmt.Errorf("terrain.FromBytes: %w: expected %d, got %d",
			costmatrix.ErrLengthMismatch, costmatrix.Area, len(b))
	}
	t := &Terrain{}
	copy(t.raw[:], b)

	return t, nil
}

// rawIndex maps (x, y) into the row-major raw buffer.
func rawIndex(x, y uint8) int {
	return int(y)*costmatrix.Size + int(x)
}

// Get returns the mask at (x, y) or ErrOutOfBounds.
func (t *Terrain) Get(x, y uint8) (Mask, error) {
	if x >= costmatrix.Size || y >= costmatrix.Size {
		return 0, fmt.Errorf("Terrain.Get(%d,%d): %w", x, y, costmatrix.ErrOutOfBounds)
	}

	return Mask(t.raw[rawIndex(x, y)]), nil
}

// IsWall reports whether (x, y) is a wall. Out-of-room coordinates count as walls.
func (t *Terrain) IsWall(x, y uint8) bool {
	m, err := t.Get(x, y)

	return err != nil || m&MaskWall != 0
}

// All yields every cell's mask in row-major order (y varies slowest).
func (t *Terrain) All() iter.Seq2[costmatrix.Coord, Mask] {
	return func(yield func(costmatrix.Coord, Mask) bool) {
		for i, v := range t.raw {
			c := costmatrix.Coord{X: uint8(i % costmatrix.Size), Y: uint8(i / costmatrix.Size)}
			if !yield(c, Mask(v)) {
				return
			}
		}
	}
}

// Bytes returns a copy of the raw row-major buffer.
func (t *Terrain) Bytes() []byte {
	out := make([]byte, costmatrix.Area)
	copy(out, t.raw[:])

	return out
}

// CostMatrix bakes the terrain into a new Dense cost matrix.
// Walls and lava get the wall cost, swamp the swamp cost, plain the plain cost.
// Complexity: O(Area).
func (t *Terrain) CostMatrix(opts ...Option) *costmatrix.Dense {
	o := gatherOptions(opts...)
	m := costmatrix.NewDense()
	for c, mask := range t.All() {
		var cost uint8
		switch {
		case mask&(MaskWall|MaskLava) != 0:
			cost = o.wallCost
		case mask&MaskSwamp != 0:
			cost = o.swampCost
		default:
			cost = o.plainCost
		}
		m.SetUnchecked(c.X, c.Y, cost) // c comes from a full-room traversal
	}

	return m
}

// Overlay returns the terrain cost matrix with overrides merged on top.
// Overrides follow Dense.MergeFromSparse: explicit zeros reset a cell to
// the host default.
func (t *Terrain) Overlay(overrides *costmatrix.Sparse, opts ...Option) *costmatrix.Dense {
	m := t.CostMatrix(opts...)
	if overrides != nil {
		m.MergeFromSparse(overrides)
	}

	return m
}
