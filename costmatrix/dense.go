// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"
	"iter"
)

// Dense is a full 50×50 cost grid stored in x-major order (index = x*50 + y).
// Every coordinate always has a value; 0 means "default terrain cost".
// The zero value is an all-zero matrix ready to use.
type Dense struct {
	bits [Area]uint8 // owned exclusively, never handed out by reference
}

// NewDense returns an all-zero Dense matrix.
// Complexity: O(1) (array zeroed by allocation).
func NewDense() *Dense {
	return &Dense{}
}

// DenseFromArray builds a Dense matrix from a buffer whose length is already
// guaranteed by its type, such as a host grid snapshot. It cannot fail.
// Complexity: O(Area) copy.
func DenseFromArray(bits [Area]uint8) *Dense {
	return &Dense{bits: bits}
}

// DenseFromBytes builds a Dense matrix from an untrusted flat buffer.
// The buffer is copied. Returns ErrLengthMismatch unless len(b) == Area.
// Complexity: O(Area).
func DenseFromBytes(b []byte) (*Dense, error) {
	if len(b) != Area {
		return nil, lengthErrorf("DenseFromBytes", len(b))
	}
	m := &Dense{}
	copy(m.bits[:], b)

	return m, nil
}

// Get returns the cost at (x, y) or ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense) Get(x, y uint8) (uint8, error) {
	if x >= Size || y >= Size {
		return 0, boundsErrorf("Dense.Get", x, y)
	}

	return m.bits[int(x)*Size+int(y)], nil
}

// Set stores v at (x, y) or returns ErrOutOfBounds without modifying m.
// Complexity: O(1).
func (m *Dense) Set(x, y, v uint8) error {
	if x >= Size || y >= Size {
		return boundsErrorf("Dense.Set", x, y)
	}
	m.bits[int(x)*Size+int(y)] = v

	return nil
}

// GetCoord is Get addressed by Coord.
func (m *Dense) GetCoord(c Coord) (uint8, error) {
	return m.Get(c.X, c.Y)
}

// SetCoord is Set addressed by Coord.
func (m *Dense) SetCoord(c Coord, v uint8) error {
	return m.Set(c.X, c.Y, v)
}

// All yields every cell in linear index order (x varies slowest).
// Each call starts a fresh traversal. Mutating m while ranging is allowed;
// later cells observe the writes.
func (m *Dense) All() iter.Seq2[Coord, uint8] {
	return func(yield func(Coord, uint8) bool) {
		for i := 0; i < Area; i++ {
			if !yield(CoordFromIndex(i), m.bits[i]) {
				return
			}
		}
	}
}

// Update replaces every cell with fn(coord, current) in linear index order.
// Complexity: O(Area).
func (m *Dense) Update(fn func(c Coord, v uint8) uint8) {
	for i := range m.bits {
		m.bits[i] = fn(CoordFromIndex(i), m.bits[i])
	}
}

// MergeFromDense copies every NON-ZERO cell of src into m.
// Cells where src is zero are left untouched: a dense zero carries no data.
// This is not a full overwrite; use DenseFromArray(src.Array()) for that.
// Complexity: O(Area).
func (m *Dense) MergeFromDense(src *Dense) {
	for i, v := range src.bits {
		if v > 0 {
			m.bits[i] = v
		}
	}
}

// MergeFromSparse copies EVERY stored entry of src into m, explicit zeros
// included, overwriting whatever m held at those coordinates.
// Complexity: O(len(src)).
func (m *Dense) MergeFromSparse(src *Sparse) {
	for c, v := range src.entries {
		m.bits[c.Index()] = v
	}
}

// Bytes returns a fresh Area-long copy of the flat buffer.
// Later writes to m do not show through the returned slice, and vice versa.
func (m *Dense) Bytes() []byte {
	out := make([]byte, Area)
	copy(out, m.bits[:])

	return out
}

// Array returns the flat buffer by value.
func (m *Dense) Array() [Area]uint8 {
	return m.bits
}

// Clone returns an independent deep copy.
func (m *Dense) Clone() *Dense {
	c := *m

	return &c
}

// Equal reports whether both matrices hold identical costs everywhere.
func (m *Dense) Equal(o *Dense) bool {
	return m.bits == o.bits
}

// CountNonZero returns how many cells carry a non-default cost.
func (m *Dense) CountNonZero() int {
	n := 0
	for _, v := range m.bits {
		if v > 0 {
			n++
		}
	}

	return n
}

// String implements fmt.Stringer with a short summary, not the full grid.
func (m *Dense) String() string {
	return fmt.Sprintf("Dense{nonzero: %d/%d}", m.CountNonZero(), Area)
}
