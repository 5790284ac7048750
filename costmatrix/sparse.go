// SPDX-License-Identifier: MIT

package costmatrix

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Sparse stores costs only for explicitly set coordinates.
// An absent coordinate reads as 0. An explicitly stored 0 is kept: it shows up
// in All and Len, and MergeFromSparse propagates it.
//
// Every key is a valid Coord. All entry points enforce that (Set validates,
// SparseFromMap filters, decoders reject), so conversions trust it.
type Sparse struct {
	entries map[Coord]uint8
}

// NewSparse returns an empty Sparse matrix.
func NewSparse() *Sparse {
	return &Sparse{entries: make(map[Coord]uint8)}
}

// SparseFromMap builds a Sparse matrix from externally sourced entries.
// Entries whose coordinate lies outside the room are silently dropped; the
// rest are copied, so later changes to src do not affect the result.
// Complexity: O(len(src)).
func SparseFromMap(src map[Coord]uint8) *Sparse {
	s := &Sparse{entries: make(map[Coord]uint8, len(src))}
	for c, v := range src {
		if !c.Valid() {
			continue // boundary input; drop instead of failing the whole load
		}
		s.entries[c] = v
	}

	return s
}

// SparseFromBytes builds a Sparse matrix from a flat Area-long buffer.
// Every non-zero byte becomes an entry at its linearized coordinate; zero
// bytes are omitted. Returns ErrLengthMismatch unless len(b) == Area.
// Complexity: O(Area).
func SparseFromBytes(b []byte) (*Sparse, error) {
	if len(b) != Area {
		return nil, lengthErrorf("SparseFromBytes", len(b))
	}
	s := NewSparse()
	for i, v := range b {
		if v > 0 {
			s.entries[CoordFromIndex(i)] = v
		}
	}

	return s, nil
}

// lazyInit makes the zero value usable.
func (s *Sparse) lazyInit() {
	if s.entries == nil {
		s.entries = make(map[Coord]uint8)
	}
}

// Get returns the effective cost at (x, y): the stored value, or 0 if absent.
// Returns ErrOutOfBounds for coordinates outside the room.
// Complexity: O(1) average.
func (s *Sparse) Get(x, y uint8) (uint8, error) {
	if x >= Size || y >= Size {
		return 0, boundsErrorf("Sparse.Get", x, y)
	}

	return s.entries[Coord{X: x, Y: y}], nil
}

// Set stores v at (x, y), including an explicit 0.
// Returns ErrOutOfBounds without modifying s for coordinates outside the room.
// Complexity: O(1) average.
func (s *Sparse) Set(x, y, v uint8) error {
	if x >= Size || y >= Size {
		return boundsErrorf("Sparse.Set", x, y)
	}
	s.lazyInit()
	s.entries[Coord{X: x, Y: y}] = v

	return nil
}

// GetCoord is Get addressed by Coord.
func (s *Sparse) GetCoord(c Coord) (uint8, error) {
	return s.Get(c.X, c.Y)
}

// SetCoord is Set addressed by Coord.
func (s *Sparse) SetCoord(c Coord, v uint8) error {
	return s.Set(c.X, c.Y, v)
}

// Has reports whether (x, y) carries an explicit entry, zero or not.
func (s *Sparse) Has(x, y uint8) bool {
	_, ok := s.entries[Coord{X: x, Y: y}]

	return ok
}

// Delete removes the entry at (x, y) so it reads as absent again.
// Returns ErrOutOfBounds for coordinates outside the room.
func (s *Sparse) Delete(x, y uint8) error {
	if x >= Size || y >= Size {
		return boundsErrorf("Sparse.Delete", x, y)
	}
	delete(s.entries, Coord{X: x, Y: y})

	return nil
}

// Len returns the number of stored entries, explicit zeros included.
func (s *Sparse) Len() int {
	return len(s.entries)
}

// All yields stored entries only, in no defined order.
// Each call starts a fresh traversal.
func (s *Sparse) All() iter.Seq2[Coord, uint8] {
	return func(yield func(Coord, uint8) bool) {
		for c, v := range s.entries {
			if !yield(c, v) {
				return
			}
		}
	}
}

// Sorted yields stored entries in linear index order. Use it where output
// must be deterministic (encoding, tests, diffs).
// Complexity: O(n log n).
func (s *Sparse) Sorted() iter.Seq2[Coord, uint8] {
	keys := slices.SortedFunc(maps.Keys(s.entries), func(a, b Coord) int {
		return cmp.Compare(a.Index(), b.Index())
	})

	return func(yield func(Coord, uint8) bool) {
		for _, c := range keys {
			if !yield(c, s.entries[c]) {
				return
			}
		}
	}
}

// Update replaces every stored value with fn(coord, current).
// Absent coordinates are not visited.
func (s *Sparse) Update(fn func(c Coord, v uint8) uint8) {
	for c, v := range s.entries {
		s.entries[c] = fn(c, v)
	}
}

// MergeFromDense inserts every NON-ZERO cell of src, overwriting existing
// entries at those coordinates. Zero cells of src are not inserted and do
// not clear anything in s.
// Complexity: O(Area).
func (s *Sparse) MergeFromDense(src *Dense) {
	s.lazyInit()
	for i, v := range src.bits {
		if v > 0 {
			s.entries[CoordFromIndex(i)] = v
		}
	}
}

// MergeFromSparse inserts every stored entry of src, explicit zeros
// included, overwriting existing entries at those coordinates.
// Complexity: O(len(src)).
func (s *Sparse) MergeFromSparse(src *Sparse) {
	s.lazyInit()
	maps.Copy(s.entries, src.entries)
}

// Clone returns an independent deep copy.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{entries: maps.Clone(s.entries)}
}

// Equal reports whether both matrices store exactly the same entries.
// An explicit zero and an absent key are NOT equal here; compare ToDense
// results for effective-value equality.
func (s *Sparse) Equal(o *Sparse) bool {
	return maps.Equal(s.entries, o.entries)
}

// String implements fmt.Stringer with a short summary.
func (s *Sparse) String() string {
	return fmt.Sprintf("Sparse{entries: %d}", len(s.entries))
}
