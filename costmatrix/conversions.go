// SPDX-License-Identifier: MIT

package costmatrix

// ToSparse converts m into a new Sparse matrix holding its non-zero cells.
// Zero cells are dropped; they read back as 0 anyway.
// Complexity: O(Area).
func (m *Dense) ToSparse() *Sparse {
	s := NewSparse()
	s.MergeFromDense(m)

	return s
}

// ToDense converts s into a new Dense matrix. Absent coordinates become 0.
// Keys are trusted to be valid: Sparse never admits any other.
// Complexity: O(Area + len(s)).
func (s *Sparse) ToDense() *Dense {
	m := NewDense()
	m.MergeFromSparse(s)

	return m
}
