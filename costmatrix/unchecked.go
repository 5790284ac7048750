// SPDX-License-Identifier: MIT

package costmatrix

// Fast path for hot pathfinding loops.
//
// Precondition for every function in this file: x < Size and y < Size.
// Nothing here validates that. Violations are NOT reported as errors:
// a large x panics with a runtime index error, while a y >= Size silently
// aliases another cell. Prefer Get/Set unless profiling says otherwise.

// GetUnchecked returns the cost at (x, y) without bounds validation.
func (m *Dense) GetUnchecked(x, y uint8) uint8 {
	return m.bits[int(x)*Size+int(y)]
}

// SetUnchecked stores v at (x, y) without bounds validation.
func (m *Dense) SetUnchecked(x, y, v uint8) {
	m.bits[int(x)*Size+int(y)] = v
}
