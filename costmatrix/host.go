// SPDX-License-Identifier: MIT

package costmatrix

// Source is the host side of the dense byte boundary: anything that can
// hand over a snapshot of its raw cost buffer (index = x*50 + y).
// Implementations may return their own storage; it is copied on ingestion.
type Source interface {
	Bits() []byte
}

// The nil guards below catch only an untyped nil Source. A typed nil (for
// example a nil *Dense stored in the interface) reaches Bits and panics there.

// DenseFromSource snapshots a host matrix into a new Dense matrix.
// Hosts are expected to always report Area bytes; anything else is surfaced
// as ErrLengthMismatch rather than trusted.
func DenseFromSource(src Source) (*Dense, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return DenseFromBytes(src.Bits())
}

// SparseFromSource snapshots a host matrix into a new Sparse matrix holding
// only its non-zero cells.
func SparseFromSource(src Source) (*Sparse, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return SparseFromBytes(src.Bits())
}

// Bits lets a Dense matrix act as a Source. The slice is a fresh copy.
func (m *Dense) Bits() []byte {
	return m.Bytes()
}

// RoomCallback is the cost callback a path search invokes per room.
// It receives a mutable matrix for roomName and returns the matrix to use;
// ok == false means "use default costs for this room".
type RoomCallback func(roomName string, m *Dense) (result *Dense, ok bool)

// DefaultRoomCallback never overrides costs.
func DefaultRoomCallback(string, *Dense) (*Dense, bool) {
	return nil, false
}

// SparseCallback adapts a callback that prefers to work with overrides in
// sparse form. The returned overrides are merged over the host matrix with
// MergeFromSparse, so explicit zeros clear host costs.
func SparseCallback(fn func(roomName string) (*Sparse, bool)) RoomCallback {
	return func(roomName string, m *Dense) (*Dense, bool) {
		overrides, ok := fn(roomName)
		if !ok || overrides == nil {
			return nil, false
		}
		out := m.Clone()
		out.MergeFromSparse(overrides)

		return out, true
	}
}
