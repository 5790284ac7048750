// SPDX-License-Identifier: MIT

// Package costmatrix holds per-room movement costs for the host pathfinder.
//
// What:
//
//   - Dense stores one uint8 cost for each of the 50×50 room coordinates in a
//     flat [2500]uint8, addressed as index = x*50 + y.
//   - Sparse stores only explicitly set coordinates in a map; an absent key
//     reads as 0.
//   - Both forms convert into each other, merge from each other, and encode to
//     JSON, YAML and a compact protobuf-wire binary form.
//
// Merge semantics (asymmetric, read carefully):
//
//   - MergeFromDense copies only NON-ZERO cells of the source. A zero in a
//     dense source means "no data" and never clears the destination.
//   - MergeFromSparse copies EVERY stored entry of the source, explicit zeros
//     included. A stored zero in a sparse source is an assertion and does
//     overwrite the destination.
//
// Bounds policy:
//
//   - Checked accessors (Get, Set, GetCoord, SetCoord) return ErrOutOfBounds.
//   - Bulk loaders fed by external data (SparseFromMap) silently drop
//     out-of-range coordinates.
//   - Decoders fail whole: ErrLengthMismatch for dense payloads of the wrong
//     size, ErrInvalidCoordinate for sparse keys outside the room.
//   - GetUnchecked / SetUnchecked skip validation; see unchecked.go.
//
// Concurrency: none. A matrix is owned by one caller at a time; clone it to
// hand a copy to another goroutine.
//
// Complexity:
//
//   - Dense Get/Set: O(1). Conversion, merge, encode: O(2500).
//   - Sparse Get/Set: O(1) average. Iteration, merge, encode: O(entries).
package costmatrix
