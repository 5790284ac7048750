// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Binary form, protobuf wire compatible:
//
//	message DenseCostMatrix  { bytes bits = 1; }           // exactly 2500 bytes
//	message SparseCostMatrix { repeated Entry entries = 1; }
//	message Entry            { uint32 x = 1; uint32 y = 2; uint32 cost = 3; }
//
// Unknown fields are skipped. Sparse entries are written in index order and
// always carry all three fields so explicit zeros survive.
const (
	fieldBits    protowire.Number = 1
	fieldEntries protowire.Number = 1
	fieldX       protowire.Number = 1
	fieldY       protowire.Number = 2
	fieldCost    protowire.Number = 3
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Dense) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, Area+4)
	out = protowire.AppendTag(out, fieldBits, protowire.BytesType)
	out = protowire.AppendBytes(out, m.bits[:])

	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// A missing or wrongly sized bits field yields ErrLengthMismatch.
// On any error m is left unchanged.
func (m *Dense) UnmarshalBinary(data []byte) error {
	var bits []byte
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == fieldBits && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			bits = v

			return n, nil
		}

		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return fmt.Errorf("Dense.UnmarshalBinary: %w", err)
	}
	if len(bits) != Area {
		return lengthErrorf("Dense.UnmarshalBinary", len(bits))
	}
	copy(m.bits[:], bits)

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Sparse) MarshalBinary() ([]byte, error) {
	var out, entry []byte
	for c, v := range s.Sorted() {
		entry = entry[:0]
		entry = protowire.AppendTag(entry, fieldX, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(c.X))
		entry = protowire.AppendTag(entry, fieldY, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(c.Y))
		entry = protowire.AppendTag(entry, fieldCost, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(v))

		out = protowire.AppendTag(out, fieldEntries, protowire.BytesType)
		out = protowire.AppendBytes(out, entry)
	}

	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Any entry outside the room fails the whole decode with ErrInvalidCoordinate;
// s is left unchanged.
func (s *Sparse) UnmarshalBinary(data []byte) error {
	entries := make(map[Coord]uint8)
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != fieldEntries || typ != protowire.BytesType {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		raw, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		c, v, err := decodeEntry(raw)
		if err != nil {
			return 0, err
		}
		entries[c] = v

		return n, nil
	})
	if err != nil {
		return fmt.Errorf("Sparse.UnmarshalBinary: %w", err)
	}
	s.entries = entries

	return nil
}

// decodeEntry parses one Entry message and validates it.
func decodeEntry(raw []byte) (Coord, uint8, error) {
	var x, y, cost uint64
	err := walkFields(raw, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType || num < fieldX || num > fieldCost {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		v, n := protowire.ConsumeVarint(b)
		switch num {
		case fieldX:
			x = v
		case fieldY:
			y = v
		case fieldCost:
			cost = v
		}

		return n, nil
	})
	if err != nil {
		return Coord{}, 0, err
	}
	if x >= Size || y >= Size {
		return Coord{}, 0, fmt.Errorf("entry (%d,%d): %w", x, y, ErrInvalidCoordinate)
	}
	if cost > 255 {
		return Coord{}, 0, fmt.Errorf("entry (%d,%d): %w: %d", x, y, ErrInvalidValue, cost)
	}

	return Coord{X: uint8(x), Y: uint8(y)}, uint8(cost), nil
}

// walkFields iterates top-level fields of a message. fn consumes the field
// value starting at b and returns the number of bytes used (negative on a
// wire error, as protowire does).
func walkFields(data []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]
		m, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if m < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(m))
		}
		data = data[m:]
	}

	return nil
}
