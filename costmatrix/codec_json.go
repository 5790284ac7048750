// SPDX-License-Identifier: MIT

package costmatrix

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes m as an array of exactly Area integers in index order.
// A plain []byte would encode as base64, which the host cannot read.
func (m *Dense) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, Area*2+2)
	out = append(out, '[')
	for i, v := range m.bits {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	out = append(out, ']')

	return out, nil
}

// UnmarshalJSON decodes an array of exactly Area integers in 0..255.
// On any error m is left unchanged.
func (m *Dense) UnmarshalJSON(data []byte) error {
	var vals []int
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("Dense.UnmarshalJSON: %w", err)
	}
	if len(vals) != Area {
		return lengthErrorf("Dense.UnmarshalJSON", len(vals))
	}
	var bits [Area]uint8
	for i, v := range vals {
		b, err := toCost(v)
		if err != nil {
			return fmt.Errorf("Dense.UnmarshalJSON: index %d: %w", i, err)
		}
		bits[i] = b
	}
	m.bits = bits

	return nil
}

// MarshalJSON encodes s as an object keyed by "x,y". Explicit zeros are kept.
// Keys come out sorted (encoding/json sorts map keys).
func (s *Sparse) MarshalJSON() ([]byte, error) {
	obj := make(map[string]uint8, len(s.entries))
	for c, v := range s.entries {
		obj[c.String()] = v
	}

	return json.Marshal(obj)
}

// UnmarshalJSON decodes an object keyed by "x,y". Any key outside the room
// or not in canonical form fails the whole decode with ErrInvalidCoordinate;
// s is left unchanged. A JSON null is a no-op.
func (s *Sparse) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var obj map[string]int
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("Sparse.UnmarshalJSON: %w", err)
	}
	entries, err := entriesFromKeyed(obj)
	if err != nil {
		return fmt.Errorf("Sparse.UnmarshalJSON: %w", err)
	}
	s.entries = entries

	return nil
}

// entriesFromKeyed validates a decoded "x,y" → cost object.
func entriesFromKeyed(obj map[string]int) (map[Coord]uint8, error) {
	entries := make(map[Coord]uint8, len(obj))
	for k, v := range obj {
		c, err := ParseCoord(k)
		if err != nil {
			return nil, err
		}

		b, err := toCost(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		entries[c] = b
	}

	return entries, nil
}

// toCost narrows a decoded integer to a cost byte.
func toCost(v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidValue, v)
	}

	return uint8(v), nil
}
