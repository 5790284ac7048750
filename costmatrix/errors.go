// SPDX-License-Identifier: MIT

package costmatrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "costmatrix: ". Call sites wrap these with
// method context; callers match them with errors.Is.
var (
	// ErrOutOfBounds is returned by checked accessors when x or y is >= Size.
	ErrOutOfBounds = errors.New("costmatrix: coordinate out of bounds")

	// ErrLengthMismatch is returned when a flat buffer is not exactly Area long.
	ErrLengthMismatch = errors.New("costmatrix: buffer length mismatch")

	// ErrInvalidCoordinate is returned when decoded sparse data carries a key
	// outside the room or a key that does not parse as a coordinate.
	ErrInvalidCoordinate = errors.New("costmatrix: invalid coordinate")

	// ErrInvalidValue is returned when a decoded cost does not fit in uint8.
	ErrInvalidValue = errors.New("costmatrix: cost value out of range 0..255")

	// ErrMalformed is returned when a binary payload cannot be parsed.
	ErrMalformed = errors.New("costmatrix: malformed payload")

	// ErrNilSource is returned when a nil host source is passed in.
	ErrNilSource = errors.New("costmatrix: nil source")
)

// boundsErrorf wraps ErrOutOfBounds with the accessor name and coordinate.
func boundsErrorf(method string, x, y uint8) error {
	return fmt.Errorf("%s(%d,%d): %w", method, x, y, ErrOutOfBounds)
}

// lengthErrorf wraps ErrLengthMismatch with the expected and observed length.
func lengthErrorf(method string, got int) error {
	return fmt.Errorf("%s: %w: expected %d, got %d", method, ErrLengthMismatch, Area, got)
}
