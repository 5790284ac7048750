// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Size is the room edge length. Valid coordinates are 0..Size-1 on both axes.
	Size = 50

	// Area is the number of cells in a room and the exact length of every
	// dense buffer exchanged with the host.
	Area = Size * Size
)

// Coord is an in-room coordinate. The zero value is (0,0).
type Coord struct {
	X, Y uint8
}

// Valid reports whether both axes lie in [0, Size).
func (c Coord) Valid() bool {
	return c.X < Size && c.Y < Size
}

// Index returns the dense linear index x*Size + y.
// The result is only meaningful for valid coordinates.
func (c Coord) Index() int {
	return int(c.X)*Size + int(c.Y)
}

// CoordFromIndex inverts Index. idx must be in [0, Area).
func CoordFromIndex(idx int) Coord {
	return Coord{X: uint8(idx / Size), Y: uint8(idx % Size)}
}

// String formats the coordinate as "x,y"; this is also the JSON/YAML key form.
func (c Coord) String() string {
	return strconv.Itoa(int(c.X)) + "," + strconv.Itoa(int(c.Y))
}

// ParseCoord parses the "x,y" form produced by String. Only the canonical
// spelling is accepted (no spaces, no leading zeros), so each coordinate has
// exactly one key. Anything else yields ErrInvalidCoordinate.
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("ParseCoord(%q): %w", s, ErrInvalidCoordinate)
	}
	x, errX := strconv.ParseUint(xs, 10, 8)
	y, errY := strconv.ParseUint(ys, 10, 8)
	if errX != nil || errY != nil {
		return Coord{}, fmt.Errorf("ParseCoord(%q): %w", s, ErrInvalidCoordinate)
	}
	c := Coord{X: uint8(x), Y: uint8(y)}
	if !c.Valid() || c.String() != s {
		return Coord{}, fmt.Errorf("ParseCoord(%q): %w", s, ErrInvalidCoordinate)
	}

	return c, nil
}
