// SPDX-License-Identifier: MIT

package terrain

import "fmt"

// Defaults mirror the host path search defaults.
const (
	// DefaultPlainCost is the cost of plain ground.
	DefaultPlainCost uint8 = 1

	// DefaultSwampCost is the cost of swamp.
	DefaultSwampCost uint8 = 5

	// DefaultWallCost marks walls (and lava) as impassable.
	DefaultWallCost uint8 = 255
)

// Options holds the resolved cost table. Fields are unexported; build one
// with Option values passed to CostMatrix.
type Options struct {
	plainCost uint8
	swampCost uint8
	wallCost  uint8
}

// Option mutates Options. Invalid values panic: they are programmer errors.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		plainCost: DefaultPlainCost,
		swampCost: DefaultSwampCost,
		wallCost:  DefaultWallCost,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPlainCost sets the plain ground cost. 0 leaves plain cells at the
// host default. 255 is rejected: plain ground must stay walkable.
func WithPlainCost(c uint8) Option {
	if c == 255 {
		panic(fmt.Sprintf("terrain: WithPlainCost(%d): plain ground cannot be impassable", c))
	}

	return func(o *Options) { o.plainCost = c }
}

// WithSwampCost sets the swamp cost. 255 is rejected for the same reason.
func WithSwampCost(c uint8) Option {
	if c == 255 {
		panic(fmt.Sprintf("terrain: WithSwampCost(%d): swamp cannot be impassable", c))
	}

	return func(o *Options) { o.swampCost = c }
}

// WithWallCost sets the cost written for wall and lava cells. 0 is rejected:
// it would read as "default cost" and let the search walk through walls.
func WithWallCost(c uint8) Option {
	if c == 0 {
		panic("terrain: WithWallCost(0): walls need a non-zero cost")
	}

	return func(o *Options) { o.wallCost = c }
}
