// SPDX-License-Identifier: MIT

// Package terrain wraps a room's static terrain snapshot and bakes it into
// a costmatrix.Dense the host path search can consume.
//
// What:
//
//   - Terrain holds the host's 2500-byte raw terrain buffer. Each byte is a
//     bit mask: MaskWall (1), MaskSwamp (2), MaskLava (4); 0 is plain ground.
//   - The raw terrain buffer is row-major (index = y*50 + x), unlike cost
//     matrices, which are x-major (index = x*50 + y). Accessors hide this.
//   - CostMatrix turns terrain into movement costs: plain 1, swamp 5,
//     wall and lava 255 by default, tunable with Option values.
//
// Errors are the costmatrix sentinels: ErrLengthMismatch for raw buffers that
// are not exactly 2500 bytes and ErrOutOfBounds for checked accessors.
package terrain
