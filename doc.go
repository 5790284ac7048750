// Package costgrid is the local cost-matrix toolkit for a room-based game
// engine whose path search consumes 50×50 grids of movement costs.
//
// What is costgrid?
//
//	Pure-Go building blocks for the data a path search callback produces:
//		• costmatrix/ — Dense and Sparse cost matrices, conversions, merges,
//		                JSON / YAML / binary codecs, host boundary types
//		• terrain/    — raw terrain snapshots baked into cost matrices
//		• gridgraph/  — passable-region analysis over a cost matrix
//
// Dense vs Sparse:
//
//	Dense keeps all 2500 cells (index = x*50 + y) and is what the host reads.
//	Sparse keeps only the cells you set and is what you persist between ticks.
//	Merging a Dense source ignores its zeros; merging a Sparse source copies
//	its explicit zeros. See package costmatrix for the full contract.
//
// Quick ASCII example (3×3 corner of a room, costs):
//
//	y=0:   0   0 255
//	y=1:   0   5 255
//	y=2:   1   1   0
//
// roads cost 1, swamp 5, walls 255, and 0 means "terrain default".
//
//	go get github.com/katalvlaran/costgrid/costmatrix
package costgrid
