// Package gridgraph treats a room cost matrix as a grid graph of passable
// cells, enabling region ("island") analysis before a path search runs.
//
// What:
//
//   - GridGraph snapshots a *costmatrix.Dense with a tunable BlockingCost.
//   - Cells whose cost is below BlockingCost are passable; the rest block.
//   - Identifies connected regions of passable cells under Conn4 or Conn8.
//   - Answers "which region is (x,y) in" and "are a and b connected".
//
// Why:
//
//   - Skip a search that cannot succeed: unreachable goals are detected
//     in O(W×H) instead of exhausting the search's operation budget.
//   - Spot enclosed pockets created by walls or placed obstacles.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory (snapshot copy).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - RegionOf/Connected:  O(1) after the first ConnectedComponents call.
//
// Options:
//
//   - WithConnectivity(Conn4 | Conn8), default Conn8 (rooms allow diagonal moves).
//   - WithBlockingCost(c), default 255.
//
// Errors:
//
//   - ErrComponentIndex: requested region index out of range.
//   - costmatrix.ErrOutOfBounds: coordinate outside the room.
package gridgraph
