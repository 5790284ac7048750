// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/costgrid/costmatrix"
	"github.com/katalvlaran/costgrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Connected
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Connected detects an unreachable goal before searching.
// Scenario:
//
//   - A wall runs down column x=25 except for one gap at y=10.
//   - Closing the gap with an obstacle splits the room into two regions.
func ExampleGridGraph_Connected() {
	m := costmatrix.NewDense()
	for y := uint8(0); y < costmatrix.Size; y++ {
		if y != 10 {
			_ = m.Set(25, y, 255)
		}
	}
	from, to := costmatrix.Coord{X: 5, Y: 5}, costmatrix.Coord{X: 45, Y: 45}

	ok, _ := gridgraph.New(m).Connected(from, to)
	fmt.Println("gap open:", ok, "regions:", len(gridgraph.New(m).ConnectedComponents()))

	_ = m.Set(25, 10, 255)
	ok, _ = gridgraph.New(m).Connected(from, to)
	fmt.Println("gap closed:", ok, "regions:", len(gridgraph.New(m).ConnectedComponents()))

	// Output:
	// gap open: true regions: 1
	// gap closed: false regions: 2
}
