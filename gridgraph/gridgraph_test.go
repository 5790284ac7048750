package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/costgrid/costmatrix"
	"github.com/katalvlaran/costgrid/gridgraph"
	"github.com/stretchr/testify/require"
)

// wallColumn returns a matrix with a full wall at x = col.
func wallColumn(col uint8) *costmatrix.Dense {
	m := costmatrix.NewDense()
	for y := uint8(0); y < costmatrix.Size; y++ {
		_ = m.Set(col, y, 255)
	}

	return m
}

//----------------------------------------------------------------------------//
// New, InBounds and Passable Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on the fixed room grid.
func TestInBounds(t *testing.T) {
	gg := gridgraph.New(costmatrix.NewDense())

	valid := [][2]int{{0, 0}, {49, 49}, {10, 0}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {50, 0}, {1, 50}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestPassableThreshold verifies BlockingCost handling and snapshot semantics.
func TestPassableThreshold(t *testing.T) {
	m := costmatrix.NewDense()
	require.NoError(t, m.Set(1, 1, 255))
	require.NoError(t, m.Set(2, 2, 100))

	gg := gridgraph.New(m)
	require.False(t, gg.Passable(1, 1))
	require.True(t, gg.Passable(2, 2))
	require.False(t, gg.Passable(-1, 0))

	strict := gridgraph.New(m, gridgraph.WithBlockingCost(100))
	require.False(t, strict.Passable(2, 2))

	// later edits to m do not reach the snapshot
	require.NoError(t, m.Set(3, 3, 255))
	require.True(t, gg.Passable(3, 3))
}

// TestOptionsValidation rejects nonsensical options.
func TestOptionsValidation(t *testing.T) {
	require.Panics(t, func() { gridgraph.WithBlockingCost(0) })
	require.Panics(t, func() { gridgraph.WithConnectivity(gridgraph.Connectivity(7)) })

	gg := gridgraph.New(costmatrix.NewDense(), gridgraph.WithConnectivity(gridgraph.Conn4))
	require.Len(t, gg.NeighborOffsets(), 4)
	require.Len(t, gridgraph.New(costmatrix.NewDense()).NeighborOffsets(), 8)
}

//----------------------------------------------------------------------------//
// Region lookups
//----------------------------------------------------------------------------//

// TestRegionOfAndConnected splits the room with a wall column.
func TestRegionOfAndConnected(t *testing.T) {
	gg := gridgraph.New(wallColumn(20))

	left, right := costmatrix.Coord{X: 0, Y: 0}, costmatrix.Coord{X: 49, Y: 49}
	ok, err := gg.Connected(left, costmatrix.Coord{X: 19, Y: 30})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = gg.Connected(left, right)
	require.NoError(t, err)
	require.False(t, ok)

	r, err := gg.RegionOf(costmatrix.Coord{X: 20, Y: 5})
	require.NoError(t, err)
	require.Equal(t, -1, r)

	_, err = gg.RegionOf(costmatrix.Coord{X: 50, Y: 0})
	require.ErrorIs(t, err, costmatrix.ErrOutOfBounds)
}

// TestRegionAndMask returns cells of a region and a sparse marking for it.
func TestRegionAndMask(t *testing.T) {
	gg := gridgraph.New(wallColumn(1))

	cells, err := gg.Region(0)
	require.NoError(t, err)
	require.Len(t, cells, costmatrix.Size) // the x=0 column

	mask, err := gg.RegionMask(0, 255)
	require.NoError(t, err)
	require.Equal(t, costmatrix.Size, mask.Len())

	_, err = gg.Region(2)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, err = gg.RegionMask(-1, 1)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
