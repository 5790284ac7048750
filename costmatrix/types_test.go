// SPDX-License-Identifier: MIT
package costmatrix_test

import (
	"testing"

	"github.com/katalvlaran/costgrid/costmatrix"
	"github.com/stretchr/testify/require"
)

// TestCoordIndexRoundTrip checks that CoordFromIndex inverts Index over the whole room.
func TestCoordIndexRoundTrip(t *testing.T) {
	for i := 0; i < costmatrix.Area; i++ {
		c := costmatrix.CoordFromIndex(i)
		require.True(t, c.Valid())
		require.Equal(t, i, c.Index())
	}
	require.Equal(t, 50, costmatrix.Coord{X: 1, Y: 0}.Index()) // x varies slowest
	require.Equal(t, 1, costmatrix.Coord{X: 0, Y: 1}.Index())
}

// TestParseCoord covers the "x,y" key form used by the text codecs.
func TestParseCoord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    costmatrix.Coord
		wantErr bool
	}{
		{"0,0", costmatrix.Coord{}, false},
		{"49,12", costmatrix.Coord{X: 49, Y: 12}, false},
		{" 3 , 4 ", costmatrix.Coord{}, true},
		{" 3,4", costmatrix.Coord{}, true},
		{"03,4", costmatrix.Coord{}, true},
		{"3,04", costmatrix.Coord{}, true},
		{"+3,4", costmatrix.Coord{}, true},
		{"50,0", costmatrix.Coord{}, true},
		{"0,50", costmatrix.Coord{}, true},
		{"300,1", costmatrix.Coord{}, true},
		{"-1,1", costmatrix.Coord{}, true},
		{"1;1", costmatrix.Coord{}, true},
		{"", costmatrix.Coord{}, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := costmatrix.ParseCoord(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, costmatrix.ErrInvalidCoordinate)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) costmatrix.Coord {
	t.Helper()
	c, err := costmatrix.ParseCoord(s)
	require.NoError(t, err)

	return c
}
