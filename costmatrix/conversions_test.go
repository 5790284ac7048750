// SPDX-License-Identifier: MIT
package costmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/costgrid/costmatrix"
	"github.com/stretchr/testify/require"
)

// randomDense fills roughly one cell in four with a non-zero cost.
func randomDense(seed int64) *costmatrix.Dense {
	r := rand.New(rand.NewSource(seed))
	m := costmatrix.NewDense()
	m.Update(func(costmatrix.Coord, uint8) uint8 {
		if r.Intn(4) == 0 {
			return uint8(1 + r.Intn(255))
		}
		return 0
	})

	return m
}

// TestDenseBytesRoundTrip: bytes → Dense → bytes is the identity.
func TestDenseBytesRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	b := make([]byte, costmatrix.Area)
	r.Read(b)

	m, err := costmatrix.DenseFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, m.Bytes())
}

// TestDenseSparseDenseRoundTrip: zeros dropped by ToSparse come back as zeros.
func TestDenseSparseDenseRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := randomDense(seed)
		s := m.ToSparse()
		require.Equal(t, m.CountNonZero(), s.Len())
		for _, v := range s.All() {
			require.NotZero(t, v)
		}
		require.True(t, s.ToDense().Equal(m))
	}
}

// TestSparseDenseConversionEffectiveValues: every coordinate reads the same through both forms.
func TestSparseDenseConversionEffectiveValues(t *testing.T) {
	s := costmatrix.NewSparse()
	require.NoError(t, s.Set(0, 0, 0))
	require.NoError(t, s.Set(12, 34, 56))

	d := s.ToDense()
	for c, v := range d.All() {
		sv, err := s.GetCoord(c)
		require.NoError(t, err)
		require.Equal(t, sv, v)
	}

	// explicit zero does not survive sparse → dense → sparse
	back := d.ToSparse()
	require.False(t, back.Has(0, 0))
	require.True(t, back.Has(12, 34))
}
