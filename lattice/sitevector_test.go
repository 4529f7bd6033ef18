package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{4, 3}, {3, 4}, {6, 2}, {4, 1}, {1, 5}} {
		nx, ny := dims[0], dims[1]
		for i := 0; i < nx*ny; i++ {
			v := FromIndex(i, nx, ny)
			assert.Equal(t, i, v.Index())
			assert.Equal(t, i%nx, v.X)
			assert.Equal(t, i/nx, v.Y)
		}
	}
}

func TestHopsWrapAround(t *testing.T) {
	v := New(0, 0, 4, 3)

	assert.Equal(t, New(3, 0, 4, 3), v.XHop(-1))
	assert.Equal(t, New(0, 2, 4, 3), v.YHop(-1))
	assert.Equal(t, v, v.XHop(4))
	assert.Equal(t, v, v.YHop(3))
	assert.Equal(t, New(0, 0, 4, 3), FromIndex(11, 4, 3).NextSite())
}

func TestDegenerateHops(t *testing.T) {
	// On a chain the a3 direction wraps straight back onto the start.
	v := New(2, 0, 4, 1)
	_, ok := v.A3Hop(1)
	assert.False(t, ok)

	_, ok = v.A1Hop(1)
	assert.True(t, ok)

	// Third-neighbor hops on a two-site row are degenerate as well.
	w := New(0, 0, 2, 3)
	_, ok = w.A1Hop(2)
	assert.False(t, ok)
}

func TestNeighborCounts(t *testing.T) {
	v := New(1, 1, 4, 4)
	assert.Len(t, v.NearestNeighbors(), 3)
	assert.Len(t, v.SecondNeighbors(), 3)
	assert.Len(t, v.ThirdNeighbors(), 3)

	// ny = 1 removes the a3 direction from the nearest neighbors.
	w := New(0, 0, 4, 1)
	assert.Len(t, w.NearestNeighbors(), 2)
}

func TestAngleWith(t *testing.T) {
	v := New(0, 0, 4, 3)

	a1, ok := v.A1Hop(1)
	require.True(t, ok)
	a2, ok := v.A2Hop(1)
	require.True(t, ok)
	a3, ok := v.A3Hop(1)
	require.True(t, ok)

	third := 2 * math.Pi / 3
	assert.InDelta(t, 0, v.AngleWith(a1), 1e-15)
	assert.InDelta(t, third, v.AngleWith(a2), 1e-15)
	assert.InDelta(t, -third, v.AngleWith(a3), 1e-15)

	// The angle belongs to the bond, not to a traversal direction.
	for _, w := range v.NearestNeighbors() {
		assert.InDelta(t, v.AngleWith(w), w.AngleWith(v), 1e-15)
	}
}

func TestAngleWithTranslatedBonds(t *testing.T) {
	// Every translated copy of a vertical bond carries the same angle,
	// even when wraparound swaps which endpoint has the smaller index.
	third := 2 * math.Pi / 3
	for y := 0; y < 3; y++ {
		v := New(2, y, 4, 3)
		w := New(2, y+1, 4, 3)
		assert.InDelta(t, -third, v.AngleWith(w), 1e-15)
		assert.InDelta(t, -third, w.AngleWith(v), 1e-15)
	}

	// The same holds for the diagonal family across the x boundary.
	assert.InDelta(t, third, New(0, 0, 4, 3).AngleWith(New(3, 1, 4, 3)), 1e-15)
	assert.InDelta(t, third, New(3, 1, 4, 3).AngleWith(New(0, 0, 4, 3)), 1e-15)
}
