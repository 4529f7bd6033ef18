package basis

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinsys/trilat/utils"
)

func randConfigs(t *testing.T, n, count int) []uint64 {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte{'t', 'r', 'i', 'l', 'a', 't'})
	require.NoError(t, err)

	mask := ^uint64(0) >> uint(64-n)
	decs := make([]uint64, count)
	for i := range decs {
		decs[i] = utils.RandUint64(prng) & mask
	}
	return decs
}

func TestTranslationPeriodicity(t *testing.T) {
	for _, dims := range [][2]int{{4, 3}, {3, 4}, {6, 2}, {4, 1}, {1, 5}, {8, 8}} {
		nx, ny := dims[0], dims[1]
		for _, dec := range randConfigs(t, nx*ny, 32) {
			x := dec
			for i := 0; i < nx; i++ {
				x = TranslateX(x, nx, ny)
				assert.Equal(t, bits.OnesCount64(dec), bits.OnesCount64(x))
			}
			assert.Equal(t, dec, x, "x-translation applied nx times on %dx%d", nx, ny)

			y := dec
			for i := 0; i < ny; i++ {
				y = TranslateY(y, nx, ny)
				assert.Equal(t, bits.OnesCount64(dec), bits.OnesCount64(y))
			}
			assert.Equal(t, dec, y, "y-translation applied ny times on %dx%d", nx, ny)
		}
	}
}

func TestTranslateMovesBits(t *testing.T) {
	// Site (x, y) moves to (x+1, y) under an x-translation and to
	// (x, y-1) under a y-translation, row-major bit positions.
	const nx, ny = 4, 3
	assert.Equal(t, uint64(1)<<1, TranslateX(1, nx, ny))
	assert.Equal(t, uint64(1)<<0, TranslateX(1<<3, nx, ny))
	assert.Equal(t, uint64(1)<<8, TranslateY(1, nx, ny))
	assert.Equal(t, uint64(1)<<0, TranslateY(1<<4, nx, ny))
}

func TestSpinPairClassification(t *testing.T) {
	// For any configuration and any distinct site pair, exactly one of the
	// four pair states holds.
	const n = 12
	for _, dec := range randConfigs(t, n, 64) {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				s1 := uint64(1) << uint(i)
				s2 := uint64(1) << uint(j)

				upDown, downUp := ExchangeSpinFlips(dec, s1, s2)
				upUp, downDown := RepeatedSpins(dec, s1, s2)

				count := 0
				for _, b := range []bool{upDown, downUp, upUp, downDown} {
					if b {
						count++
					}
				}
				require.Equal(t, 1, count, "dec=%b s1=%d s2=%d", dec, i, j)
			}
		}
	}
}
