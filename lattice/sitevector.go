// Package lattice implements the geometry of a two-dimensional triangular
// lattice with periodic boundary conditions: site vectors, directional hops,
// neighbor enumeration and the bond tables consumed by the operator engine.
//
// Sites are addressed row-major: the site at coordinate (x, y) has linear
// index y*Nx + x, which is also its bit position in the 64-bit configuration
// encoding used by the basis and ops packages.
package lattice

import (
	"math"
)

// SiteVector is one site of a periodic Nx x Ny triangular lattice.
// Coordinates are kept canonical, i.e. X in [0, Nx) and Y in [0, Ny).
// SiteVector is an immutable value type; hops return new vectors.
type SiteVector struct {
	X, Y   int
	Nx, Ny int
}

// New returns the site at coordinate (x, y), reduced to the canonical cell.
func New(x, y, nx, ny int) SiteVector {
	return SiteVector{X: mod(x, nx), Y: mod(y, ny), Nx: nx, Ny: ny}
}

// FromIndex returns the site with the given linear index.
func FromIndex(i, nx, ny int) SiteVector {
	return SiteVector{X: i % nx, Y: i / nx, Nx: nx, Ny: ny}
}

// Index returns the linear (row-major) index of v.
func (v SiteVector) Index() int {
	return v.Y*v.Nx + v.X
}

// NextSite returns the site following v in row-major traversal, wrapping
// around from the last site back to the origin.
func (v SiteVector) NextSite() SiteVector {
	n := v.Nx * v.Ny
	return FromIndex((v.Index()+1)%n, v.Nx, v.Ny)
}

// XHop returns the site displaced by stride lattice units along the first
// lattice vector, with periodic wraparound.
func (v SiteVector) XHop(stride int) SiteVector {
	v.X = mod(v.X+stride, v.Nx)
	return v
}

// YHop returns the site displaced by stride lattice units along the second
// lattice vector, with periodic wraparound.
func (v SiteVector) YHop(stride int) SiteVector {
	v.Y = mod(v.Y+stride, v.Ny)
	return v
}

// A1Hop hops stride units along the a1 direction. The second return value is
// false if the hop wrapped back onto the starting site, which happens on
// degenerate lattices.
func (v SiteVector) A1Hop(stride int) (SiteVector, bool) {
	w := v.XHop(stride)
	return w, w != v
}

// A2Hop hops stride units along the a2 direction.
func (v SiteVector) A2Hop(stride int) (SiteVector, bool) {
	w := v.XHop(-stride).YHop(stride)
	return w, w != v
}

// A3Hop hops stride units along the a3 direction.
func (v SiteVector) A3Hop(stride int) (SiteVector, bool) {
	w := v.YHop(-stride)
	return w, w != v
}

// B1Hop hops stride units along the b1 = a1 - a3 direction, connecting
// second neighbors.
func (v SiteVector) B1Hop(stride int) (SiteVector, bool) {
	w := v.XHop(stride).YHop(stride)
	return w, w != v
}

// B2Hop hops stride units along the b2 direction.
func (v SiteVector) B2Hop(stride int) (SiteVector, bool) {
	w := v.XHop(-2 * stride).YHop(stride)
	return w, w != v
}

// B3Hop hops stride units along the b3 direction, composed from b1 and b2.
func (v SiteVector) B3Hop(stride int) (SiteVector, bool) {
	w, ok := v.B1Hop(-stride)
	if !ok {
		return v, false
	}
	w, ok = w.B2Hop(-stride)
	if !ok {
		return w, false
	}
	return w, w != v
}

type hop func(stride int) (SiteVector, bool)

func neighbors(strides []int, hops []hop) []SiteVector {
	sites := make([]SiteVector, 0, len(strides)*len(hops))
	for _, stride := range strides {
		for _, h := range hops {
			if w, ok := h(stride); ok {
				sites = append(sites, w)
			}
		}
	}
	return sites
}

// NearestNeighbors enumerates the nearest neighbors of v along the three
// positive bond directions a1, a2, a3. Hops that wrap onto v itself are
// omitted.
func (v SiteVector) NearestNeighbors() []SiteVector {
	return neighbors([]int{1}, []hop{v.A1Hop, v.A2Hop, v.A3Hop})
}

// SecondNeighbors enumerates the second neighbors of v along b1, b2, b3.
func (v SiteVector) SecondNeighbors() []SiteVector {
	return neighbors([]int{1}, []hop{v.B1Hop, v.B2Hop, v.B3Hop})
}

// ThirdNeighbors enumerates the third neighbors of v, reached by doubled
// hops along a1, a2, a3.
func (v SiteVector) ThirdNeighbors() []SiteVector {
	return neighbors([]int{2}, []hop{v.A1Hop, v.A2Hop, v.A3Hop})
}

// AngleWith returns twice the angle between the bond connecting v and w and
// the horizontal. On the triangular lattice the doubled angle of any bond
// family is one of 0 and +-2pi/3, determined by the coordinate differences
// alone: bonds within a row are horizontal, vertical bonds sit at -2pi/3 and
// the remaining diagonal family at +2pi/3. Doubling the angle makes the
// result independent of the direction of traversal, so every translated copy
// of a bond carries the same value regardless of how wraparound orders its
// endpoints. The angle is only meaningful for nearest-neighbor pairs; for
// w == v the result is 0.
func (v SiteVector) AngleWith(w SiteVector) float64 {
	dx, dy := w.X-v.X, w.Y-v.Y
	switch {
	case dy == 0:
		return 0
	case dx == 0:
		return -2 * math.Pi / 3
	default:
		return 2 * math.Pi / 3
	}
}

// Less orders sites by their linear index. It is the total order used to
// canonicalize bonds so that a bond and its reverse compare equal.
func (v SiteVector) Less(w SiteVector) bool {
	return v.Index() < w.Index()
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
