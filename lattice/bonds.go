package lattice

// Bond is a pair of sites, canonically ordered so that a bond and its
// reverse compare equal.
type Bond [2]SiteVector

// NewBond returns the canonical bond connecting v and w.
func NewBond(v, w SiteVector) Bond {
	if w.Less(v) {
		v, w = w, v
	}
	return Bond{v, w}
}

// GenerateBonds enumerates every bond of the lattice at the three supported
// neighbor ranges. The result holds the nearest-neighbor bonds at index 0,
// second-neighbor bonds at index 1 and third-neighbor bonds at index 2.
//
// Sites are traversed in canonical row-major order and each range keeps the
// first occurrence of every distinct bond, so the enumeration order is
// deterministic. On degenerate lattices (nx or ny below the neighbor range)
// distinct hop directions can wrap onto the same site pair; such bonds are
// collapsed to one entry per distinct pair.
func GenerateBonds(nx, ny int) [3][]Bond {
	var bonds [3][]Bond
	var seen [3]map[[2]int]struct{}
	for r := range seen {
		seen[r] = map[[2]int]struct{}{}
	}

	v := New(0, 0, nx, ny)
	for i := 0; i < nx*ny; i++ {
		ranges := [3][]SiteVector{
			v.NearestNeighbors(),
			v.SecondNeighbors(),
			v.ThirdNeighbors(),
		}
		for r, sites := range ranges {
			for _, w := range sites {
				b := NewBond(v, w)
				key := [2]int{b[0].Index(), b[1].Index()}
				if _, ok := seen[r][key]; ok {
					continue
				}
				seen[r][key] = struct{}{}
				bonds[r] = append(bonds[r], b)
			}
		}
		v = v.NextSite()
	}
	return bonds
}

// InteractingSites projects the range-l bond table into two parallel slices
// of single-bit site masks, in bond enumeration order. l is 1 for nearest
// neighbors, 2 for second neighbors and 3 for third neighbors.
func InteractingSites(nx, ny, l int) (site1, site2 []uint64) {
	bonds := GenerateBonds(nx, ny)[l-1]
	site1 = make([]uint64, len(bonds))
	site2 = make([]uint64, len(bonds))
	for i, b := range bonds {
		site1[i] = 1 << uint(b[0].Index())
		site2[i] = 1 << uint(b[1].Index())
	}
	return
}

// AllSites pairs every site with the site displaced by the lattice vector of
// linear index l, decomposed into an x stride of l mod nx and a y stride of
// l / nx. Unlike InteractingSites the separation is not restricted to the
// bonded ranges; this is the pair table used by correlation matrices.
func AllSites(nx, ny, l int) (site1, site2 []uint64) {
	xstride := l % nx
	ystride := l / nx
	v := New(0, 0, nx, ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			site1 = append(site1, 1<<uint(v.Index()))
			site2 = append(site2, 1<<uint(v.XHop(xstride).YHop(ystride).Index()))
			v = v.XHop(1)
		}
		v = v.YHop(1)
	}
	return
}

// TriangularVertSites emits, for every unit cell, the two elementary
// triangles of the lattice as ordered triples of single-bit site masks with
// the vertices in clockwise order. Triangles alternate between the upward
// triangle of a cell (even positions) and its downward partner (odd
// positions).
func TriangularVertSites(nx, ny int) (site1, site2, site3 []uint64) {
	v := New(0, 0, nx, ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			// Upright triangle, vertices clockwise.
			site1 = append(site1, 1<<uint(v.Index()))
			site2 = append(site2, 1<<uint(v.XHop(1).Index()))
			site3 = append(site3, 1<<uint(v.XHop(1).YHop(1).Index()))

			// Inverted triangle, vertices clockwise.
			site1 = append(site1, 1<<uint(v.Index()))
			site2 = append(site2, 1<<uint(v.XHop(1).Index()))
			site3 = append(site3, 1<<uint(v.XHop(1).YHop(-1).Index()))

			v = v.XHop(1)
		}
		v = v.YHop(1)
	}
	return
}
