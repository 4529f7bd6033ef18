package basis

import (
	"math"
	"math/cmplx"
)

// NormTol is the cutoff below which the norm of a Bloch sum is treated as
// zero and its orbit is pruned from the sector basis.
const NormTol = 1e-8

// BlochFunc is one translation-symmetry basis state: the numerically
// smallest configuration of a translation orbit (the leading state), the
// accumulated momentum phase of every configuration in the orbit, and the
// norm of the resulting Bloch sum.
//
// BlochFunc values are owned by the Set that created them; the operator
// engine only reads them.
type BlochFunc struct {
	// Lead is the canonical (numerically minimal) member of the orbit.
	Lead uint64
	// Decs maps every configuration of the orbit to the sum of the
	// momentum phases of the translations reaching it from Lead.
	Decs map[uint64]complex128
	// Norm is the Euclidean norm of the phase sums over the orbit.
	Norm float64
}

// Set is an ordered collection of Bloch functions for one fixed symmetry
// sector. The position of a Bloch function in the set defines its row and
// column index in every operator matrix built over the sector.
//
// The lookup tables are built once at construction and never mutated, so a
// Set may be shared by concurrent readers.
type Set struct {
	funcs []*BlochFunc          // norm above NormTol, ordered by lead
	table map[uint64]*BlochFunc // every orbit member, pruned orbits included
	index map[uint64]uint32     // lead -> matrix index
}

// phaseGrid caches the translation phases exp(2i*pi*(kx*m/nx + ky*n/ny)).
type phaseGrid struct {
	x []complex128
	y []complex128
}

func newPhaseGrid(nx, ny, kx, ky int) *phaseGrid {
	g := &phaseGrid{x: make([]complex128, nx), y: make([]complex128, ny)}
	for m := 0; m < nx; m++ {
		g.x[m] = cmplx.Exp(complex(0, 2*math.Pi*float64(kx*m)/float64(nx)))
	}
	for n := 0; n < ny; n++ {
		g.y[n] = cmplx.Exp(complex(0, 2*math.Pi*float64(ky*n)/float64(ny)))
	}
	return g
}

func (g *phaseGrid) at(n, m int) complex128 {
	return g.y[n] * g.x[m]
}

// newOrbit walks the full translation orbit of lead, accumulating the
// momentum phase of every member and marking them visited. lead must be the
// smallest not-yet-visited configuration, which makes it the canonical
// representative of the orbit.
func newOrbit(lead uint64, nx, ny int, grid *phaseGrid, visited map[uint64]struct{}) *BlochFunc {
	decs := make(map[uint64]complex128)
	d := lead
	for n := 0; n < ny; n++ {
		for m := 0; m < nx; m++ {
			visited[d] = struct{}{}
			decs[d] += grid.at(n, m)
			d = TranslateX(d, nx, ny)
		}
		d = TranslateY(d, nx, ny)
	}

	var norm float64
	for _, p := range decs {
		norm += real(p)*real(p) + imag(p)*imag(p)
	}
	return &BlochFunc{Lead: lead, Decs: decs, Norm: math.Sqrt(norm)}
}

func newSet(all []*BlochFunc) *Set {
	s := &Set{
		table: make(map[uint64]*BlochFunc),
		index: make(map[uint64]uint32),
	}
	for _, bf := range all {
		for dec := range bf.Decs {
			s.table[dec] = bf
		}
		if bf.Norm > NormTol {
			s.index[bf.Lead] = uint32(len(s.funcs))
			s.funcs = append(s.funcs, bf)
		}
	}
	return s
}

// BuildMomentum constructs the Bloch basis of the momentum-(kx, ky) sector
// by sieving all 2^(nx*ny) configurations into translation orbits. Orbits
// whose Bloch sum vanishes at this momentum are pruned from the index space
// but remain resolvable through the lookup table.
func BuildMomentum(nx, ny, kx, ky int) *Set {
	grid := newPhaseGrid(nx, ny, kx, ky)
	visited := make(map[uint64]struct{})
	var all []*BlochFunc

	max := uint64(1) << uint(nx*ny)
	for dec := uint64(0); dec < max; dec++ {
		if _, ok := visited[dec]; ok {
			continue
		}
		all = append(all, newOrbit(dec, nx, ny, grid, visited))
	}
	return newSet(all)
}

// BuildMagnetization constructs the Bloch basis of the sector with momentum
// (kx, ky) and exactly nup up spins. Translations permute sites, so every
// orbit lies entirely inside the fixed-magnetization subset; the subset is
// enumerated in increasing numeric order by the next-bit-permutation trick.
func BuildMagnetization(nx, ny, kx, ky, nup int) *Set {
	grid := newPhaseGrid(nx, ny, kx, ky)
	visited := make(map[uint64]struct{})
	var all []*BlochFunc

	n := nx * ny
	if nup == 0 {
		return newSet([]*BlochFunc{newOrbit(0, nx, ny, grid, visited)})
	}
	max := uint64(1) << uint(n)
	for dec := uint64(1)<<uint(nup) - 1; dec < max; dec = nextPermutation(dec) {
		if _, ok := visited[dec]; ok {
			continue
		}
		all = append(all, newOrbit(dec, nx, ny, grid, visited))
	}
	return newSet(all)
}

// nextPermutation returns the next larger integer with the same number of
// set bits (Gosper's hack). v must be nonzero.
func nextPermutation(v uint64) uint64 {
	c := v & -v
	r := v + c
	return r | (((v ^ r) >> 2) / c)
}

// Len returns the dimension of the sector basis.
func (s *Set) Len() int {
	return len(s.funcs)
}

// At returns the i'th Bloch function in basis order.
func (s *Set) At(i int) *BlochFunc {
	return s.funcs[i]
}

// Index returns the matrix index of the Bloch function whose leading state
// is lead, and whether such a function is part of the basis.
func (s *Set) Index(lead uint64) (uint32, bool) {
	i, ok := s.index[lead]
	return i, ok
}
