package trilat

import (
	"github.com/pkg/errors"

	"github.com/spinsys/trilat/basis"
	"github.com/spinsys/trilat/coo"
	"github.com/spinsys/trilat/lattice"
	"github.com/spinsys/trilat/ops"
)

// Sector is one fixed symmetry sector of the model: a lattice geometry, a
// momentum, optionally a fixed magnetization, and the Bloch-function basis
// built for it. The basis and its lookup tables are constructed once and
// shared read-only by every operator method, so a Sector is safe for
// concurrent use.
type Sector struct {
	nx, ny int
	set    *basis.Set
}

func checkLattice(nx, ny, kx, ky int) error {
	if nx < 1 || ny < 1 {
		return errors.Errorf("lattice extents must be positive, got %dx%d", nx, ny)
	}
	if nx*ny > 64 {
		return errors.Errorf("lattice has %d sites, the configuration encoding holds at most 64", nx*ny)
	}
	if kx < 0 || kx >= nx || ky < 0 || ky >= ny {
		return errors.Errorf("momentum (%d, %d) outside the %dx%d Brillouin zone", kx, ky, nx, ny)
	}
	return nil
}

// NewMomentumSector builds the sector of lattice momentum (kx, ky) on a
// periodic nx x ny triangular lattice. kx and ky are integer momentum
// indices in [0, nx) and [0, ny).
func NewMomentumSector(nx, ny, kx, ky int) (*Sector, error) {
	if err := checkLattice(nx, ny, kx, ky); err != nil {
		return nil, errors.Wrap(err, "momentum sector")
	}
	return &Sector{nx: nx, ny: ny, set: basis.BuildMomentum(nx, ny, kx, ky)}, nil
}

// NewMagnetizationSector builds the sector of lattice momentum (kx, ky)
// restricted to configurations with exactly nup up spins.
func NewMagnetizationSector(nx, ny, kx, ky, nup int) (*Sector, error) {
	if err := checkLattice(nx, ny, kx, ky); err != nil {
		return nil, errors.Wrap(err, "magnetization sector")
	}
	if nup < 0 || nup > nx*ny {
		return nil, errors.Errorf("magnetization sector: nup = %d outside [0, %d]", nup, nx*ny)
	}
	return &Sector{nx: nx, ny: ny, set: basis.BuildMagnetization(nx, ny, kx, ky, nup)}, nil
}

// Len returns the dimension of the sector basis, which is the row and
// column extent of every matrix built by this sector.
func (s *Sector) Len() int {
	return s.set.Len()
}

// Basis exposes the sector's Bloch-function set. The set is read-only.
func (s *Sector) Basis() *basis.Set {
	return s.set
}

// HIsing returns the Ising (SzSz) term over the bonds of neighbor range l
// (1 nearest, 2 second, 3 third). The matrix is diagonal and real.
func (s *Sector) HIsing(l int) *coo.Matrix {
	site1, site2 := lattice.InteractingSites(s.nx, s.ny, l)
	return ops.Diagonal(s.set, func(orig *basis.BlochFunc) float64 {
		return ops.IsingElements(site1, site2, orig)
	})
}

// HXY returns the XY exchange term over the bonds of neighbor range l.
func (s *Sector) HXY(l int) *coo.Matrix {
	site1, site2 := lattice.InteractingSites(s.nx, s.ny, l)
	return ops.OffDiagonal(s.set, func(orig *basis.BlochFunc) map[uint32]complex128 {
		return ops.ExchangeElements(1, site1, site2, orig, s.set)
	})
}

// HPPMM returns the pseudo-dipolar (++/--) term over the bonds of neighbor
// range l. In a fixed-magnetization sector every destination falls outside
// the sector and the matrix is empty.
func (s *Sector) HPPMM(l int) *coo.Matrix {
	site1, site2 := lattice.InteractingSites(s.nx, s.ny, l)
	return ops.OffDiagonal(s.set, func(orig *basis.BlochFunc) map[uint32]complex128 {
		return ops.PPMMElements(s.nx, s.ny, 1, site1, site2, orig, s.set)
	})
}

// HPMZ returns the mixed (+-z) term over the bonds of neighbor range l.
// In a fixed-magnetization sector the matrix is empty.
func (s *Sector) HPMZ(l int) *coo.Matrix {
	site1, site2 := lattice.InteractingSites(s.nx, s.ny, l)
	return ops.OffDiagonal(s.set, func(orig *basis.BlochFunc) map[uint32]complex128 {
		return ops.PMZElements(s.nx, s.ny, 1, site1, site2, orig, s.set)
	})
}

// HChirality returns the scalar-chirality term over the elementary
// triangles of the lattice. The triangle set is fixed by the geometry, so
// unlike the two-site terms it takes no neighbor range.
func (s *Sector) HChirality() *coo.Matrix {
	site1, site2, site3 := lattice.TriangularVertSites(s.nx, s.ny)
	return ops.OffDiagonal(s.set, func(orig *basis.BlochFunc) map[uint32]complex128 {
		return ops.ChiralityElements(1, site1, site2, site3, orig, s.set)
	})
}

// SzCorrelation returns the SzSz correlation matrix at lattice separation
// l, pairing every site with the site displaced by the lattice vector of
// linear index l. The matrix is diagonal.
func (s *Sector) SzCorrelation(l int) *coo.Matrix {
	site1, site2 := lattice.AllSites(s.nx, s.ny, l)
	return ops.Diagonal(s.set, func(orig *basis.BlochFunc) float64 {
		return ops.IsingElements(site1, site2, orig)
	})
}

// XYCorrelation returns the XY exchange correlation matrix at lattice
// separation l.
func (s *Sector) XYCorrelation(l int) *coo.Matrix {
	site1, site2 := lattice.AllSites(s.nx, s.ny, l)
	return ops.OffDiagonal(s.set, func(orig *basis.BlochFunc) map[uint32]complex128 {
		return ops.ExchangeElements(1, site1, site2, orig, s.set)
	})
}
