// Package ops computes the matrix elements of the supported interaction and
// correlation operators in a translation-symmetry-reduced basis, and
// assembles them into coordinate-format sparse matrices.
//
// Every accumulator is a pure fold over a bond (or triangle) table for one
// origin representative: it classifies the spins under each bond, applies
// the operator's bit flips, resolves the destination configuration to its
// representative, and sums the resulting coefficient per destination column.
// A destination outside the symmetry sector contributes nothing; that is
// expected, not an error.
package ops

import (
	"math/bits"
	"math/cmplx"

	"github.com/spinsys/trilat/basis"
	"github.com/spinsys/trilat/lattice"
)

// Gamma returns the unit-modulus geometric phase of the bond connecting the
// sites selected by the single-bit masks s1 and s2: exp(i*ang) where ang is
// the doubled orientation angle of the directed bond. This is the threefold
// bond-orientation anisotropy of the triangular lattice, and the sole source
// of directional dependence in the pseudo-dipolar and mixed operators.
// The phase depends only on the bond family, not on the order of the two
// masks, so translated copies of a bond always share it; without that the
// assembled operators would not commute with the lattice translations. The
// result is undefined if s1 or s2 is not a single-bit mask.
func Gamma(nx, ny int, s1, s2 uint64) complex128 {
	v1 := lattice.FromIndex(bits.TrailingZeros64(s1), nx, ny)
	v2 := lattice.FromIndex(bits.TrailingZeros64(s2), nx, ny)
	return cmplx.Rect(1, v1.AngleWith(v2))
}

// IsingElements returns the diagonal matrix element of the Ising term for
// one origin state: 0.25 times the count of aligned bonds minus the count of
// anti-aligned bonds over the given site-pair table. The Ising term never
// connects distinct basis states, so the element is a scalar rather than a
// row map.
func IsingElements(site1, site2 []uint64, orig *basis.BlochFunc) float64 {
	var sameDir int
	for i, s1 := range site1 {
		upUp, downDown := basis.RepeatedSpins(orig.Lead, s1, site2[i])
		if upUp {
			sameDir++
		}
		if downDown {
			sameDir++
		}
	}
	diffDir := len(site1) - sameDir
	return 0.25 * float64(sameDir-diffDir)
}

// ExchangeElements returns one row of the XY exchange term: for every bond
// of the table holding anti-aligned spins, both spins are flipped and the
// destination representative receives j times the projection phase times the
// norm ratio. Contributions reaching the same destination are summed.
func ExchangeElements(j float64, site1, site2 []uint64, orig *basis.BlochFunc, set *basis.Set) map[uint32]complex128 {
	row := make(map[uint32]complex128)
	for i, s1 := range site1 {
		s2 := site2[i]
		upDown, downUp := basis.ExchangeSpinFlips(orig.Lead, s1, s2)
		if !upDown && !downUp {
			continue
		}
		newDec := orig.Lead ^ s1 ^ s2
		cntd, phase, ok := set.FindLeadingState(newDec)
		if !ok {
			continue
		}
		col, ok := set.Index(cntd.Lead)
		if !ok {
			continue
		}
		row[col] += complex(j*basis.Coeff(orig, cntd), 0) * phase
	}
	return row
}

// PPMMElements returns one row of the pseudo-dipolar (++/--) term: for every
// bond holding aligned spins, both spins are raised or both lowered, with
// the bond's geometric phase entering directly when raising and conjugated
// when lowering.
func PPMMElements(nx, ny int, j float64, site1, site2 []uint64, orig *basis.BlochFunc, set *basis.Set) map[uint32]complex128 {
	row := make(map[uint32]complex128)
	for i, s1 := range site1 {
		s2 := site2[i]
		upUp, downDown := basis.RepeatedSpins(orig.Lead, s1, s2)

		var newDec uint64
		var gamma complex128
		switch {
		case upUp:
			newDec = orig.Lead &^ (s1 | s2)
			gamma = cmplx.Conj(Gamma(nx, ny, s1, s2))
		case downDown:
			newDec = orig.Lead | s1 | s2
			gamma = Gamma(nx, ny, s1, s2)
		default:
			continue
		}

		cntd, phase, ok := set.FindLeadingState(newDec)
		if !ok {
			continue
		}
		col, ok := set.Index(cntd.Lead)
		if !ok {
			continue
		}
		row[col] += complex(j*basis.Coeff(orig, cntd), 0) * phase * gamma
	}
	return row
}

// PMZElements returns one row of the mixed (+-z) term. Each bond is
// evaluated in both site orders: the first site contributes a +-1/2 factor
// from its orientation while the second site is flipped, weighted by the
// bond's geometric phase, conjugated when lowering and negated when raising.
// The operator carries a leading factor of i, reflecting its definition as
// the imaginary part of a combined exchange.
func PMZElements(nx, ny int, j float64, site1, site2 []uint64, orig *basis.BlochFunc, set *basis.Set) map[uint32]complex128 {
	iJ := complex(0, j)
	row := make(map[uint32]complex128)
	for i := range site1 {
		for _, pair := range [2][2]uint64{{site1[i], site2[i]}, {site2[i], site1[i]}} {
			s1, s2 := pair[0], pair[1]

			zContrib := 0.5
			if orig.Lead&s1 == 0 {
				zContrib = -0.5
			}

			var newDec uint64
			var gamma complex128
			if orig.Lead&s2 != 0 {
				newDec = orig.Lead &^ s2
				gamma = cmplx.Conj(Gamma(nx, ny, s1, s2))
			} else {
				newDec = orig.Lead | s2
				gamma = -Gamma(nx, ny, s1, s2)
			}

			cntd, phase, ok := set.FindLeadingState(newDec)
			if !ok {
				continue
			}
			col, ok := set.Index(cntd.Lead)
			if !ok {
				continue
			}
			row[col] += iJ * complex(zContrib*basis.Coeff(orig, cntd), 0) * phase * gamma
		}
	}
	return row
}

// ChiralityElements returns one row of the scalar-chirality term
// S1.(S2 x S3) summed over the elementary triangles of the lattice, upward
// triangles entering with a positive sign and downward triangles with a
// negative one. Each triangle decomposes into its three cyclic pairs: the
// pair is exchanged when anti-aligned while the remaining vertex contributes
// its +-1/2 z value, with an overall 1/(2i) from rewriting the cross product
// in raising and lowering operators.
func ChiralityElements(j float64, site1, site2, site3 []uint64, orig *basis.BlochFunc, set *basis.Set) map[uint32]complex128 {
	// 1/(2i)
	half := complex(0, -0.5)
	row := make(map[uint32]complex128)
	for t := range site1 {
		sign := 1.0
		if t%2 == 1 {
			sign = -1.0
		}
		tri := [3]uint64{site1[t], site2[t], site3[t]}
		for c := 0; c < 3; c++ {
			sk, si, sj := tri[c], tri[(c+1)%3], tri[(c+2)%3]

			upDown, downUp := basis.ExchangeSpinFlips(orig.Lead, si, sj)
			if !upDown && !downUp {
				continue
			}
			amp := 1.0
			if downUp {
				amp = -1.0
			}
			zContrib := 0.5
			if orig.Lead&sk == 0 {
				zContrib = -0.5
			}

			newDec := orig.Lead ^ si ^ sj
			cntd, phase, ok := set.FindLeadingState(newDec)
			if !ok {
				continue
			}
			col, ok := set.Index(cntd.Lead)
			if !ok {
				continue
			}
			row[col] += complex(j*sign*amp*zContrib*basis.Coeff(orig, cntd), 0) * half * phase
		}
	}
	return row
}
