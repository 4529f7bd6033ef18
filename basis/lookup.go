package basis

import "math/cmplx"

// FindLeadingState resolves the configuration dec to the Bloch function
// whose orbit contains it. The returned phase is the unit-modulus conjugate
// of the momentum phase accumulated between the leading state and dec: the
// amplitude by which dec projects back onto its representative.
//
// ok is false when dec lies outside the sector or its orbit was pruned for
// having a vanishing Bloch sum. That is not an error; the caller simply has
// no matrix element to emit.
func (s *Set) FindLeadingState(dec uint64) (cntd *BlochFunc, phase complex128, ok bool) {
	bf, ok := s.table[dec]
	if !ok || bf.Norm <= NormTol {
		return nil, 0, false
	}
	p := cmplx.Conj(bf.Decs[dec])
	return bf, p / complex(cmplx.Abs(p), 0), true
}

// Coeff is the relative normalization between the Bloch sums of the origin
// and destination representatives. Bloch sums over orbits of different sizes
// have different lengths, which this ratio compensates.
func Coeff(orig, cntd *BlochFunc) float64 {
	return cntd.Norm / orig.Norm
}
