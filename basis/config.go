// Package basis constructs translation-symmetry-reduced basis sets (Bloch
// functions) for spin-1/2 configurations on a periodic triangular lattice,
// and provides the representative-state lookup used by the matrix-element
// engine.
//
// A configuration is a 64-bit word with bit i set when site i (row-major
// index) carries an up spin, which bounds the lattice to nx*ny <= 64 sites.
package basis

// TranslateX shifts every site of the configuration one lattice unit along
// the x direction with periodic wraparound, i.e. it rotates each row of nx
// bits left by one. Applying it nx times returns the original configuration.
func TranslateX(dec uint64, nx, ny int) uint64 {
	rowMask := ^uint64(0) >> uint(64-nx)
	var out uint64
	for r := 0; r < ny; r++ {
		shift := uint(r * nx)
		row := (dec >> shift) & rowMask
		row = ((row << 1) & rowMask) | (row >> uint(nx-1))
		out |= row << shift
	}
	return out
}

// TranslateY shifts every site of the configuration one lattice unit along
// the y direction with periodic wraparound, i.e. it rotates the ny rows by
// one, the bottom row wrapping around to the top. Applying it ny times
// returns the original configuration.
func TranslateY(dec uint64, nx, ny int) uint64 {
	rowMask := ^uint64(0) >> uint(64-nx)
	tail := dec & rowMask
	return dec>>uint(nx) | tail<<uint(nx*(ny-1))
}

// ExchangeSpinFlips reports whether the sites selected by the single-bit
// masks s1 and s2 hold opposite spins in dec, and in which direction:
// upDown is true when s1 is up and s2 is down, downUp for the reverse.
func ExchangeSpinFlips(dec, s1, s2 uint64) (upDown, downUp bool) {
	upDown = dec&s1 != 0 && dec&s2 == 0
	downUp = dec&s1 == 0 && dec&s2 != 0
	return
}

// RepeatedSpins reports whether the sites selected by the single-bit masks
// s1 and s2 hold aligned spins in dec: both up, or both down.
func RepeatedSpins(dec, s1, s2 uint64) (upUp, downDown bool) {
	upUp = dec&s1 != 0 && dec&s2 != 0
	downDown = dec&s1 == 0 && dec&s2 == 0
	return
}
