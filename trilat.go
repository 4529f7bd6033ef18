/*
Package trilat builds symmetry-reduced sparse matrix representations of
interaction and correlation operators for the spin-1/2 model on a periodic
two-dimensional triangular lattice.

A Sector fixes the conserved quantum numbers (lattice momentum, optionally
the number of up spins), constructs the corresponding Bloch-function basis
once, and exposes one method per operator. Each method returns a
coordinate-format sparse matrix whose backing buffers are owned by the
caller and must be reclaimed with a single call to Release.
*/
package trilat
