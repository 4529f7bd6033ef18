// Package coo packages operator matrices in coordinate (triplet) format and
// enforces the explicit ownership handoff demanded by the host boundary.
package coo

// Matrix is a sparse matrix of complex values in coordinate format: three
// parallel buffers of values, row indices and column indices, plus the
// declared extents. Duplicate (row, col) entries are pre-summed by the
// assembly step, never by Matrix itself.
//
// Ownership of the three buffers transfers to whoever receives the Matrix;
// the receiver must call Release exactly once after its last read. Release
// is deliberately not idempotent so that double-release bugs surface
// immediately instead of being papered over.
type Matrix struct {
	Data []complex128
	Row  []uint32
	Col  []uint32

	NRows uint32
	NCols uint32

	released bool
}

// New wraps the given triplet buffers. The three slices must have equal
// length; New takes ownership of them.
func New(data []complex128, row, col []uint32, nrows, ncols uint32) *Matrix {
	if len(data) != len(row) || len(data) != len(col) {
		panic("coo: triplet buffers have mismatched lengths")
	}
	return &Matrix{Data: data, Row: row, Col: col, NRows: nrows, NCols: ncols}
}

// NNZ returns the number of stored triplets.
func (m *Matrix) NNZ() int {
	return len(m.Data)
}

// Release reclaims the three backing buffers. It must be called exactly
// once per matrix, after all reads are complete. Calling it a second time
// panics.
func (m *Matrix) Release() {
	if m.released {
		panic("coo: matrix released twice")
	}
	m.released = true
	m.Data = nil
	m.Row = nil
	m.Col = nil
}
