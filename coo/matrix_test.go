package coo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New([]complex128{1, 2i}, []uint32{0, 1}, []uint32{0, 0}, 2, 2)
	assert.Equal(t, 2, m.NNZ())
	assert.Equal(t, uint32(2), m.NRows)
	assert.Equal(t, uint32(2), m.NCols)

	assert.Panics(t, func() {
		New([]complex128{1}, []uint32{0, 1}, []uint32{0}, 2, 2)
	})
}

func TestReleaseReclaimsBuffers(t *testing.T) {
	m := New([]complex128{1}, []uint32{0}, []uint32{0}, 1, 1)
	m.Release()
	assert.Nil(t, m.Data)
	assert.Nil(t, m.Row)
	assert.Nil(t, m.Col)
}

func TestReleaseTwicePanics(t *testing.T) {
	m := New([]complex128{1}, []uint32{0}, []uint32{0}, 1, 1)
	m.Release()
	require.Panics(t, m.Release)
}

func TestReleaseEmptyMatrix(t *testing.T) {
	// Matrices without triplets still honor the single-release contract.
	m := New(nil, nil, nil, 0, 0)
	m.Release()
	require.Panics(t, m.Release)
}
