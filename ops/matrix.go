package ops

import (
	"github.com/spinsys/trilat/basis"
	"github.com/spinsys/trilat/coo"
	"github.com/spinsys/trilat/utils"
)

// Diagonal assembles a diagonal operator over the whole sector basis by
// evaluating element once per representative in basis order.
func Diagonal(set *basis.Set, element func(orig *basis.BlochFunc) float64) *coo.Matrix {
	n := set.Len()
	data := make([]complex128, n)
	row := make([]uint32, n)
	col := make([]uint32, n)
	for i := 0; i < n; i++ {
		data[i] = complex(element(set.At(i)), 0)
		row[i] = uint32(i)
		col[i] = uint32(i)
	}
	return coo.New(data, row, col, uint32(n), uint32(n))
}

// OffDiagonal assembles an off-diagonal operator over the whole sector
// basis: elements is evaluated once per origin representative and its row
// map is emitted with destination columns in ascending order, so equal
// inputs always produce identical triplet streams. Duplicate destinations
// are already summed inside the row map.
func OffDiagonal(set *basis.Set, elements func(orig *basis.BlochFunc) map[uint32]complex128) *coo.Matrix {
	n := set.Len()
	var data []complex128
	var row, col []uint32
	for i := 0; i < n; i++ {
		rowMap := elements(set.At(i))
		for _, j := range utils.GetSortedKeys(rowMap) {
			data = append(data, rowMap[j])
			row = append(row, uint32(i))
			col = append(col, j)
		}
	}
	return coo.New(data, row, col, uint32(n), uint32(n))
}
