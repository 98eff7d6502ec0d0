package spmv

import "github.com/senior-zero/matrix-format-performance/matrix"

var (
	ellVec4F64Impl     func(m *matrix.ELL[float64], x, y []float64, begin, end int)
	ellVec4F64ImplDesc string
)

// Vec4ImplDesc describes the routine used by ELLRowsVec4 for float64 (for logging).
func Vec4ImplDesc() string {
	if ellVec4F64ImplDesc != "" {
		return ellVec4F64ImplDesc
	}
	return "Go"
}

// ELLRowsVec4 is ELLRows processed four slots at a time: full groups go
// through a Vec4 accumulator that is reduced horizontally, the remaining
// ElementsInRows%4 slots are added by the scalar path. float64 matrices use
// the native routine selected at init when one is available.
func ELLRowsVec4[T matrix.Float](m *matrix.ELL[T], x, y []T, begin, end int) {
	if ellVec4F64Impl != nil {
		if m64, ok := any(m).(*matrix.ELL[float64]); ok {
			ellVec4F64Impl(m64, any(x).([]float64), any(y).([]float64), begin, end)
			return
		}
	}
	ellRowsVec4Go(m, x, y, begin, end)
}

func ellRowsVec4Go[T matrix.Float](m *matrix.ELL[T], x, y []T, begin, end int) {
	full := m.ElementsInRows &^ (Lanes - 1)
	for row := begin; row < end; row++ {
		sum := ellGroups4(m, x, row, full)
		y[row] = ellTail(m, x, row, full, sum)
	}
}

// ellGroups4 sums slots [0, full) of row, full being a multiple of Lanes.
func ellGroups4[T matrix.Float](m *matrix.ELL[T], x []T, row, full int) T {
	rows, columns, values := m.Rows, m.Columns, m.Values
	var acc Vec4[T]
	for e := 0; e < full; e += Lanes {
		i0 := row + e*rows
		i1 := i0 + rows
		i2 := i1 + rows
		i3 := i2 + rows
		v := Gather4(values, i0, i1, i2, i3)
		xv := Gather4(x, int(columns[i0]), int(columns[i1]), int(columns[i2]), int(columns[i3]))
		acc = acc.Add(v.Mul(xv))
	}
	return acc.ReduceSum()
}
