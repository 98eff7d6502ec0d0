package spmv

import "github.com/senior-zero/matrix-format-performance/matrix"

// CSRRows computes y[r] = sum(values[i] * x[columns[i]]) over row r's entries
// in storage order, for r in [begin, end).
func CSRRows[T matrix.Float](m *matrix.CSR[T], x, y []T, begin, end int) {
	rowPtr, columns, values := m.RowPtr, m.Columns, m.Values
	for row := begin; row < end; row++ {
		var dot T
		for i := rowPtr[row]; i < rowPtr[row+1]; i++ {
			dot += values[i] * x[columns[i]]
		}
		y[row] = dot
	}
}
