package spmv

import "github.com/senior-zero/matrix-format-performance/matrix"

// ELLRows computes y[r] over all ElementsInRows slots of row r, padding
// included, for r in [begin, end).
func ELLRows[T matrix.Float](m *matrix.ELL[T], x, y []T, begin, end int) {
	for row := begin; row < end; row++ {
		y[row] = ellTail(m, x, row, 0, 0)
	}
}

// ellTail adds slots [from, ElementsInRows) of row to acc.
func ellTail[T matrix.Float](m *matrix.ELL[T], x []T, row, from int, acc T) T {
	rows, columns, values := m.Rows, m.Columns, m.Values
	for e := from; e < m.ElementsInRows; e++ {
		i := row + e*rows
		acc += values[i] * x[columns[i]]
	}
	return acc
}
