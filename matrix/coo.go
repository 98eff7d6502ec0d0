package matrix

import "fmt"

// COO is a coordinate-list matrix.
type COO[T Float] struct {
	Rows   int
	Cols   int
	RowIdx []uint32
	ColIdx []uint32
	Values []T
}

// NewCOO returns an empty rows x cols coordinate matrix.
func NewCOO[T Float](rows, cols int) *COO[T] {
	return &COO[T]{Rows: rows, Cols: cols}
}

// Append adds entry (i, j) = v.
func (m *COO[T]) Append(i, j int, v T) error {
	if i < 0 || i >= m.Rows {
		return fmt.Errorf("coo entry (%d, %d): %w", i, j, ErrRow)
	}
	if j < 0 || j >= m.Cols {
		return fmt.Errorf("coo entry (%d, %d): %w", i, j, ErrColumn)
	}
	m.RowIdx = append(m.RowIdx, uint32(i))
	m.ColIdx = append(m.ColIdx, uint32(j))
	m.Values = append(m.Values, v)
	return nil
}

// NewCOOFromCSR lists the entries of csr in storage order.
func NewCOOFromCSR[T Float](csr *CSR[T]) *COO[T] {
	m := &COO[T]{
		Rows:   csr.Rows,
		Cols:   csr.Cols,
		RowIdx: make([]uint32, 0, csr.NNZ()),
		ColIdx: make([]uint32, 0, csr.NNZ()),
		Values: make([]T, 0, csr.NNZ()),
	}
	for r := 0; r < csr.Rows; r++ {
		for i := csr.RowPtr[r]; i < csr.RowPtr[r+1]; i++ {
			m.RowIdx = append(m.RowIdx, uint32(r))
			m.ColIdx = append(m.ColIdx, csr.Columns[i])
			m.Values = append(m.Values, csr.Values[i])
		}
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *COO[T]) Dims() (rows, cols int) {
	return m.Rows, m.Cols
}

// NNZ returns the number of entries.
func (m *COO[T]) NNZ() int {
	return len(m.Values)
}

// Size returns the number of stored elements across all arrays.
func (m *COO[T]) Size() int {
	return 3 * len(m.Values)
}

// MulVec accumulates m*x into y. y is not cleared first.
func (m *COO[T]) MulVec(x, y []T) {
	for i, v := range m.Values {
		y[m.RowIdx[i]] += v * x[m.ColIdx[i]]
	}
}
