package matrix

import "fmt"

// ELL is a padded fixed-width matrix. Every row holds ElementsInRows slots;
// slot e of row r lives at r + e*Rows (element-major). Padding slots carry
// a zero value and an in-range column.
type ELL[T Float] struct {
	Rows           int
	Cols           int
	ElementsInRows int
	Columns        []uint32
	Values         []T
}

// NewELL wraps element-major slices after validating them. When rowLens is
// non-nil, slots at or past rowLens[r] are padding and must hold exactly 0.
func NewELL[T Float](rows, cols, width int, columns []uint32, values []T, rowLens []int) (*ELL[T], error) {
	m := &ELL[T]{Rows: rows, Cols: cols, ElementsInRows: width, Columns: columns, Values: values}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if rowLens == nil {
		return m, nil
	}
	if len(rowLens) != rows {
		return nil, fmt.Errorf("ell row lengths %d, rows %d: %w", len(rowLens), rows, ErrLength)
	}
	for r, n := range rowLens {
		for e := n; e < width; e++ {
			if v := values[m.Index(r, e)]; v != 0 {
				return nil, fmt.Errorf("ell row %d slot %d holds %v: %w", r, e, v, ErrPadding)
			}
		}
	}
	return m, nil
}

// NewELLFromCSR converts csr to ELL with width csr.MaxRowLen(). Padding slots
// reuse the row's last real column (column 0 for empty rows).
func NewELLFromCSR[T Float](csr *CSR[T]) *ELL[T] {
	width := csr.MaxRowLen()
	m := &ELL[T]{
		Rows:           csr.Rows,
		Cols:           csr.Cols,
		ElementsInRows: width,
		Columns:        make([]uint32, csr.Rows*width),
		Values:         make([]T, csr.Rows*width),
	}
	for r := 0; r < csr.Rows; r++ {
		begin, end := int(csr.RowPtr[r]), int(csr.RowPtr[r+1])
		var pad uint32
		for e := 0; e < end-begin; e++ {
			m.Columns[m.Index(r, e)] = csr.Columns[begin+e]
			m.Values[m.Index(r, e)] = csr.Values[begin+e]
			pad = csr.Columns[begin+e]
		}
		for e := end - begin; e < width; e++ {
			m.Columns[m.Index(r, e)] = pad
		}
	}
	return m
}

// Validate checks lengths and column ranges. Padding cannot be told apart
// from stored zeros here; NewELL with row lengths checks it.
func (m *ELL[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 || m.ElementsInRows < 0 {
		return fmt.Errorf("ell %dx%d width %d: %w", m.Rows, m.Cols, m.ElementsInRows, ErrDims)
	}
	n := m.Rows * m.ElementsInRows
	if len(m.Columns) != n || len(m.Values) != n {
		return fmt.Errorf("ell columns %d values %d, want %d: %w", len(m.Columns), len(m.Values), n, ErrLength)
	}
	for i, c := range m.Columns {
		if int(c) >= m.Cols {
			return fmt.Errorf("ell slot %d column %d, cols %d: %w", i, c, m.Cols, ErrColumn)
		}
	}
	return nil
}

// Index returns the flat offset of slot e in row r.
func (m *ELL[T]) Index(r, e int) int {
	return r + e*m.Rows
}

// Dims returns the number of rows and columns.
func (m *ELL[T]) Dims() (rows, cols int) {
	return m.Rows, m.Cols
}

// Size returns the number of stored elements, padding included.
func (m *ELL[T]) Size() int {
	return len(m.Values) + len(m.Columns)
}
