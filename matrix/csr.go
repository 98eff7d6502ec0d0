package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Float is the scalar type of matrix values (float32 or float64).
type Float = constraints.Float

// CSR is a Compressed Sparse Row matrix. Row r owns
// Columns[RowPtr[r]:RowPtr[r+1]] and the matching Values.
type CSR[T Float] struct {
	Rows    int
	Cols    int
	RowPtr  []uint32 // len Rows+1, RowPtr[0]=0, RowPtr[Rows]=NNZ
	Columns []uint32
	Values  []T
}

// NewCSR wraps the given slices after validating them. The slices are not copied.
func NewCSR[T Float](rows, cols int, rowPtr, columns []uint32, values []T) (*CSR[T], error) {
	m := &CSR[T]{Rows: rows, Cols: cols, RowPtr: rowPtr, Columns: columns, Values: values}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the structural invariants the kernels rely on.
func (m *CSR[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 || m.Rows >= math.MaxUint32 || m.Cols > math.MaxUint32 {
		return fmt.Errorf("csr %dx%d: %w", m.Rows, m.Cols, ErrDims)
	}
	if len(m.RowPtr) != m.Rows+1 {
		return fmt.Errorf("csr row_ptr len %d, want %d: %w", len(m.RowPtr), m.Rows+1, ErrRowPtr)
	}
	if len(m.Columns) != len(m.Values) {
		return fmt.Errorf("csr columns %d values %d: %w", len(m.Columns), len(m.Values), ErrLength)
	}
	if m.RowPtr[0] != 0 || int(m.RowPtr[m.Rows]) != len(m.Values) {
		return fmt.Errorf("csr row_ptr bounds [%d, %d], nnz %d: %w", m.RowPtr[0], m.RowPtr[m.Rows], len(m.Values), ErrRowPtr)
	}
	for r := 0; r < m.Rows; r++ {
		if m.RowPtr[r] > m.RowPtr[r+1] {
			return fmt.Errorf("csr row %d: row_ptr decreases: %w", r, ErrRowPtr)
		}
	}
	for i, c := range m.Columns {
		if int(c) >= m.Cols {
			return fmt.Errorf("csr entry %d column %d, cols %d: %w", i, c, m.Cols, ErrColumn)
		}
	}
	return nil
}

// Dims returns the number of rows and columns.
func (m *CSR[T]) Dims() (rows, cols int) {
	return m.Rows, m.Cols
}

// NNZ returns the number of stored entries.
func (m *CSR[T]) NNZ() int {
	return len(m.Values)
}

// RowLen returns the number of stored entries in row r.
func (m *CSR[T]) RowLen(r int) int {
	return int(m.RowPtr[r+1] - m.RowPtr[r])
}

// MaxRowLen returns the longest row, the ELL width of this matrix.
func (m *CSR[T]) MaxRowLen() int {
	longest := 0
	for r := 0; r < m.Rows; r++ {
		longest = max(longest, m.RowLen(r))
	}
	return longest
}

// Size returns the number of stored elements across all arrays.
func (m *CSR[T]) Size() int {
	return len(m.Values) + len(m.Columns) + len(m.RowPtr)
}

// FromCOO builds a CSR matrix from coordinate entries. Entries keep their
// relative order within each row; duplicates are kept and sum in a product.
func FromCOO[T Float](coo *COO[T]) *CSR[T] {
	rowPtr := make([]uint32, coo.Rows+1)
	for _, r := range coo.RowIdx {
		rowPtr[r+1]++
	}
	for r := 0; r < coo.Rows; r++ {
		rowPtr[r+1] += rowPtr[r]
	}
	next := make([]uint32, coo.Rows)
	copy(next, rowPtr[:coo.Rows])
	columns := make([]uint32, len(coo.Values))
	values := make([]T, len(coo.Values))
	for i, r := range coo.RowIdx {
		pos := next[r]
		columns[pos] = coo.ColIdx[i]
		values[pos] = coo.Values[i]
		next[r]++
	}
	return &CSR[T]{Rows: coo.Rows, Cols: coo.Cols, RowPtr: rowPtr, Columns: columns, Values: values}
}

// FromDense builds a CSR matrix holding the non-zero entries of a.
func FromDense(a mat.Matrix) *CSR[float64] {
	rows, cols := a.Dims()
	rowPtr := make([]uint32, rows+1)
	var columns []uint32
	var values []float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); v != 0 {
				columns = append(columns, uint32(j))
				values = append(values, v)
			}
		}
		rowPtr[i+1] = uint32(len(values))
	}
	return &CSR[float64]{Rows: rows, Cols: cols, RowPtr: rowPtr, Columns: columns, Values: values}
}

// ToDense expands m into a gonum dense matrix. Duplicate entries are summed.
func ToDense[T Float](m *CSR[T]) *mat.Dense {
	d := mat.NewDense(max(m.Rows, 1), max(m.Cols, 1), nil)
	for r := 0; r < m.Rows; r++ {
		for i := m.RowPtr[r]; i < m.RowPtr[r+1]; i++ {
			c := int(m.Columns[i])
			d.Set(r, c, d.At(r, c)+float64(m.Values[i]))
		}
	}
	return d
}

// Convert returns a copy of m with values converted to To. The index
// arrays are shared with m.
func Convert[To, From Float](m *CSR[From]) *CSR[To] {
	values := make([]To, len(m.Values))
	for i, v := range m.Values {
		values[i] = To(v)
	}
	return &CSR[To]{Rows: m.Rows, Cols: m.Cols, RowPtr: m.RowPtr, Columns: m.Columns, Values: values}
}
