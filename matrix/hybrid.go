package matrix

import "fmt"

// Hybrid splits a matrix into a fixed-width ELL part and a COO spill holding
// the entries of rows longer than the ELL width.
type Hybrid[T Float] struct {
	Fraction float64
	ELL      *ELL[T]
	COO      *COO[T]
}

// NewHybrid builds a hybrid with ELL width floor(fraction * csr.MaxRowLen()).
// fraction 0 puts every entry in COO, fraction 1 puts every entry in ELL.
func NewHybrid[T Float](csr *CSR[T], fraction float64) (*Hybrid[T], error) {
	if fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("hybrid fraction %v: %w", fraction, ErrFraction)
	}
	width := int(fraction * float64(csr.MaxRowLen()))
	ell := &ELL[T]{
		Rows:           csr.Rows,
		Cols:           csr.Cols,
		ElementsInRows: width,
		Columns:        make([]uint32, csr.Rows*width),
		Values:         make([]T, csr.Rows*width),
	}
	coo := NewCOO[T](csr.Rows, csr.Cols)
	for r := 0; r < csr.Rows; r++ {
		begin, end := int(csr.RowPtr[r]), int(csr.RowPtr[r+1])
		var pad uint32
		for e := 0; e < width; e++ {
			if begin+e < end {
				pad = csr.Columns[begin+e]
				ell.Values[ell.Index(r, e)] = csr.Values[begin+e]
			}
			ell.Columns[ell.Index(r, e)] = pad
		}
		for i := begin + width; i < end; i++ {
			coo.RowIdx = append(coo.RowIdx, uint32(r))
			coo.ColIdx = append(coo.ColIdx, csr.Columns[i])
			coo.Values = append(coo.Values, csr.Values[i])
		}
	}
	return &Hybrid[T]{Fraction: fraction, ELL: ell, COO: coo}, nil
}

// Dims returns the number of rows and columns.
func (m *Hybrid[T]) Dims() (rows, cols int) {
	return m.ELL.Dims()
}

// Size returns the number of stored elements in both parts.
func (m *Hybrid[T]) Size() int {
	return m.ELL.Size() + m.COO.Size()
}
