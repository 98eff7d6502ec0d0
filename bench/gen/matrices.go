// Package gen generates synthetic sparse matrices for benchmarks that do not
// read Matrix Market files.
package gen

import (
	"math/rand"
	"sort"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

// RandomCSR returns a rows x cols matrix whose row lengths are uniform in
// [0, 2*nnzPerRow] (mean nnzPerRow, capped at cols) with distinct sorted
// columns and values uniform in [-1, 1).
func RandomCSR(rows, cols, nnzPerRow int, seed int64) *matrix.CSR[float64] {
	rng := rand.New(rand.NewSource(seed))
	rowPtr := make([]uint32, rows+1)
	columns := make([]uint32, 0, rows*nnzPerRow)
	values := make([]float64, 0, rows*nnzPerRow)
	for r := 0; r < rows; r++ {
		n := min(rng.Intn(2*nnzPerRow+1), cols)
		for _, c := range sortedSample(rng, cols, n) {
			columns = append(columns, uint32(c))
			values = append(values, rng.Float64()*2-1)
		}
		rowPtr[r+1] = uint32(len(values))
	}
	return &matrix.CSR[float64]{Rows: rows, Cols: cols, RowPtr: rowPtr, Columns: columns, Values: values}
}

// Banded returns a rows x rows matrix with the given half bandwidth, the
// regular-row-length case where ELL carries no padding in the interior.
func Banded(rows, halfBand int) *matrix.CSR[float64] {
	coo := matrix.NewCOO[float64](rows, rows)
	for r := 0; r < rows; r++ {
		for c := max(0, r-halfBand); c <= min(rows-1, r+halfBand); c++ {
			v := -1.0
			if c == r {
				v = float64(2 * halfBand)
			}
			coo.RowIdx = append(coo.RowIdx, uint32(r))
			coo.ColIdx = append(coo.ColIdx, uint32(c))
			coo.Values = append(coo.Values, v)
		}
	}
	return matrix.FromCOO(coo)
}

// PowerLaw returns a rows x cols matrix where a few rows are much longer
// than the rest, the case where ELL padding and the last-partition remainder
// hurt most. Row r holds about maxRowLen/(r+1) entries.
func PowerLaw(rows, cols, maxRowLen int, seed int64) *matrix.CSR[float64] {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(rows)
	coo := matrix.NewCOO[float64](rows, cols)
	for r := 0; r < rows; r++ {
		n := min(max(1, maxRowLen/(perm[r]+1)), cols)
		for _, c := range sortedSample(rng, cols, n) {
			coo.RowIdx = append(coo.RowIdx, uint32(r))
			coo.ColIdx = append(coo.ColIdx, uint32(c))
			coo.Values = append(coo.Values, rng.Float64()*2-1)
		}
	}
	return matrix.FromCOO(coo)
}

// sortedSample picks n distinct values from [0, cols) in increasing order.
func sortedSample(rng *rand.Rand, cols, n int) []int {
	if n == 0 {
		return nil
	}
	if n*2 > cols {
		out := rng.Perm(cols)[:n]
		sort.Ints(out)
		return out
	}
	picked := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		c := rng.Intn(cols)
		if _, ok := picked[c]; !ok {
			picked[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return out
}
