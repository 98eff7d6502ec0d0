package spmv

import (
	"time"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

// CSRSingleThread is the baseline: scalar CSR over all rows on the calling
// goroutine. Its y is the reference every other kernel is checked against.
func CSRSingleThread[T matrix.Float](m *matrix.CSR[T], x, y []T) float64 {
	resetX(x, m.Cols)
	start := time.Now()
	CSRRows(m, x, y, 0, m.Rows)
	return time.Since(start).Seconds()
}

// CSRParallel runs the scalar CSR kernel on one worker per hardware thread.
func CSRParallel[T matrix.Float](m *matrix.CSR[T], x, y []T) float64 {
	return Parallel(nil, m, x, y, CSRRows[T])
}

// ELLSingleThread runs the scalar ELL kernel over all rows on the calling goroutine.
func ELLSingleThread[T matrix.Float](m *matrix.ELL[T], x, y []T) float64 {
	resetX(x, m.Cols)
	start := time.Now()
	ELLRows(m, x, y, 0, m.Rows)
	return time.Since(start).Seconds()
}

// ELLParallel runs the scalar ELL kernel on one worker per hardware thread.
func ELLParallel[T matrix.Float](m *matrix.ELL[T], x, y []T) float64 {
	return Parallel(nil, m, x, y, ELLRows[T])
}

// ELLParallelVec4 runs the four-lane ELL kernel on one worker per hardware thread.
func ELLParallelVec4[T matrix.Float](m *matrix.ELL[T], x, y []T) float64 {
	return Parallel(nil, m, x, y, ELLRowsVec4[T])
}

// HybridParallel computes the ELL part with the four-lane kernel in parallel,
// then adds the COO spill on the calling goroutine. The result is the sum of
// both phases. A nil cfg uses DefaultConfig.
func HybridParallel[T matrix.Float](cfg *Config, m *matrix.Hybrid[T], x, y []T) float64 {
	secs := Parallel(cfg, m.ELL, x, y, ELLRowsVec4[T])
	start := time.Now()
	m.COO.MulVec(x, y)
	return secs + time.Since(start).Seconds()
}
