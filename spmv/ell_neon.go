//go:build arm64 && cgo

package spmv

/*
#cgo CFLAGS: -O3 -ffp-contract=off
#include <arm_neon.h>
#include <stddef.h>
#include <stdint.h>

static void EllRowsNEON(const double* values, const uint32_t* cols, const double* x, double* y,
		size_t rows, size_t width, size_t begin, size_t end) {
	const size_t full = width & ~(size_t)3;
	for (size_t row = begin; row < end; row++) {
		float64x2_t lo = vdupq_n_f64(0.0);
		float64x2_t hi = vdupq_n_f64(0.0);
		size_t e = 0;
		for (; e < full; e += 4) {
			const size_t i0 = row + e * rows;
			const size_t i1 = i0 + rows;
			const size_t i2 = i1 + rows;
			const size_t i3 = i2 + rows;
			float64x2_t v01 = vsetq_lane_f64(values[i1], vdupq_n_f64(values[i0]), 1);
			float64x2_t v23 = vsetq_lane_f64(values[i3], vdupq_n_f64(values[i2]), 1);
			float64x2_t x01 = vsetq_lane_f64(x[cols[i1]], vdupq_n_f64(x[cols[i0]]), 1);
			float64x2_t x23 = vsetq_lane_f64(x[cols[i3]], vdupq_n_f64(x[cols[i2]]), 1);
			lo = vaddq_f64(lo, vmulq_f64(v01, x01));
			hi = vaddq_f64(hi, vmulq_f64(v23, x23));
		}
		double dot = vaddvq_f64(vaddq_f64(lo, hi));
		for (; e < width; e++) {
			const size_t i = row + e * rows;
			dot += values[i] * x[cols[i]];
		}
		y[row] = dot;
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

func ellRowsNEON(m *matrix.ELL[float64], x, y []float64, begin, end int) {
	if begin >= end {
		return
	}
	if m.ElementsInRows == 0 {
		clear(y[begin:end])
		return
	}
	C.EllRowsNEON(
		(*C.double)(unsafe.Pointer(&m.Values[0])),
		(*C.uint32_t)(unsafe.Pointer(&m.Columns[0])),
		(*C.double)(unsafe.Pointer(&x[0])),
		(*C.double)(unsafe.Pointer(&y[0])),
		C.size_t(m.Rows),
		C.size_t(m.ElementsInRows),
		C.size_t(begin),
		C.size_t(end),
	)
}
