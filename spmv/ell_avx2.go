//go:build amd64 && cgo

package spmv

/*
#cgo CFLAGS: -mavx2 -O3 -ffp-contract=off
#include <immintrin.h>
#include <stddef.h>
#include <stdint.h>

static double horizontal_sum_m256d(__m256d v) {
	__m128d lo = _mm256_castpd256_pd128(v);
	__m128d hi = _mm256_extractf128_pd(v, 1);
	__m128d sum2 = _mm_add_pd(lo, hi);
	__m128d upper = _mm_unpackhi_pd(sum2, sum2);
	return _mm_cvtsd_f64(_mm_add_sd(sum2, upper));
}

static void EllRowsAVX2(const double* values, const uint32_t* cols, const double* x, double* y,
		size_t rows, size_t width, size_t begin, size_t end) {
	const size_t full = width & ~(size_t)3;
	for (size_t row = begin; row < end; row++) {
		__m256d sum = _mm256_setzero_pd();
		size_t e = 0;
		for (; e < full; e += 4) {
			const size_t i0 = row + e * rows;
			const size_t i1 = i0 + rows;
			const size_t i2 = i1 + rows;
			const size_t i3 = i2 + rows;
			__m256d v = _mm256_set_pd(values[i3], values[i2], values[i1], values[i0]);
			__m256d xv = _mm256_set_pd(x[cols[i3]], x[cols[i2]], x[cols[i1]], x[cols[i0]]);
			sum = _mm256_add_pd(sum, _mm256_mul_pd(v, xv));
		}
		double dot = horizontal_sum_m256d(sum);
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

func ellRowsAVX2(m *matrix.ELL[float64], x, y []float64, begin, end int) {
	if begin >= end {
		return
	}
	if m.ElementsInRows == 0 {
		clear(y[begin:end])
		return
	}
	C.EllRowsAVX2(
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
